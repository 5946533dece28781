package memory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteLen(t *testing.T) {
	assert.Equal(t, 0, ByteLen(0, Int16Size))
	assert.Equal(t, 24, ByteLen(12, Int16Size))
	assert.Equal(t, 48, ByteLen(12, Float32Size))
	assert.Equal(t, 7, ByteLen(7, ByteSize))
}

func TestByteLenOverflowPanics(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		elemSize int
	}{
		{"negative count", -1, Int16Size},
		{"int16 overflow", math.MaxInt/2 + 1, Int16Size},
		{"float32 overflow", math.MaxInt/4 + 1, Float32Size},
		{"zero elem size", 1, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.PanicsWithValue(t, "memory: allocation size overflow", func() {
				ByteLen(test.count, test.elemSize)
			})
		})
	}
}

func TestTypedViewsShareMemory(t *testing.T) {
	b := make([]byte, 16)

	f := Float32s(b)
	assert.Len(t, f, 4)
	f[1] = 1

	i := Int16s(b)
	assert.Len(t, i, 8)
	// 1.0f is 0x3f800000; the high half lands in int16 index 3 on little endian.
	assert.NotZero(t, i[2]|i[3])

	assert.Nil(t, Int16s(b[:1]))
	assert.Nil(t, Float32s(b[:3]))
}

func TestAtRebuildsRegion(t *testing.T) {
	b := make([]byte, 8)
	b[5] = 42

	r := At(PointerOf(b), len(b))
	assert.Equal(t, len(b), len(r))
	assert.Equal(t, byte(42), r[5])
	assert.Equal(t, AddressOf(b), AddressOf(r))

	assert.Nil(t, At(PointerOf(b), 0))
}

func TestRoundUpToMultipleOf64(t *testing.T) {
	assert.Equal(t, 0, roundUpToMultipleOf64(0))
	assert.Equal(t, 64, roundUpToMultipleOf64(1))
	assert.Equal(t, 64, roundUpToMultipleOf64(64))
	assert.Equal(t, 128, roundUpToMultipleOf64(65))
}
