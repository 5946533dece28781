package memory

import (
	"unsafe"

	"github.com/JohnCGriffin/overflow"
)

// Element sizes in bytes of the typed buffers.
const (
	Int16Size   = 2
	Float32Size = 4
	ByteSize    = 1
)

// ByteLen returns count*elemSize. It panics when count is negative or the
// product does not fit in an int; both mean the request can never be served.
func ByteLen(count, elemSize int) int {
	if count < 0 || elemSize <= 0 {
		panic("memory: allocation size overflow")
	}

	n, ok := overflow.Mul(count, elemSize)
	if !ok {
		panic("memory: allocation size overflow")
	}

	return n
}

// Int16s reinterprets b as int16 elements. len(b) should be a multiple of
// Int16Size; trailing bytes are ignored.
func Int16s(b []byte) []int16 {
	if len(b) < Int16Size {
		return nil
	}
	return unsafe.Slice((*int16)(unsafe.Pointer(unsafe.SliceData(b))), len(b)/Int16Size)
}

// Float32s reinterprets b as float32 elements. len(b) should be a multiple of
// Float32Size; trailing bytes are ignored.
func Float32s(b []byte) []float32 {
	if len(b) < Float32Size {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(b))), len(b)/Float32Size)
}

// PointerOf returns the base of b. For an empty slice the pointer is non-nil
// but must not be dereferenced.
func PointerOf(b []byte) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(b))
}

// AddressOf returns the base address of b as an integer. It is for keys,
// alignment checks and logs; it is never turned back into a pointer.
func AddressOf(b []byte) uintptr {
	return uintptr(PointerOf(b))
}

// At rebuilds the size-byte region starting at p.
func At(p unsafe.Pointer, size int) []byte {
	if size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), size)
}

func roundToPowerOf2(v, round int) int {
	forceCarry := round - 1
	truncateMask := ^forceCarry
	return (v + forceCarry) & truncateMask
}

func roundUpToMultipleOf64(v int) int {
	return roundToPowerOf2(v, 64)
}
