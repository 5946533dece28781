package pcm

import (
	"math"
	"testing"
	"unsafe"

	"github.com/cwbudde/algo-pcm/internal/testutil"
)

var (
	referenceInput = []float32{
		0.7243, 0.1539, 0.8946, 0.3215, 0.5678, 0.0124,
		0.9982, 0.4307, 0.2751, 0.6639, 0.8194, 0.1476,
	}
	referenceOutput = []int16{
		23733, 5042, 29313, 10534, 18605, 406,
		32708, 14112, 9014, 21754, 26849, 4836,
	}
)

func convertScalar(dst []int16, src []float32) {
	for i, x := range src {
		dst[i] = ConvertSample(x)
	}
}

func TestConvertReferenceSequence(t *testing.T) {
	got := make([]int16, len(referenceInput))
	Convert(got, referenceInput)
	testutil.RequireInt16Equal(t, got, referenceOutput)
}

func TestConvertClampsOutOfRange(t *testing.T) {
	got := make([]int16, 4)
	Convert(got, []float32{1.7, -2.3, float32(math.Inf(1)), float32(math.Inf(-1))})

	want := make([]int16, 4)
	Convert(want, []float32{1, -1, 1, -1})

	testutil.RequireInt16Equal(t, got, want)
	if got[0] != math.MaxInt16 || got[1] != -math.MaxInt16 {
		t.Fatalf("clamped extremes = %v, want [%d %d ...]", got, math.MaxInt16, -math.MaxInt16)
	}
}

func TestConvertNaNIsZero(t *testing.T) {
	nan := float32(math.NaN())
	got := []int16{1, 1, 1, 1, 1}
	Convert(got, []float32{nan, nan, nan, nan, nan})
	testutil.RequireInt16Equal(t, got, []int16{0, 0, 0, 0, 0})
}

func TestConvertTruncatesTowardZero(t *testing.T) {
	src := []float32{0.5, -0.5, 0.25, -0.25, 1e-5, -1e-5, 0.9999}
	got := make([]int16, len(src))
	Convert(got, src)
	testutil.RequireInt16Equal(t, got, []int16{16383, -16383, 8191, -8191, 0, 0, 32763})
}

func TestConvertRemainderLengths(t *testing.T) {
	noise := testutil.DeterministicNoise32(7, 1.5, 67)

	for n := 0; n <= len(noise); n++ {
		src := noise[:n]

		got := make([]int16, n)
		for i := range got {
			got[i] = math.MinInt16
		}
		Convert(got, src)

		want := make([]int16, n)
		convertScalar(want, src)

		testutil.RequireInt16Equal(t, got, want)
	}
}

func TestConvertDeterministic(t *testing.T) {
	src := testutil.DeterministicSine32(997, 48000, 0.9, 1023)

	first := make([]int16, len(src))
	Convert(first, src)

	for range 5 {
		again := make([]int16, len(src))
		Convert(again, src)
		testutil.RequireInt16Equal(t, again, first)
	}
}

func TestConvertDoesNotMutateInput(t *testing.T) {
	src := append([]float32(nil), referenceInput...)
	dst := make([]int16, len(src))
	Convert(dst, src)

	for i := range src {
		if src[i] != referenceInput[i] {
			t.Fatalf("input modified at %d: got %v, want %v", i, src[i], referenceInput[i])
		}
	}
}

func TestConvertInPlace(t *testing.T) {
	for _, n := range []int{1, 3, 4, 5, 12, 13} {
		buf := append([]float32(nil), testutil.DeterministicNoise32(int64(n), 1.2, n)...)

		want := make([]int16, n)
		convertScalar(want, buf)

		dst := unsafe.Slice((*int16)(unsafe.Pointer(unsafe.SliceData(buf))), n)
		Convert(dst, buf)

		testutil.RequireInt16Equal(t, dst, want)
	}
}

func TestConvertLengthMismatchPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "pcm: slice length mismatch" {
			t.Fatalf("recover() = %v, want length mismatch panic", r)
		}
	}()

	Convert(make([]int16, 3), make([]float32, 4))
}

func TestConvertEmpty(t *testing.T) {
	Convert(nil, nil)
	Convert([]int16{}, []float32{})
}

func TestKernelName(t *testing.T) {
	if name := KernelName(); name == "" {
		t.Fatal("KernelName() returned empty name")
	}
}
