package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []int16{1, 2, math.MaxInt16}
	b := []int16{1, -3, -math.MaxInt16}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if d != 2*math.MaxInt16 {
		t.Fatalf("MaxAbsDiff = %d, want %d", d, 2*math.MaxInt16)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]int16{1}, []int16{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffIdentical(t *testing.T) {
	a := []int16{1, 2, 3}

	d, err := MaxAbsDiff(a, a)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxAbsDiff = %d, want 0 for identical slices", d)
	}
}

func TestRequireInt16EqualPasses(t *testing.T) {
	RequireInt16Equal(t, []int16{4, 5}, []int16{4, 5})
	RequireNearlyEqual(t, 1.0, 1.0+1e-12, 1e-9)
}
