// Package sample holds the per-sample float32 to int16 semantics shared by
// every conversion kernel.
//
// Both the lane-parallel bulk path and the scalar tail go through the helpers
// in this package, so a sample converts to the same int16 regardless of the
// group it falls into.
package sample

import "math"

const (
	// Lanes is the number of samples processed per group.
	Lanes = 4

	// Scale is the largest positive int16 magnitude as a float32.
	Scale = float32(math.MaxInt16)
)

// Clamp limits x to [-1, 1]. NaN maps to 0.
func Clamp(x float32) float32 {
	if x != x {
		return 0
	}

	if x > 1 {
		return 1
	}

	if x < -1 {
		return -1
	}

	return x
}

// ToInt16 clamps x, scales it by Scale in float32 and truncates toward zero.
func ToInt16(x float32) int16 {
	scaled := Clamp(x) * Scale
	return int16(scaled)
}

// Vec4 is one group of Lanes samples.
type Vec4 [Lanes]float32

// Load4 reads the first Lanes samples of s.
func Load4(s []float32) Vec4 {
	_ = s[Lanes-1]
	return Vec4{s[0], s[1], s[2], s[3]}
}

// Clamp applies Clamp to every lane.
func (v Vec4) Clamp() Vec4 {
	return Vec4{Clamp(v[0]), Clamp(v[1]), Clamp(v[2]), Clamp(v[3])}
}

// Mul multiplies every lane by k.
func (v Vec4) Mul(k float32) Vec4 {
	return Vec4{v[0] * k, v[1] * k, v[2] * k, v[3] * k}
}

// Trunc converts every lane to int16, truncating toward zero.
// Lanes must already be within the int16 range.
func (v Vec4) Trunc() [Lanes]int16 {
	return [Lanes]int16{int16(v[0]), int16(v[1]), int16(v[2]), int16(v[3])}
}

// Store4 writes the lanes of w to the first Lanes elements of dst.
func Store4(dst []int16, w [Lanes]int16) {
	_ = dst[Lanes-1]
	dst[0] = w[0]
	dst[1] = w[1]
	dst[2] = w[2]
	dst[3] = w[3]
}
