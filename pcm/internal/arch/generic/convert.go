// Package generic provides the portable conversion kernel.
package generic

import "github.com/cwbudde/algo-pcm/pcm/internal/sample"

// ConvertBlock converts src into dst in groups of sample.Lanes, then finishes
// the 0-3 sample tail with the scalar helper.
//
// Every group is loaded before it is stored, and an int16 output is half the
// width of its float32 input, so dst may start at the same address as src.
func ConvertBlock(dst []int16, src []float32) {
	n := len(src)
	dst = dst[:n]

	i := 0
	for ; i+sample.Lanes <= n; i += sample.Lanes {
		v := sample.Load4(src[i:])
		sample.Store4(dst[i:], v.Clamp().Mul(sample.Scale).Trunc())
	}

	for ; i < n; i++ {
		dst[i] = sample.ToInt16(src[i])
	}
}
