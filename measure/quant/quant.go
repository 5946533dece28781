// Package quant measures how much a float32 to int16 conversion departs from
// the ideal scaled value.
//
// The reference for every sample is pcm.Clamp(x)*32767, the exact value the
// converter truncates. Errors are reported in LSB (one int16 step) and, for
// powers, in full-scale units where 1.0 corresponds to 32767.
package quant

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-pcm/pcm"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrEmptyInput is returned when there is nothing to analyze.
	ErrEmptyInput = errors.New("quant: empty input")

	// ErrLengthMismatch is returned when src and dst differ in length.
	ErrLengthMismatch = errors.New("quant: length mismatch")

	// ErrInvalidFFTSize is returned for FFT sizes that are not a power of two >= 2.
	ErrInvalidFFTSize = errors.New("quant: invalid FFT size")
)

// Result holds the quantization statistics of one converted block.
type Result struct {
	Samples int
	Clipped int // finite or infinite samples outside [-1, 1]
	NaNs    int

	PeakError   float64 // largest |dst - reference| in LSB
	SignalPower float64 // mean square of the clamped input
	NoisePower  float64 // mean square of the error, full-scale units
	SNRdB       float64 // +Inf when the block converts without error
}

// Analyze compares the converted block dst against src.
func Analyze(src []float32, dst []int16) (Result, error) {
	if err := checkLengths(src, dst); err != nil {
		return Result{}, err
	}

	ref, errSig := errorSignal(src, dst)

	res := Result{Samples: len(src)}
	for _, x := range src {
		switch {
		case x != x:
			res.NaNs++
		case x > 1 || x < -1:
			res.Clipped++
		}
	}

	for _, e := range errSig {
		if d := math.Abs(e) * float64(pcm.Scale); d > res.PeakError {
			res.PeakError = d
		}
	}

	res.SignalPower = meanSquare(ref)
	res.NoisePower = meanSquare(errSig)

	switch {
	case res.NoisePower == 0:
		res.SNRdB = math.Inf(1)
	case res.SignalPower == 0:
		res.SNRdB = math.Inf(-1)
	default:
		res.SNRdB = 10 * math.Log10(res.SignalPower/res.NoisePower)
	}

	return res, nil
}

func checkLengths(src []float32, dst []int16) error {
	if len(src) != len(dst) {
		return fmt.Errorf("%w: src %d, dst %d", ErrLengthMismatch, len(src), len(dst))
	}
	if len(src) == 0 {
		return ErrEmptyInput
	}
	return nil
}

// errorSignal returns the clamped reference and dst/32767 - reference, both in
// full-scale units.
func errorSignal(src []float32, dst []int16) (ref, errSig []float64) {
	n := len(src)
	ref = make([]float64, n)
	decoded := make([]float64, n)

	for i, x := range src {
		ref[i] = float64(pcm.Clamp(x))
		decoded[i] = float64(dst[i])
	}

	vecmath.ScaleBlock(decoded, decoded, 1/float64(pcm.Scale))

	negRef := make([]float64, n)
	vecmath.ScaleBlock(negRef, ref, -1)
	vecmath.AddBlockInPlace(decoded, negRef)

	return ref, decoded
}

func meanSquare(x []float64) float64 {
	sq := make([]float64, len(x))
	vecmath.MulBlock(sq, x, x)

	sum := 0.0
	for _, v := range sq {
		sum += v
	}
	return sum / float64(len(x))
}
