package quant

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-pcm/dsp/window"
	"github.com/cwbudde/algo-pcm/internal/testutil"
)

func TestNoiseSpectrumShape(t *testing.T) {
	src := testutil.DeterministicSine32(1000, 48000, 0.8, 5000)

	sp, err := NoiseSpectrum(src, convert(src), WithFFTSize(1024), WithSampleRate(48000))
	if err != nil {
		t.Fatalf("NoiseSpectrum() error = %v", err)
	}

	if len(sp.Power) != 513 {
		t.Fatalf("len(Power) = %d, want 513", len(sp.Power))
	}
	if sp.Frames != 5 {
		t.Fatalf("Frames = %d, want 5", sp.Frames)
	}
	for k, p := range sp.Power {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			t.Fatalf("bin %d: invalid power %v", k, p)
		}
	}

	testutil.RequireNearlyEqual(t, sp.BinFrequency(512), 24000, 1e-9)

	// A 16-bit truncation error sits far below full scale.
	if floor := sp.NoiseFloorDB(); floor > -80 {
		t.Fatalf("NoiseFloorDB() = %v, want below -80 dBFS", floor)
	}
}

func TestNoiseSpectrumSilence(t *testing.T) {
	src := make([]float32, 64)

	sp, err := NoiseSpectrum(src, convert(src), WithFFTSize(64))
	if err != nil {
		t.Fatalf("NoiseSpectrum() error = %v", err)
	}
	for k, p := range sp.Power {
		if p != 0 {
			t.Fatalf("bin %d: power %v, want 0", k, p)
		}
	}
	if !math.IsInf(sp.NoiseFloorDB(), -1) {
		t.Fatalf("NoiseFloorDB() = %v, want -Inf", sp.NoiseFloorDB())
	}
}

func TestNoiseSpectrumSeesInjectedTone(t *testing.T) {
	const n = 256
	src := make([]float32, n)

	// Error tone at bin 32 with amplitude 0.01 full scale.
	dst := make([]int16, n)
	for i := range dst {
		dst[i] = int16(math.Round(0.01 * 32767 * math.Sin(2*math.Pi*32*float64(i)/n)))
	}

	for _, typ := range []window.Type{window.TypeHann, window.TypeRectangular, window.TypeBlackman} {
		t.Run(typ.String(), func(t *testing.T) {
			sp, err := NoiseSpectrum(src, dst, WithFFTSize(n), WithWindow(typ))
			if err != nil {
				t.Fatalf("NoiseSpectrum() error = %v", err)
			}

			peak := 0
			for k := range sp.Power {
				if sp.Power[k] > sp.Power[peak] {
					peak = k
				}
			}
			if peak != 32 {
				t.Fatalf("peak bin = %d, want 32", peak)
			}
			testutil.RequireNearlyEqual(t, sp.Power[32], 0.005*0.005, 1e-6)
		})
	}
}

func TestNoiseSpectrumErrors(t *testing.T) {
	src := make([]float32, 8)
	dst := make([]int16, 8)

	for _, size := range []int{0, 1, 3, 1000} {
		if _, err := NoiseSpectrum(src, dst, WithFFTSize(size)); !errors.Is(err, ErrInvalidFFTSize) {
			t.Fatalf("size %d: error = %v, want ErrInvalidFFTSize", size, err)
		}
	}

	if _, err := NoiseSpectrum(src, dst[:4]); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
	if _, err := NoiseSpectrum(nil, nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := applyOptions(WithSampleRate(-1), nil)
	if cfg.FFTSize != 4096 || cfg.SampleRate != 48000 || cfg.Window != window.TypeHann {
		t.Fatalf("unexpected config %+v", cfg)
	}
}
