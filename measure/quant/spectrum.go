package quant

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-pcm/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// Config holds noise spectrum parameters.
type Config struct {
	FFTSize    int
	SampleRate float64
	Window     window.Type
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a 4096-point Hann analysis at 48 kHz.
func DefaultConfig() Config {
	return Config{
		FFTSize:    4096,
		SampleRate: 48000,
		Window:     window.TypeHann,
	}
}

// WithFFTSize sets the analysis frame length. It must be a power of two.
func WithFFTSize(n int) Option {
	return func(cfg *Config) {
		cfg.FFTSize = n
	}
}

// WithSampleRate sets the sample rate used by BinFrequency.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithWindow sets the analysis window. It is generated in periodic form.
func WithWindow(t window.Type) Option {
	return func(cfg *Config) {
		cfg.Window = t
	}
}

func applyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Spectrum is the averaged power spectrum of the quantization error.
type Spectrum struct {
	Power      []float64 // bins 0..FFTSize/2, full-scale units squared
	FFTSize    int
	SampleRate float64
	Frames     int
}

// BinFrequency returns the centre frequency of bin k in Hz.
func (s Spectrum) BinFrequency(k int) float64 {
	return float64(k) * s.SampleRate / float64(s.FFTSize)
}

// NoiseFloorDB returns the mean bin power in dB relative to full scale.
func (s Spectrum) NoiseFloorDB() float64 {
	if len(s.Power) == 0 {
		return math.Inf(-1)
	}
	sum := 0.0
	for _, p := range s.Power {
		sum += p
	}
	mean := sum / float64(len(s.Power))
	if mean == 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(mean)
}

// NoiseSpectrum computes the windowed power spectrum of the error between
// dst and the ideal conversion of src, averaged over consecutive
// non-overlapping frames. A trailing partial frame is zero padded. Power is
// normalized so a sinusoidal error of amplitude A peaks near (A/2)^2.
func NoiseSpectrum(src []float32, dst []int16, opts ...Option) (Spectrum, error) {
	if err := checkLengths(src, dst); err != nil {
		return Spectrum{}, err
	}

	cfg := applyOptions(opts...)
	if cfg.FFTSize < 2 || cfg.FFTSize&(cfg.FFTSize-1) != 0 {
		return Spectrum{}, fmt.Errorf("%w: %d", ErrInvalidFFTSize, cfg.FFTSize)
	}

	plan, err := algofft.NewPlan64(cfg.FFTSize)
	if err != nil {
		return Spectrum{}, fmt.Errorf("quant: fft plan: %w", err)
	}

	_, errSig := errorSignal(src, dst)

	n := cfg.FFTSize
	bins := n/2 + 1
	win := window.Generate(cfg.Window, n, window.WithPeriodic())
	gain := window.CoherentGain(win)
	norm := 1 / (gain * gain)

	frame := make([]float64, n)
	in := make([]complex128, n)
	out := make([]complex128, n)
	re := make([]float64, bins)
	im := make([]float64, bins)
	pow := make([]float64, bins)
	acc := make([]float64, bins)

	frames := 0
	for start := 0; start < len(errSig); start += n {
		for i := range frame {
			frame[i] = 0
		}
		copy(frame, errSig[start:])
		vecmath.MulBlockInPlace(frame, win)

		for i, v := range frame {
			in[i] = complex(v, 0)
		}

		if err := plan.Forward(out, in); err != nil {
			return Spectrum{}, fmt.Errorf("quant: fft forward: %w", err)
		}

		for k := 0; k < bins; k++ {
			re[k] = real(out[k])
			im[k] = imag(out[k])
		}
		vecmath.Power(pow, re, im)
		vecmath.AddBlockInPlace(acc, pow)
		frames++
	}

	vecmath.ScaleBlock(acc, acc, norm/float64(frames))

	return Spectrum{
		Power:      acc,
		FFTSize:    n,
		SampleRate: cfg.SampleRate,
		Frames:     frames,
	}, nil
}
