package pcm

import (
	"sync"

	archregistry "github.com/cwbudde/algo-pcm/pcm/internal/arch/registry"
	"github.com/cwbudde/algo-pcm/pcm/internal/sample"
	"github.com/cwbudde/algo-vecmath/cpu"
)

const (
	// Lanes is the number of samples converted per group.
	Lanes = sample.Lanes

	// Scale is the factor applied to a clamped sample: math.MaxInt16.
	Scale = sample.Scale
)

var (
	kernels = archregistry.Global

	convertBlockImpl     archregistry.ConvertBlockFn
	convertBlockName     string
	convertBlockInitOnce sync.Once
)

// Clamp limits x to [-1, 1] exactly as Convert does before scaling. NaN maps
// to 0.
func Clamp(x float32) float32 {
	return sample.Clamp(x)
}

// ConvertSample converts a single sample with the same semantics as Convert.
func ConvertSample(x float32) int16 {
	return sample.ToInt16(x)
}

// Convert writes the int16 conversion of src into dst. Slices must have equal
// length. Panics if lengths differ.
//
// dst may share its base address with src (an in-place conversion of a float32
// buffer); the first len(src) int16 values at that address then hold the
// result. Any other overlap is unsupported.
func Convert(dst []int16, src []float32) {
	if len(dst) != len(src) {
		panic("pcm: slice length mismatch")
	}

	if len(src) == 0 {
		return
	}

	convertBlockInitOnce.Do(initConvertBlockKernel)
	convertBlockImpl(dst, src)
}

// KernelName reports which registered kernel Convert uses.
func KernelName() string {
	convertBlockInitOnce.Do(initConvertBlockKernel)
	return convertBlockName
}

func initConvertBlockKernel() {
	entry := kernels.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("pcm: no ConvertBlock kernel registered (missing generic fallback?)")
	}

	if entry.ConvertBlock == nil {
		panic("pcm: selected kernel missing ConvertBlock")
	}

	convertBlockImpl = entry.ConvertBlock
	convertBlockName = entry.Name
}
