package generic

import (
	"github.com/cwbudde/algo-pcm/pcm/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "generic",
		SIMDLevel:    cpu.SIMDNone,
		Priority:     0,
		ConvertBlock: ConvertBlock,
	})
}
