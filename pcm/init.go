package pcm

import (
	_ "github.com/cwbudde/algo-pcm/pcm/internal/arch/generic"  // register generic backend
	_ "github.com/cwbudde/algo-pcm/pcm/internal/arch/registry" // initialize backend registry
)
