//go:build !wasip1 && !(js && wasm)

package hostlog

import (
	"io"
	"os"
)

// Sink returns stderr.
func Sink() io.Writer { return os.Stderr }
