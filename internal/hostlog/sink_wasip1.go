//go:build wasip1

package hostlog

import (
	"io"
	"unsafe"
)

//go:wasmimport env console_log
func consoleLog(ptr unsafe.Pointer, n uint32)

type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	msg := trimNewline(p)
	if len(msg) > 0 {
		consoleLog(unsafe.Pointer(unsafe.SliceData(msg)), uint32(len(msg)))
	}
	return len(p), nil
}

// Sink returns the writer backed by the host's console_log import.
func Sink() io.Writer { return consoleWriter{} }
