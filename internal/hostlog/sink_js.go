//go:build js && wasm

package hostlog

import (
	"io"
	"syscall/js"
)

type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	msg := trimNewline(p)
	if len(msg) > 0 {
		js.Global().Get("console").Call("log", string(msg))
	}
	return len(p), nil
}

// Sink returns the writer backed by the browser console.
func Sink() io.Writer { return consoleWriter{} }
