//go:build wasip1

// Command pcmwasm is a WASI reactor exposing the buffer and conversion table
// to a WebAssembly host.
//
// Build:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o pcm.wasm ./cmd/pcmwasm
//
// Addresses are offsets into the module's linear memory. The host must
// provide env.console_log(ptr, len) for diagnostics.
package main

import (
	"unsafe"

	"github.com/cwbudde/algo-pcm/abi"
	"github.com/cwbudde/algo-pcm/internal/hostlog"
)

func init() {
	hostlog.Init()
}

func main() {}

// ptr and offset convert between linear-memory offsets and pointers. This is
// the only place host integers become pointers.
func ptr(addr uint32) unsafe.Pointer { return unsafe.Pointer(uintptr(addr)) }

func offset(p unsafe.Pointer) uint32 { return uint32(uintptr(p)) }

//go:wasmexport alloc_i16
func allocI16(count uint32) uint32 {
	return offset(abi.AllocInt16(uint(count)))
}

//go:wasmexport dealloc_i16
func deallocI16(addr, count uint32) {
	abi.FreeInt16(ptr(addr), uint(count))
}

//go:wasmexport alloc_f32
func allocF32(count uint32) uint32 {
	return offset(abi.AllocFloat32(uint(count)))
}

//go:wasmexport dealloc_f32
func deallocF32(addr, count uint32) {
	abi.FreeFloat32(ptr(addr), uint(count))
}

//go:wasmexport custom_alloc
func customAlloc(n uint32) uint32 {
	return offset(abi.AllocOpaque(uint(n)))
}

//go:wasmexport dealloc_bytes
func deallocBytes(addr, n uint32) {
	abi.FreeOpaque(ptr(addr), uint(n))
}

//go:wasmexport process_audio_simd
func processAudioSIMD(in, out, count uint32) {
	abi.Convert(ptr(in), ptr(out), uint(count))
}
