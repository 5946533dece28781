//go:build cgo

// Command pcmcabi builds the buffer and conversion table as a C shared
// library backed by the C heap.
//
// Build:
//
//	go build -buildmode=c-shared -o libalgopcm.so ./cmd/pcmcabi
package main

import "C"

import (
	"unsafe"

	"github.com/cwbudde/algo-pcm/abi"
	"github.com/cwbudde/algo-pcm/internal/hostlog"
	"github.com/cwbudde/algo-pcm/memory/mallocator"
)

var table = abi.New(abi.WithAllocator(mallocator.NewMallocator()))

func init() {
	hostlog.Init()
}

func main() {}

//export alloc_i16
func alloc_i16(count C.size_t) unsafe.Pointer {
	return table.AllocInt16(uint(count))
}

//export dealloc_i16
func dealloc_i16(ptr unsafe.Pointer, count C.size_t) {
	table.FreeInt16(ptr, uint(count))
}

//export alloc_f32
func alloc_f32(count C.size_t) unsafe.Pointer {
	return table.AllocFloat32(uint(count))
}

//export dealloc_f32
func dealloc_f32(ptr unsafe.Pointer, count C.size_t) {
	table.FreeFloat32(ptr, uint(count))
}

//export custom_alloc
func custom_alloc(n C.size_t) unsafe.Pointer {
	return table.AllocOpaque(uint(n))
}

//export dealloc_bytes
func dealloc_bytes(ptr unsafe.Pointer, n C.size_t) {
	table.FreeOpaque(ptr, uint(n))
}

//export process_audio_simd
func process_audio_simd(in, out unsafe.Pointer, count C.size_t) {
	table.Convert(in, out, uint(count))
}
