package abi

import (
	"unsafe"

	"github.com/cwbudde/algo-pcm/memory"
	"github.com/cwbudde/algo-pcm/pcm"
	"github.com/rs/zerolog"
)

// Runtime serves the function table from one allocator. It holds no record of
// outstanding buffers beyond what its allocator needs, and adds no locking:
// calls on disjoint buffers may run concurrently.
//
// Buffers are passed as unsafe.Pointer. Integer addresses from a host are
// converted at the entry points, never here.
type Runtime struct {
	mem memory.Allocator
	log zerolog.Logger
}

// New returns a Runtime configured by opts.
func New(opts ...Option) *Runtime {
	cfg := ApplyOptions(opts...)
	return &Runtime{mem: cfg.Allocator, log: cfg.Logger}
}

// AllocInt16 returns a buffer of count int16 elements.
func (r *Runtime) AllocInt16(count uint) unsafe.Pointer {
	return r.allocate("i16", count, memory.Int16Size)
}

// FreeInt16 releases a buffer from AllocInt16. count must equal the count it
// was allocated with.
func (r *Runtime) FreeInt16(p unsafe.Pointer, count uint) {
	r.release("i16", p, count, memory.Int16Size)
}

// AllocFloat32 returns a buffer of count float32 elements.
func (r *Runtime) AllocFloat32(count uint) unsafe.Pointer {
	return r.allocate("f32", count, memory.Float32Size)
}

// FreeFloat32 releases a buffer from AllocFloat32. count must equal the count
// it was allocated with.
func (r *Runtime) FreeFloat32(p unsafe.Pointer, count uint) {
	r.release("f32", p, count, memory.Float32Size)
}

// AllocOpaque returns n raw bytes. The region belongs to the caller from here
// on; the runtime never reclaims it by itself.
func (r *Runtime) AllocOpaque(n uint) unsafe.Pointer {
	return r.allocate("bytes", n, memory.ByteSize)
}

// FreeOpaque releases a region from AllocOpaque. It exists because a Go heap
// region is only collectable once the allocator lets go of it.
func (r *Runtime) FreeOpaque(p unsafe.Pointer, n uint) {
	r.release("bytes", p, n, memory.ByteSize)
}

// Convert reads count float32 samples at in and writes count int16 samples at
// out. in and out may be the same buffer; see pcm.Convert for ordering.
func (r *Runtime) Convert(in, out unsafe.Pointer, count uint) {
	r.log.Debug().
		Uint64("in", uint64(uintptr(in))).
		Uint64("out", uint64(uintptr(out))).
		Uint("count", count).
		Msg("convert")

	if count == 0 {
		return
	}

	n := int(count)
	src := unsafe.Slice((*float32)(in), n)
	dst := unsafe.Slice((*int16)(out), n)
	pcm.Convert(dst, src)
}

func (r *Runtime) allocate(kind string, count uint, elemSize int) unsafe.Pointer {
	size := memory.ByteLen(int(count), elemSize)
	b := r.mem.Allocate(size)

	r.log.Debug().
		Str("kind", kind).
		Uint64("addr", uint64(memory.AddressOf(b))).
		Uint("count", count).
		Int("bytes", size).
		Msg("allocate")

	return memory.PointerOf(b)
}

func (r *Runtime) release(kind string, p unsafe.Pointer, count uint, elemSize int) {
	size := memory.ByteLen(int(count), elemSize)

	r.log.Debug().
		Str("kind", kind).
		Uint64("addr", uint64(uintptr(p))).
		Uint("count", count).
		Int("bytes", size).
		Msg("release")

	r.mem.Free(memory.At(p, size))
}
