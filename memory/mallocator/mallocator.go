//go:build cgo

package mallocator

// #include <stdlib.h>
import "C"

import "unsafe"

// Mallocator is a memory.Allocator backed by C malloc.
type Mallocator struct{}

// NewMallocator returns a Mallocator.
func NewMallocator() *Mallocator { return &Mallocator{} }

// Allocate returns size uninitialized bytes from malloc.
func (*Mallocator) Allocate(size int) []byte {
	if size < 0 {
		panic("mallocator: negative size")
	}
	if size == 0 {
		return []byte{}
	}

	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		panic("mallocator: out of memory")
	}
	return unsafe.Slice((*byte)(ptr), size)
}

// Free returns b to the C heap. Empty slices are ignored.
func (*Mallocator) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	C.free(unsafe.Pointer(unsafe.SliceData(b)))
}
