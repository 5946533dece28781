package memory

import "sync"

// GoAllocator carves 64-byte aligned regions out of the Go heap.
//
// A region's address may be the only reference a host keeps, and the garbage
// collector does not see an address held outside the Go heap. Every non-empty
// region therefore stays in a pin table, keyed by base address, until Free is
// called with it. This table is the only bookkeeping in the module and the
// only place that synchronizes: it exists so the collector can see the region,
// not to validate releases. A region that is never freed is never collected.
// MmapAllocator and mallocator.Mallocator need no table.
type GoAllocator struct {
	pins sync.Map // base address -> backing array
}

// NewGoAllocator returns a ready GoAllocator.
func NewGoAllocator() *GoAllocator { return &GoAllocator{} }

// Allocate returns a zeroed region of size bytes aligned to 64 bytes.
func (a *GoAllocator) Allocate(size int) []byte {
	if size < 0 {
		panic("memory: negative size")
	}

	buf := make([]byte, size+alignment) // padding for 64-byte alignment
	addr := int(AddressOf(buf))
	shift := roundUpToMultipleOf64(addr) - addr
	out := buf[shift : size+shift : size+shift]

	if size > 0 {
		a.pins.Store(AddressOf(out), buf)
	}
	return out
}

// Free drops the pin held for b's base address. Only the address matters;
// b's length is not checked against the allocation.
func (a *GoAllocator) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	a.pins.Delete(AddressOf(b))
}

// Pinned reports how many regions are currently held.
func (a *GoAllocator) Pinned() int {
	n := 0
	a.pins.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

var _ Allocator = (*GoAllocator)(nil)
