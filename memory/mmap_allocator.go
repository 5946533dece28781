//go:build linux || darwin || freebsd || netbsd || openbsd

package memory

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// MmapAllocator backs every region with its own anonymous private mapping,
// outside the Go heap. Regions are page aligned and zeroed. Free unmaps, and
// panics if b is not exactly a region this allocator returned.
type MmapAllocator struct{}

// NewMmapAllocator returns an MmapAllocator.
func NewMmapAllocator() *MmapAllocator { return &MmapAllocator{} }

func (*MmapAllocator) Allocate(size int) []byte {
	if size < 0 {
		panic("memory: negative size")
	}
	if size == 0 {
		return []byte{}
	}

	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		panic(fmt.Sprintf("memory: mmap %d bytes: %v", size, err))
	}
	return b
}

func (*MmapAllocator) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	if err := unix.Munmap(b); err != nil {
		panic(fmt.Sprintf("memory: munmap %d bytes: %v", len(b), err))
	}
}

var _ Allocator = (*MmapAllocator)(nil)
