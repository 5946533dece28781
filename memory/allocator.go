package memory

const (
	alignment = 64
)

// Allocator allocates and frees raw byte regions.
//
// Free must receive a slice with the base address and length of a slice
// returned by Allocate on the same allocator.
type Allocator interface {
	Allocate(size int) []byte
	Free(b []byte)
}

// DefaultAllocator is the Go heap allocator used when nothing else is
// configured. It is safe to use from multiple goroutines.
var DefaultAllocator Allocator = NewGoAllocator()
