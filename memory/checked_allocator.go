package memory

import (
	"sync"
	"sync/atomic"
)

// CheckedAllocator wraps an Allocator and accounts for every live region.
// It is meant for tests that want to prove buffers are released.
type CheckedAllocator struct {
	mem Allocator
	sz  int64

	allocs sync.Map // base address -> size
}

// NewCheckedAllocator wraps mem.
func NewCheckedAllocator(mem Allocator) *CheckedAllocator {
	return &CheckedAllocator{mem: mem}
}

// CurrentAlloc returns the number of outstanding bytes.
func (a *CheckedAllocator) CurrentAlloc() int { return int(atomic.LoadInt64(&a.sz)) }

func (a *CheckedAllocator) Allocate(size int) []byte {
	out := a.mem.Allocate(size)
	atomic.AddInt64(&a.sz, int64(size))
	if size > 0 {
		a.allocs.Store(AddressOf(out), size)
	}
	return out
}

func (a *CheckedAllocator) Free(b []byte) {
	atomic.AddInt64(&a.sz, -int64(len(b)))
	defer a.mem.Free(b)

	if len(b) == 0 {
		return
	}
	a.allocs.Delete(AddressOf(b))
}

// TestingT is the subset of testing.T used by AssertSize.
type TestingT interface {
	Errorf(format string, args ...any)
	Helper()
}

// AssertSize reports every live region and fails if the outstanding byte count
// differs from sz.
func (a *CheckedAllocator) AssertSize(t TestingT, sz int) {
	t.Helper()

	if sz == 0 {
		a.allocs.Range(func(key, value any) bool {
			t.Errorf("LEAK of %d bytes at %#x", value.(int), key.(uintptr))
			return true
		})
	}

	if got := a.CurrentAlloc(); got != sz {
		t.Errorf("invalid memory size exp=%d, got=%d", sz, got)
	}
}

var _ Allocator = (*CheckedAllocator)(nil)
