package pagealloc

import (
	"math/bits"
	"os"
)

// HeapAllocator reserves page-granular regions from the Go heap. Released
// regions become eligible for garbage collection once unreferenced.
//
// The heap allocator honors Options.PageSize, which makes it the natural
// choice for tests that need small pages to exercise growth cheaply.
type HeapAllocator struct {
	base
}

// NewHeap creates a heap-backed allocator. The page size defaults to the
// OS page size and is rounded up to the next power of two.
func NewHeap(optFns ...func(o *Options)) *HeapAllocator {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	return newHeap(opts)
}

func newHeap(opts Options) *HeapAllocator {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = os.Getpagesize()
	}

	// Round up to the next power of 2 so offset math can use bit masks.
	pageSize = 1 << bits.Len(uint(pageSize-1))

	a := &HeapAllocator{}
	a.init(pageSize, opts)
	return a
}

// Reserve returns a zeroed page-multiple region from the Go heap.
func (a *HeapAllocator) Reserve(minBytes int) Region {
	size := a.reserveSize(minBytes)
	return Region{data: make([]byte, size)}
}

// Release drops the region reference, making it eligible for GC.
func (a *HeapAllocator) Release(r Region) {
	a.released(r.Size())
}
