//go:build unix

package pagealloc

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MmapAllocator reserves regions as anonymous private mappings, keeping
// buffer memory off the Go heap.
type MmapAllocator struct {
	base
}

// NewMmap creates an mmap-backed allocator. The page size is always the OS
// page size.
func NewMmap(optFns ...func(o *Options)) *MmapAllocator {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	return newMmap(opts)
}

func newMmap(opts Options) *MmapAllocator {
	a := &MmapAllocator{}
	a.init(os.Getpagesize(), opts)
	return a
}

func newPlatform(opts Options) Allocator {
	return newMmap(opts)
}

// Reserve maps a fresh anonymous region of page-multiple size.
func (a *MmapAllocator) Reserve(minBytes int) Region {
	size := a.reserveSize(minBytes)

	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		a.released(size)
		panic(fmt.Errorf("pagealloc: failed to map %d anonymous bytes: %w", size, err))
	}

	return Region{data: data, release: unix.Munmap}
}

// Release unmaps the region.
func (a *MmapAllocator) Release(r Region) {
	if r.release != nil && r.data != nil {
		if err := r.release(r.data); err != nil {
			panic(fmt.Errorf("pagealloc: failed to unmap region: %w", err))
		}
	}
	a.released(r.Size())
}
