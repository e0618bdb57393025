//go:build windows

package pagealloc

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// MmapAllocator reserves regions with VirtualAlloc, keeping buffer memory
// off the Go heap.
type MmapAllocator struct {
	base
}

// NewMmap creates a VirtualAlloc-backed allocator. The page size is always
// the OS page size.
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

// Reserve allocates a fresh region of page-multiple size.
func (a *MmapAllocator) Reserve(minBytes int) Region {
	size := a.reserveSize(minBytes)

	// MEM_COMMIT uses demand-paging: pages are only backed by physical
	// memory on first access, similar to Unix mmap behavior. This avoids
	// "paging file is too small" errors on systems with limited paging
	// file space (e.g., CI runners).
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		a.released(size)
		panic(fmt.Errorf("pagealloc: failed to allocate %d bytes: %w", size, err))
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)

	return Region{data: data, release: func([]byte) error {
		// VirtualFree with MEM_RELEASE frees the entire region. We capture
		// 'addr' in the closure, which is safer than reconstructing it
		// from the slice.
		return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
	}}
}

// Release frees the region.
func (a *MmapAllocator) Release(r Region) {
	if r.release != nil && r.data != nil {
		if err := r.release(r.data); err != nil {
			panic(fmt.Errorf("pagealloc: failed to free region: %w", err))
		}
	}
	a.released(r.Size())
}
