//go:build !unix && !windows

package pagealloc

// Platforms without anonymous mappings fall back to the Go heap.
func newPlatform(opts Options) Allocator {
	return newHeap(opts)
}
