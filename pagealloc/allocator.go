package pagealloc

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/hupe1980/vecbuf/resource"
)

// DefaultMinReservePages is the page-count floor applied to an allocator's
// first reservation. Reserving a generous block up front amortizes the cost
// of the early doublings a fresh buffer goes through.
const DefaultMinReservePages = 20

// Region is a page-granular block of memory. A region is exclusively owned
// by its holder and must be returned with Release exactly once.
type Region struct {
	data    []byte
	release func([]byte) error
}

// NewRegion wraps raw bytes in a Region. Intended for allocator
// implementations and test doubles; the region carries no release hook.
func NewRegion(data []byte) Region {
	return Region{data: data}
}

// Bytes returns the backing memory.
// Warning: The slice is valid only until the region is released.
func (r Region) Bytes() []byte { return r.data }

// Size returns the region length in bytes.
func (r Region) Size() int { return len(r.data) }

// Allocator supplies page-aligned memory blocks on demand.
//
// Reserve returns a freshly owned region whose size is the smallest
// multiple of PageSize() that is >= minBytes, and at least
// Options.MinReservePages pages for the allocator's first reservation.
// Reserve panics if the underlying memory cannot be obtained: allocation
// failure is fatal, not a recoverable error.
//
// Release returns a previously reserved region to the allocator. Each
// region must be released exactly once; the backing memory must not be
// accessed afterwards.
type Allocator interface {
	Reserve(minBytes int) Region
	Release(r Region)
	PageSize() int
}

// Options configures allocator construction.
type Options struct {
	// MinReservePages is the page-count floor for the allocator's first
	// reservation. Zero disables the floor.
	MinReservePages int

	// PageSize overrides the reservation granularity. Only honored by the
	// heap allocator; mapping-based allocators always use the OS page size.
	// Rounded up to the next power of two.
	PageSize int

	// Controller enforces an optional memory budget and reservation
	// throughput limit. Nil means unlimited.
	Controller *resource.Controller
}

// DefaultOptions is the default allocator configuration.
var DefaultOptions = Options{
	MinReservePages: DefaultMinReservePages,
}

// New returns the platform-default allocator: anonymous memory mappings
// where supported, the Go heap elsewhere.
func New(optFns ...func(o *Options)) Allocator {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	return newPlatform(opts)
}

// Default is the process-wide allocator used when no per-buffer allocator
// is configured. Its first reservation honors DefaultMinReservePages.
var Default Allocator = NewTracked(New())

// base carries the bookkeeping shared by allocator implementations.
type base struct {
	pageSize int
	minPages int
	ctrl     *resource.Controller
	first    atomic.Bool
}

// init fills b in place; base carries an atomic and must not be copied.
func (b *base) init(pageSize int, opts Options) {
	b.pageSize = pageSize
	b.minPages = opts.MinReservePages
	b.ctrl = opts.Controller
}

// PageSize returns the reservation granularity in bytes.
func (b *base) PageSize() int { return b.pageSize }

// reserveSize rounds minBytes up to page granularity, applies the
// first-reservation floor, and charges the memory budget. It panics if the
// budget cannot be obtained.
func (b *base) reserveSize(minBytes int) int {
	if minBytes < 0 {
		minBytes = 0
	}

	size := roundUpPages(minBytes, b.pageSize)
	if size == 0 {
		size = b.pageSize
	}

	if !b.first.Swap(true) {
		if floor := b.minPages * b.pageSize; size < floor {
			size = floor
		}
	}

	if err := b.ctrl.ThrottleReserve(context.Background(), size); err != nil {
		panic(fmt.Errorf("pagealloc: failed to reserve %d bytes: %w", size, err))
	}

	if err := b.ctrl.AcquireMemory(int64(size)); err != nil {
		panic(fmt.Errorf("pagealloc: failed to reserve %d bytes: %w", size, err))
	}

	return size
}

// released returns a region's bytes to the memory budget.
func (b *base) released(size int) {
	b.ctrl.ReleaseMemory(int64(size))
}

// roundUpPages returns the smallest multiple of pageSize that is >= n.
// pageSize must be a power of two.
func roundUpPages(n, pageSize int) int {
	rnd := pageSize - 1
	return (n + rnd) &^ rnd
}
