// Package pagealloc provides page-granular memory allocators for buffer
// backing regions.
//
// # Overview
//
// An Allocator hands out Regions whose sizes are always multiples of the
// page size. Regions are exclusively owned: the holder releases each region
// exactly once, and never touches the memory afterwards. Allocation failure
// is fatal (a panic), reflecting a memory model with no fallback allocator
// tier; only bounds violations are recoverable errors at the buffer layer.
//
// # Implementations
//
//   - MmapAllocator: anonymous private mappings (mmap on Unix, VirtualAlloc
//     on Windows) kept outside the Go garbage collector's reach
//   - HeapAllocator: plain Go heap slices, with a configurable page size
//     for cheap growth testing
//   - TrackedAllocator: wraps any allocator with atomic reserve/release
//     accounting
//
// New() picks the platform default (mappings where supported, heap
// elsewhere). The package-level Default allocator is shared process-wide.
//
// # First Reservation
//
// The first reservation of an allocator is padded to at least
// MinReservePages pages (20 by default), so a fresh buffer skips its
// earliest, least useful doublings:
//
//	alloc := pagealloc.New(func(o *pagealloc.Options) {
//	    o.MinReservePages = 20
//	})
//	region := alloc.Reserve(64) // >= 20 pages on the first call
//
// # Resource Governance
//
// An optional resource.Controller charges every reservation against a
// memory budget and can rate-limit reservation throughput. Budget
// exhaustion is treated like any other allocation failure: fatal.
package pagealloc
