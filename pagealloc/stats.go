package pagealloc

import (
	"fmt"
	"sync/atomic"
)

// Stats tracks allocator activity.
//
// Note on semantics:
//   - Reserves/Releases: cumulative call counts
//   - BytesReserved/BytesReleased: cumulative bytes handed out / returned
//   - ActiveRegions: regions currently outstanding
type Stats struct {
	Reserves      uint64
	Releases      uint64
	BytesReserved uint64
	BytesReleased uint64
	ActiveRegions int64
}

type atomicStats struct {
	reserves      atomic.Uint64
	releases      atomic.Uint64
	bytesReserved atomic.Uint64
	bytesReleased atomic.Uint64
	activeRegions atomic.Int64
}

// TrackedAllocator wraps an Allocator with reserve/release accounting.
// It verifies the one-release-per-region contract in tests and feeds
// operational metrics in production.
type TrackedAllocator struct {
	inner Allocator
	stats atomicStats
}

// NewTracked wraps inner with accounting.
func NewTracked(inner Allocator) *TrackedAllocator {
	return &TrackedAllocator{inner: inner}
}

// Reserve reserves a region from the wrapped allocator and records it.
func (a *TrackedAllocator) Reserve(minBytes int) Region {
	r := a.inner.Reserve(minBytes)

	a.stats.reserves.Add(1)
	a.stats.bytesReserved.Add(uint64(r.Size()))
	a.stats.activeRegions.Add(1)

	return r
}

// Release records the release and forwards it to the wrapped allocator.
func (a *TrackedAllocator) Release(r Region) {
	a.stats.releases.Add(1)
	a.stats.bytesReleased.Add(uint64(r.Size()))
	a.stats.activeRegions.Add(-1)

	a.inner.Release(r)
}

// PageSize returns the wrapped allocator's page size.
func (a *TrackedAllocator) PageSize() int { return a.inner.PageSize() }

// Stats returns a snapshot of the current allocator statistics.
func (a *TrackedAllocator) Stats() Stats {
	return Stats{
		Reserves:      a.stats.reserves.Load(),
		Releases:      a.stats.releases.Load(),
		BytesReserved: a.stats.bytesReserved.Load(),
		BytesReleased: a.stats.bytesReleased.Load(),
		ActiveRegions: a.stats.activeRegions.Load(),
	}
}

func (a *TrackedAllocator) String() string {
	stats := a.Stats()
	return fmt.Sprintf(
		"TrackedAllocator{reserves: %d, releases: %d, reserved: %.2f KB, released: %.2f KB, active: %d}",
		stats.Reserves,
		stats.Releases,
		float64(stats.BytesReserved)/1024,
		float64(stats.BytesReleased)/1024,
		stats.ActiveRegions,
	)
}
