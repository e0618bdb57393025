// Package resource implements a controller for global page-memory limits.
//
// The Controller provides centralized governance of two resource types:
//
//   - Memory: Track and limit bytes reserved by page allocators
//     (non-blocking, fail-fast)
//   - Reservation throughput: Rate-limit how fast new pages may be
//     reserved, smoothing growth bursts
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and atomic
// counters for usage tracking. AcquireMemory is non-blocking and returns
// immediately with ErrMemoryLimitExceeded if the limit would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	if err := rc.AcquireMemory(1024 * 1024); err != nil {
//	    // ErrMemoryLimitExceeded - caller decides the failure policy
//	}
//	defer rc.ReleaseMemory(1024 * 1024)
//
// Page allocators treat a failed acquire as fatal: the host memory model
// has no fallback allocator tier, so exceeding the budget aborts rather
// than propagating a recoverable error.
//
// # Reservation Throttling
//
// Token bucket rate limiter applied to page reservations:
//
//	rc := resource.NewController(resource.Config{
//	    ReserveLimitBytesPerSec: 100 * 1024 * 1024, // 100MB/s
//	})
//
//	if err := rc.ThrottleReserve(ctx, 4096); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use. The underlying
// implementations use atomic operations and sync primitives.
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
