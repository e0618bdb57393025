package resource

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrMemoryLimitExceeded is returned when the memory budget would be exceeded.
var ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for reserved page memory.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// ReserveLimitBytesPerSec is the maximum reservation throughput.
	// If 0, unlimited.
	ReserveLimitBytesPerSec int64
}

// Controller tracks and limits memory obtained through page allocators.
type Controller struct {
	cfg Config

	// Memory
	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	// Reservation throughput
	reserveLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.ReserveLimitBytesPerSec > 0 {
		c.reserveLimiter = rate.NewLimiter(rate.Limit(cfg.ReserveLimitBytesPerSec), int(cfg.ReserveLimitBytesPerSec))
	}

	return c
}

// AcquireMemory attempts to reserve memory.
// Returns ErrMemoryLimitExceeded if the limit would be exceeded.
// Non-blocking - callers control the failure policy.
func (c *Controller) AcquireMemory(bytes int64) error {
	if c == nil {
		return nil
	}
	if bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if !c.memSem.TryAcquire(bytes) {
			return ErrMemoryLimitExceeded
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil {
		return
	}
	if bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the current memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// MemoryLimit returns the configured memory limit in bytes (0 if unlimited).
func (c *Controller) MemoryLimit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MemoryLimitBytes
}

// ThrottleReserve waits until the reservation rate limit allows the
// specified number of bytes.
func (c *Controller) ThrottleReserve(ctx context.Context, bytes int) error {
	if c == nil || c.reserveLimiter == nil {
		return nil
	}
	return c.reserveLimiter.WaitN(ctx, bytes)
}

// TryThrottleReserve attempts to acquire reservation tokens without blocking.
// Returns true if tokens were acquired, false otherwise.
func (c *Controller) TryThrottleReserve(bytes int) bool {
	if c == nil || c.reserveLimiter == nil {
		return true
	}
	return c.reserveLimiter.AllowN(time.Now(), bytes)
}
