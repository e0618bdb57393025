package vecbuf

import (
	"fmt"

	"github.com/hupe1980/vecbuf/internal/conv"
	"github.com/hupe1980/vecbuf/pagealloc"
)

// Vec is a growable, contiguous, byte-oriented buffer. It owns exactly one
// backing region at a time; when an append outgrows capacity the region is
// replaced and the old one released, so addresses into the buffer are
// unstable across pushes.
//
// A Vec is untyped storage: element width is supplied per call by the
// generic Push/Get/Swap instantiations, and Len/Cap are byte counts. Type
// safety across call sites is the caller's responsibility.
//
// A Vec is exclusively owned by one logical owner and is not safe for
// concurrent use; callers that share one across goroutines must wrap every
// operation in external synchronization.
type Vec struct {
	region pagealloc.Region
	size   int
	alloc  pagealloc.Allocator

	logger  *Logger
	metrics MetricsCollector
	freed   bool
}

// New creates an empty Vec with at least capacity bytes reserved, rounded
// up to the allocator's page granularity. All capacity bytes are writable
// but hold garbage until written.
func New(capacity uint32, optFns ...Option) *Vec {
	o := defaultOptions()

	for _, fn := range optFns {
		fn(&o)
	}

	c, err := conv.Uint32ToInt(capacity)
	if err != nil {
		panic(fmt.Errorf("vecbuf: invalid capacity: %w", err))
	}

	v := &Vec{
		alloc:   o.allocator,
		logger:  o.logger,
		metrics: o.metrics,
	}
	v.region = v.alloc.Reserve(c)

	return v
}

// Len returns the number of occupied bytes.
func (v *Vec) Len() uint32 {
	n, err := conv.IntToUint32(v.size)
	if err != nil {
		panic(fmt.Errorf("vecbuf: length exceeds uint32 range: %w", err))
	}
	return n
}

// Cap returns the reserved capacity in bytes, always a multiple of the
// allocator's page size.
func (v *Vec) Cap() uint32 {
	n, err := conv.IntToUint32(v.region.Size())
	if err != nil {
		panic(fmt.Errorf("vecbuf: capacity exceeds uint32 range: %w", err))
	}
	return n
}

// Bytes returns the occupied bytes. The slice aliases the backing region
// and is valid only until the next push or Free; a push may relocate the
// region and leave the slice pointing at released memory.
func (v *Vec) Bytes() []byte {
	return v.region.Bytes()[:v.size]
}

// PushAll appends other's occupied bytes onto v, growing v as needed.
// other is read-only for the duration of the call and left unmodified.
//
// Appending a Vec to itself appends a snapshot of its occupied bytes:
// growth copies the occupied region into the new backing before the old
// one is released, so the post-growth buffer is the pre-growth snapshot.
func (v *Vec) PushAll(other *Vec) {
	n := other.size
	if n == 0 {
		return
	}

	v.grow(n)

	// Safe under self-append: after grow, other's occupied bytes are the
	// first n bytes of the (possibly new) region, and the destination
	// starts at offset size >= n, so source and destination never overlap.
	copy(v.region.Bytes()[v.size:v.size+n], other.region.Bytes()[:n])
	v.size += n

	v.metrics.RecordPush(n)
}

// Free returns the backing region to the allocator. The Vec must not be
// used afterwards. Free is idempotent.
func (v *Vec) Free() {
	if v.freed {
		return
	}
	v.freed = true

	v.alloc.Release(v.region)
	v.region = pagealloc.Region{}
	v.size = 0
}

// grow ensures capacity for n more bytes. The current capacity is doubled
// until sufficient (exact fit when starting from zero); the allocator
// rounds the result up to page granularity. Strictly ordered: reserve new,
// copy occupied bytes, release old, adopt new. Growth never changes size,
// and either fully succeeds or panics on allocator failure - there is no
// partial state.
func (v *Vec) grow(n int) {
	need := v.size + n
	capacity := v.region.Size()
	if need <= capacity {
		return
	}

	newCap := capacity
	if newCap == 0 {
		newCap = need
	}
	for newCap < need {
		newCap *= 2
	}

	next := v.alloc.Reserve(newCap)
	copy(next.Bytes(), v.region.Bytes()[:v.size])
	v.alloc.Release(v.region)
	v.region = next

	v.metrics.RecordGrow(v.size)
	v.logger.LogGrow(capacity, next.Size(), v.size)
}
