// Package vecbuf provides a growable, contiguous, byte-oriented buffer
// ("Vec") with page-granular allocation.
//
// # Quick Start
//
//	v := vecbuf.New(64)
//	defer v.Free()
//
//	v.PushUint8(10)
//	vecbuf.Push(v, uint32(0xDEADBEEF))
//
//	b, _ := v.Uint8(0)          // 10
//	n, _ := vecbuf.Get[uint32](v, 0) // caller picks the width per call
//
// # Data Model
//
// A Vec owns one contiguous backing region obtained from a page allocator.
// Len reports occupied bytes, Cap reports reserved bytes (always a page
// multiple), and 0 <= Len <= Cap holds at all times. Element width is not
// stored on the Vec; each Push/Get/Swap call supplies it through its
// generic instantiation, so Len is a byte count regardless of what was
// pushed.
//
// # Growth
//
// When an append would exceed capacity, the Vec doubles its capacity until
// the pending write fits, reserves a fresh region, copies the occupied
// bytes, and releases the old region. Doubling amortizes allocation cost
// across many small appends. Growth relocates the buffer: raw slices
// previously obtained via Bytes must not be used across pushes.
//
// # Allocators
//
// Backing memory comes from a pagealloc.Allocator: anonymous mappings on
// platforms that support them, the Go heap elsewhere. The first
// reservation of an allocator is padded to a configurable minimum (20
// pages by default). Allocators can be injected per Vec:
//
//	alloc := pagealloc.NewTracked(pagealloc.New())
//	v := vecbuf.New(0, vecbuf.WithAllocator(alloc))
//
// # Error Handling
//
// Two distinct failure channels:
//
//   - Bounds violations (Get, Swap past the occupied bytes) return errors
//     wrapping ErrOutOfBounds - recoverable, the caller decides.
//   - Allocation failure panics - the memory model has no fallback
//     allocator tier, so exhaustion is fatal by design.
//
// # Thread Safety
//
// A Vec is exclusively owned and never synchronized internally. Sharing
// one across goroutines requires external locking around every operation.
package vecbuf
