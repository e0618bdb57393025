package vecbuf

import "errors"

// ErrOutOfBounds is returned by Get and Swap when the requested byte span
// extends beyond the occupied bytes. The contract is to signal failure to
// the immediate caller rather than corrupt memory; callers decide how to
// surface it.
//
// Allocation failure is the other fault kind and is deliberately not an
// error value: page allocators panic when memory cannot be obtained, since
// the memory model has no recovery story for exhaustion.
var ErrOutOfBounds = errors.New("vecbuf: index out of bounds")
