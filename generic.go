package vecbuf

import (
	"fmt"
	"unsafe"
)

// Scalar constrains elements to fixed-width numeric types. Pointer-bearing
// types are excluded: backing regions may live outside the Go heap, where
// stored pointers would be invisible to the garbage collector.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Push appends value's bytes to v, growing the buffer if needed. A push
// may relocate the backing region; any slice previously obtained from
// Bytes is invalid afterwards.
func Push[T Scalar](v *Vec, value T) {
	w := int(unsafe.Sizeof(value))

	v.grow(w)

	src := unsafe.Slice((*byte)(unsafe.Pointer(&value)), w) //nolint:gosec // unsafe is required for raw element access
	copy(v.region.Bytes()[v.size:v.size+w], src)
	v.size += w

	v.metrics.RecordPush(w)
}

// Get returns the element of type T at the given element index. The read
// must lie entirely within the occupied bytes; otherwise an error wrapping
// ErrOutOfBounds is returned. Get has no side effects.
func Get[T Scalar](v *Vec, index uint32) (T, error) {
	var out T
	w := int(unsafe.Sizeof(out))

	off, err := span(v, index, w)
	if err != nil {
		return out, err
	}

	copy(unsafe.Slice((*byte)(unsafe.Pointer(&out)), w), v.region.Bytes()[off:off+w]) //nolint:gosec // unsafe is required for raw element access
	return out, nil
}

// Swap exchanges the elements of type T at element indices i and j. Both
// spans are staged through temporary storage before either is written, and
// i == j leaves the buffer byte-for-byte identical. Returns an error
// wrapping ErrOutOfBounds if either span extends beyond the occupied bytes.
func Swap[T Scalar](v *Vec, i, j uint32) error {
	a, err := Get[T](v, i)
	if err != nil {
		return err
	}

	b, err := Get[T](v, j)
	if err != nil {
		return err
	}

	if i == j {
		return nil
	}

	set(v, i, b)
	set(v, j, a)
	return nil
}

// set writes value at an element index already validated by span.
func set[T Scalar](v *Vec, index uint32, value T) {
	w := int(unsafe.Sizeof(value))
	off := int(index) * w
	copy(v.region.Bytes()[off:off+w], unsafe.Slice((*byte)(unsafe.Pointer(&value)), w)) //nolint:gosec // unsafe is required for raw element access
}

// span validates that the w-byte element at index lies entirely within the
// occupied bytes and returns its byte offset.
func span(v *Vec, index uint32, w int) (int, error) {
	off := uint64(index) * uint64(w)
	if off+uint64(w) > uint64(v.size) {
		return 0, fmt.Errorf("%w: span [%d, %d) exceeds length %d", ErrOutOfBounds, off, off+uint64(w), v.size)
	}
	return int(off), nil
}

// PushUint8 appends a single byte. It is the 1-byte instantiation of Push.
func (v *Vec) PushUint8(b uint8) { Push(v, b) }

// Uint8 returns the byte at element index i. It is the 1-byte
// instantiation of Get.
func (v *Vec) Uint8(i uint32) (uint8, error) { return Get[uint8](v, i) }

// SwapUint8 exchanges the bytes at element indices i and j. It is the
// 1-byte instantiation of Swap.
func (v *Vec) SwapUint8(i, j uint32) error { return Swap[uint8](v, i, j) }
