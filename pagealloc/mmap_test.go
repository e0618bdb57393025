//go:build unix

package pagealloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMmapAllocator_ReserveRelease(t *testing.T) {
	a := NewMmap(func(o *Options) { o.MinReservePages = 0 })

	r := a.Reserve(1)
	require.Equal(t, a.PageSize(), r.Size())

	// The mapping must be read-write across its full extent.
	b := r.Bytes()
	for i := range b {
		b[i] = byte(i)
	}
	assert.Equal(t, byte(0), b[0])
	assert.Equal(t, byte((r.Size()-1)%256), b[r.Size()-1])

	a.Release(r)
}

func TestMmapAllocator_FirstReservationFloor(t *testing.T) {
	a := NewMmap(func(o *Options) { o.MinReservePages = 2 })

	first := a.Reserve(1)
	assert.Equal(t, 2*a.PageSize(), first.Size())

	second := a.Reserve(1)
	assert.Equal(t, a.PageSize(), second.Size())

	a.Release(first)
	a.Release(second)
}
