package pagealloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecbuf/resource"
)

func TestHeapAllocator_PageRounding(t *testing.T) {
	a := NewHeap(func(o *Options) {
		o.PageSize = 16
		o.MinReservePages = 0
	})

	require.Equal(t, 16, a.PageSize())

	tests := []struct {
		name     string
		minBytes int
		want     int
	}{
		{"zero takes one page", 0, 16},
		{"one byte takes one page", 1, 16},
		{"exact page", 16, 16},
		{"page plus one", 17, 32},
		{"many pages", 100, 112},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := a.Reserve(tt.minBytes)
			assert.Equal(t, tt.want, r.Size())
			a.Release(r)
		})
	}
}

func TestHeapAllocator_FirstReservationFloor(t *testing.T) {
	a := NewHeap(func(o *Options) {
		o.PageSize = 16
		o.MinReservePages = 20
	})

	first := a.Reserve(1)
	assert.Equal(t, 20*16, first.Size())

	// The floor applies to the first reservation only.
	second := a.Reserve(1)
	assert.Equal(t, 16, second.Size())

	a.Release(first)
	a.Release(second)
}

func TestHeapAllocator_PageSizePowerOfTwo(t *testing.T) {
	a := NewHeap(func(o *Options) { o.PageSize = 100 })
	assert.Equal(t, 128, a.PageSize())
}

func TestNew_ReserveRelease(t *testing.T) {
	a := New(func(o *Options) { o.MinReservePages = 0 })

	r := a.Reserve(1)
	require.GreaterOrEqual(t, r.Size(), a.PageSize())
	assert.Equal(t, 0, r.Size()%a.PageSize())

	// All capacity bytes must be writable.
	b := r.Bytes()
	b[0] = 0xAA
	b[len(b)-1] = 0x55
	assert.Equal(t, byte(0xAA), b[0])
	assert.Equal(t, byte(0x55), b[len(b)-1])

	a.Release(r)
}

func TestTrackedAllocator_Stats(t *testing.T) {
	a := NewTracked(NewHeap(func(o *Options) {
		o.PageSize = 16
		o.MinReservePages = 0
	}))

	r1 := a.Reserve(10)
	r2 := a.Reserve(20)

	stats := a.Stats()
	assert.Equal(t, uint64(2), stats.Reserves)
	assert.Equal(t, uint64(0), stats.Releases)
	assert.Equal(t, uint64(16+32), stats.BytesReserved)
	assert.Equal(t, int64(2), stats.ActiveRegions)

	a.Release(r1)
	a.Release(r2)

	stats = a.Stats()
	assert.Equal(t, uint64(2), stats.Releases)
	assert.Equal(t, uint64(16+32), stats.BytesReleased)
	assert.Equal(t, int64(0), stats.ActiveRegions)
}

func TestAllocator_MemoryBudget(t *testing.T) {
	ctrl := resource.NewController(resource.Config{MemoryLimitBytes: 64})

	a := NewHeap(func(o *Options) {
		o.PageSize = 16
		o.MinReservePages = 0
		o.Controller = ctrl
	})

	r := a.Reserve(32)
	assert.Equal(t, int64(32), ctrl.MemoryUsage())

	// Exceeding the budget is fatal, not a recoverable error.
	assert.Panics(t, func() { a.Reserve(64) })

	a.Release(r)
	assert.Equal(t, int64(0), ctrl.MemoryUsage())

	// Within budget again after release.
	r = a.Reserve(64)
	assert.Equal(t, int64(64), ctrl.MemoryUsage())
	a.Release(r)
}

func TestRegion_Empty(t *testing.T) {
	var r Region
	assert.Equal(t, 0, r.Size())
	assert.Nil(t, r.Bytes())

	r = NewRegion(make([]byte, 8))
	assert.Equal(t, 8, r.Size())
}
