package layout

import (
	"testing"

	"github.com/npillmayer/boxlay"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestCacheSlotMapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	w := boxlay.SomePx(100)
	h := boxlay.SomePx(50)
	def := boxlay.DefiniteSpace(200)
	min := boxlay.MinContent()
	max := boxlay.MaxContent()

	assert.Equal(t, 0, CacheSlot(boxlay.Known(w, h), boxlay.AvailSize(def, def)))
	assert.Equal(t, 0, CacheSlot(boxlay.Known(w, h), boxlay.AvailSize(min, min)))
	assert.Equal(t, 1, CacheSlot(boxlay.Known(w, boxlay.Px()), boxlay.AvailSize(def, def)))
	assert.Equal(t, 1, CacheSlot(boxlay.Known(w, boxlay.Px()), boxlay.AvailSize(def, max)))
	assert.Equal(t, 2, CacheSlot(boxlay.Known(w, boxlay.Px()), boxlay.AvailSize(def, min)))
	assert.Equal(t, 3, CacheSlot(boxlay.Known(boxlay.Px(), h), boxlay.AvailSize(def, def)))
	assert.Equal(t, 4, CacheSlot(boxlay.Known(boxlay.Px(), h), boxlay.AvailSize(min, def)))
	assert.Equal(t, 5, CacheSlot(boxlay.KnownDimensions{}, boxlay.AvailSize(def, def)))
	assert.Equal(t, 5, CacheSlot(boxlay.KnownDimensions{}, boxlay.AvailSize(max, max)))
	assert.Equal(t, 6, CacheSlot(boxlay.KnownDimensions{}, boxlay.AvailSize(def, min)))
	assert.Equal(t, 7, CacheSlot(boxlay.KnownDimensions{}, boxlay.AvailSize(min, def)))
	assert.Equal(t, 8, CacheSlot(boxlay.KnownDimensions{}, boxlay.AvailSize(min, min)))
}

func TestCacheSlotTotality(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	knowns := []boxlay.OptionalPx{boxlay.Px(), boxlay.SomePx(100)}
	avails := []boxlay.AvailableSpace{
		boxlay.DefiniteSpace(200), boxlay.MinContent(), boxlay.MaxContent(),
	}
	for _, kw := range knowns {
		for _, kh := range knowns {
			for _, aw := range avails {
				for _, ah := range avails {
					slot := CacheSlot(boxlay.Known(kw, kh), boxlay.AvailSize(aw, ah))
					assert.GreaterOrEqual(t, slot, 0)
					assert.Less(t, slot, measureSlotCount)
				}
			}
		}
	}
}

func TestCacheStoreAndGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	var c Cache
	known := boxlay.Known(boxlay.SomePx(100), boxlay.Px())
	avail := boxlay.AvailSize(boxlay.DefiniteSpace(100), boxlay.DefiniteSpace(50))
	c.Store(known, avail, ComputeSize, boxlay.Size{W: 100, H: 30})

	size, ok := c.Get(known, avail, ComputeSize)
	assert.True(t, ok)
	assert.Equal(t, boxlay.Size{W: 100, H: 30}, size)

	// near-identical available space still hits
	near := boxlay.AvailSize(boxlay.DefiniteSpace(100), boxlay.DefiniteSpace(50+boxlay.Epsilon/2))
	_, ok = c.Get(known, near, ComputeSize)
	assert.True(t, ok)

	// different known dimensions miss
	_, ok = c.Get(boxlay.Known(boxlay.SomePx(99), boxlay.Px()), avail, ComputeSize)
	assert.False(t, ok)

	// measurement results never answer final-layout queries
	_, ok = c.Get(known, avail, PerformLayout)
	assert.False(t, ok)

	c.Clear()
	_, ok = c.Get(known, avail, ComputeSize)
	assert.False(t, ok)
}

func TestCacheIgnoresHiddenLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	var c Cache
	known := boxlay.KnownDimensions{}
	avail := boxlay.AvailSize(boxlay.DefiniteSpace(100), boxlay.DefiniteSpace(100))
	c.Store(known, avail, PerformHiddenLayout, boxlay.Size{W: 1, H: 1})
	_, ok := c.Get(known, avail, PerformHiddenLayout)
	assert.False(t, ok)
	_, ok = c.Get(known, avail, ComputeSize)
	assert.False(t, ok)
}
