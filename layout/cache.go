package layout

import (
	"github.com/npillmayer/boxlay"
)

// The cache holds one slot for final, positioned layout results and nine
// slots for measurement-only results. Which measurement slot a query maps
// to is a pure function of which dimensions are known and which
// content-dependent constraints apply to the unknown ones, so repeated
// measurements of one subtree under the algorithm's standard constraint
// combinations never evict each other.
const measureSlotCount = 9

type cacheEntry struct {
	known boxlay.KnownDimensions
	avail boxlay.AvailableSize
	size  boxlay.Size
	valid bool
}

func (e *cacheEntry) matches(known boxlay.KnownDimensions, avail boxlay.AvailableSize) bool {
	return e.valid &&
		e.known == known &&
		e.avail.RoughlyEqual(avail, boxlay.Epsilon)
}

// Cache is the per-box store of prior layout results. The zero value is
// an empty cache.
type Cache struct {
	finalLayout  cacheEntry
	measurements [measureSlotCount]cacheEntry
}

// CacheSlot computes the measurement slot for a (known, available) input
// pair. The result is in 0..8:
//
//	0    both dimensions known
//	1,2  only width known (2 iff height constraint is min-content)
//	3,4  only height known (4 iff width constraint is min-content)
//	5–8  neither known, by the 2x2 combination of min-content constraints
func CacheSlot(known boxlay.KnownDimensions, avail boxlay.AvailableSize) int {
	hasW, hasH := known.W.IsSome(), known.H.IsSome()
	switch {
	case hasW && hasH:
		return 0
	case hasW:
		if avail.H.IsMinContent() {
			return 2
		}
		return 1
	case hasH:
		if avail.W.IsMinContent() {
			return 4
		}
		return 3
	}
	slot := 5
	if avail.W.IsMinContent() {
		slot += 2
	}
	if avail.H.IsMinContent() {
		slot++
	}
	return slot
}

// Get looks up a prior result for the given inputs. PerformLayout queries
// consult the final-layout slot only; ComputeSize queries consult the
// measurement slot selected by CacheSlot. Hidden-layout runs are never
// cached.
func (c *Cache) Get(known boxlay.KnownDimensions, avail boxlay.AvailableSize, mode RunMode) (boxlay.Size, bool) {
	var entry *cacheEntry
	switch mode {
	case PerformLayout:
		entry = &c.finalLayout
	case ComputeSize:
		entry = &c.measurements[CacheSlot(known, avail)]
	default:
		return boxlay.Size{}, false
	}
	if !entry.matches(known, avail) {
		return boxlay.Size{}, false
	}
	return entry.size, true
}

// Store writes a result into the slot corresponding to (known, avail,
// mode), unconditionally overwriting any prior entry.
func (c *Cache) Store(known boxlay.KnownDimensions, avail boxlay.AvailableSize, mode RunMode, size boxlay.Size) {
	var entry *cacheEntry
	switch mode {
	case PerformLayout:
		entry = &c.finalLayout
	case ComputeSize:
		entry = &c.measurements[CacheSlot(known, avail)]
	default:
		return
	}
	*entry = cacheEntry{known: known, avail: avail, size: size, valid: true}
}

// Clear empties all slots.
func (c *Cache) Clear() {
	*c = Cache{}
}
