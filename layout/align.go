package layout

import (
	"github.com/npillmayer/boxlay/style"
)

// alignmentOffset maps an alignment keyword to the offset of a single
// aligned subject inside free space. With safe alignment, negative free
// space coerces the keyword to start so the subject never escapes the
// container's start edge.
func alignmentOffset(kind style.Align, freeSpace float64, safe bool) float64 {
	if safe && freeSpace < 0 {
		kind = style.AlignStart
	}
	switch kind {
	case style.AlignEnd:
		return freeSpace
	case style.AlignCenter:
		return freeSpace / 2
	}
	// start, stretch, baseline, auto
	return 0
}

// spaceDistribution computes the spacing produced by a content-
// distribution keyword for n subjects inside freeSpace. The returned
// between value includes the existing gap. Whenever freeSpace is
// negative, every distribution keyword falls back to start semantics so
// that no negative gaps are produced.
func spaceDistribution(kind style.Align, freeSpace float64, n int, gap float64) (before, between, after float64) {
	if n <= 0 {
		return 0, gap, 0
	}
	if freeSpace < 0 {
		return 0, gap, 0
	}
	switch kind {
	case style.AlignSpaceBetween:
		if n == 1 {
			// A single subject cannot be spaced "between"; center it.
			return freeSpace / 2, gap, freeSpace / 2
		}
		return 0, gap + freeSpace/float64(n-1), 0
	case style.AlignSpaceAround:
		share := freeSpace / float64(n)
		return share / 2, gap + share, share / 2
	case style.AlignSpaceEvenly:
		share := freeSpace / float64(n+1)
		return share, gap + share, share
	case style.AlignEnd:
		return freeSpace, gap, 0
	case style.AlignCenter:
		return freeSpace / 2, gap, freeSpace / 2
	}
	// start, stretch and everything else
	return 0, gap, freeSpace
}

// resolveSelf resolves an item-level alignment override against the
// container's items-level value: auto means "inherit the container's".
func resolveSelf(self, items style.Align) style.Align {
	if self == style.AlignAuto {
		return items
	}
	return self
}

// groupBaseline returns the shared baseline of a group of items, i.e.
// the maximum of each item's baseline offset measured from the group's
// cross-axis start (including the item's leading margin). Items not
// participating in baseline alignment are skipped.
func groupBaseline(items []*Item, startMargin func(*Item) float64) float64 {
	max := 0.0
	for _, it := range items {
		if it.AlignSelf != style.AlignBaseline {
			continue
		}
		b := startMargin(it) + it.Baseline
		if b > max {
			max = b
		}
	}
	return max
}

// applyBaselineShims assigns each baseline-aligned item of a group the
// extra cross-axis offset that brings its baseline onto the group
// baseline. Returns the group baseline.
func applyBaselineShims(items []*Item, startMargin func(*Item) float64) float64 {
	group := groupBaseline(items, startMargin)
	for _, it := range items {
		if it.AlignSelf != style.AlignBaseline {
			continue
		}
		it.BaselineShim = group - (startMargin(it) + it.Baseline)
		if it.BaselineShim < 0 {
			it.BaselineShim = 0
		}
	}
	return group
}
