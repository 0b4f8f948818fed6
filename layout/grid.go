package layout

import (
	"math"
	"sort"

	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/npillmayer/boxlay"
	"github.com/npillmayer/boxlay/style"
)

// gridLayout runs grid layout for one container box: placement of the
// items into the explicitly declared tracks, the five-phase track sizing
// algorithm per axis, track and item alignment, and, in PerformLayout
// mode, the positioned layout of every item.
func (e *Engine) gridLayout(box *Box, known boxlay.KnownDimensions, avail boxlay.AvailableSize, mode RunMode) boxlay.Size {
	c := newContainer(box, known, avail)

	if mode == PerformLayout {
		for _, child := range box.Children {
			if child.Style.Display == style.DisplayNone {
				e.hiddenLayout(child)
			}
		}
	}

	c.Cols = makeTracks(box.Style.GridCols)
	c.Rows = makeTracks(box.Style.GridRows)
	if len(c.Items) == 0 || len(c.Cols) == 0 || len(c.Rows) == 0 {
		// A zero-track grid (or one without items) degenerates to its
		// declared size, with any fixed tracks still taking their room.
		e.sizeTracks(c, boxlay.Horizontal)
		e.sizeTracks(c, boxlay.Vertical)
		return e.gridContainerSize(c)
	}

	e.placeItems(c)
	// Columns first: row sizing may measure item heights at known
	// column widths.
	e.sizeTracks(c, boxlay.Horizontal)
	e.sizeTracks(c, boxlay.Vertical)

	size := e.gridContainerSize(c)
	innerW := size.W - c.PB.Horizontal()
	innerH := size.H - c.PB.Vertical()

	e.positionTracks(c, boxlay.Horizontal, innerW)
	e.positionTracks(c, boxlay.Vertical, innerH)
	e.positionGridItems(c, mode)
	return size
}

// gridContainerSize is the container's border-box size: the known size,
// or the sum of the sized tracks plus gaps, clamped by min/max.
func (e *Engine) gridContainerSize(c *Container) boxlay.Size {
	w := c.InnerKnown.W
	if w.IsNone() {
		w = boxlay.SomePx(boxlay.Clamp(
			sumBaseSizes(c.Cols, c.gap(boxlay.Horizontal)), c.MinInner.W, c.MaxInner.W))
	}
	h := c.InnerKnown.H
	if h.IsNone() {
		h = boxlay.SomePx(boxlay.Clamp(
			sumBaseSizes(c.Rows, c.gap(boxlay.Vertical)), c.MinInner.H, c.MaxInner.H))
	}
	return boxlay.Size{
		W: w.Unwrap() + c.PB.Horizontal(),
		H: h.Unwrap() + c.PB.Vertical(),
	}
}

func (c *Container) gap(axis boxlay.Axis) float64 {
	if axis == c.MainAxis {
		return c.GapMain
	}
	return c.GapCross
}

func (c *Container) tracks(axis boxlay.Axis) []Track {
	if axis == boxlay.Horizontal {
		return c.Cols
	}
	return c.Rows
}

func makeTracks(decl []style.TrackSize) []Track {
	tracks := make([]Track, len(decl))
	for i, ts := range decl {
		tracks[i] = Track{Min: ts.Min, Max: ts.Max}
	}
	return tracks
}

// --- Placement -------------------------------------------------------------

// placeItems resolves every item's track range. Explicit placements are
// clamped into the declared grid; the rest are auto-placed row-major
// into the first free area (the "sparse" packing browsers default to).
// Only explicitly declared tracks exist; items falling off the end are
// clamped back in, overlapping if need be.
func (e *Engine) placeItems(c *Container) {
	nRows, nCols := len(c.Rows), len(c.Cols)
	c.Occupancy = hashmap.New()

	clampRange := func(start, span, n int) (int, int) {
		if span > n {
			span = n
		}
		if start < 0 {
			start = 0
		}
		if start+span > n {
			start = n - span
		}
		return start, span
	}

	occupy := func(idx int, it *Item) {
		for r := it.RowStart; r < it.RowStart+it.RowSpan; r++ {
			for col := it.ColStart; col < it.ColStart+it.ColSpan; col++ {
				c.Occupancy.Put(gridCell{row: r, col: col}, idx)
			}
		}
	}
	free := func(rowStart, rowSpan, colStart, colSpan int) bool {
		for r := rowStart; r < rowStart+rowSpan; r++ {
			for col := colStart; col < colStart+colSpan; col++ {
				if _, found := c.Occupancy.Get(gridCell{row: r, col: col}); found {
					return false
				}
			}
		}
		return true
	}

	// Explicitly placed items go first, in document order.
	for i := range c.Items {
		it := &c.Items[i]
		if it.rowPlace.IsAuto() || it.colPlace.IsAuto() {
			continue
		}
		it.RowStart, it.RowSpan = clampRange(it.rowPlace.Start, it.rowPlace.ClampedSpan(), nRows)
		it.ColStart, it.ColSpan = clampRange(it.colPlace.Start, it.colPlace.ClampedSpan(), nCols)
		occupy(i, it)
	}

	// Auto-placement cursor, row-major.
	cursorRow, cursorCol := 0, 0
	for i := range c.Items {
		it := &c.Items[i]
		if !it.rowPlace.IsAuto() && !it.colPlace.IsAuto() {
			continue
		}
		rowSpan := it.rowPlace.ClampedSpan()
		colSpan := it.colPlace.ClampedSpan()
		if rowSpan > nRows {
			rowSpan = nRows
		}
		if colSpan > nCols {
			colSpan = nCols
		}

		placed := false
		if !it.colPlace.IsAuto() {
			// Column is fixed, search down the rows.
			colStart, _ := clampRange(it.colPlace.Start, colSpan, nCols)
			for r := 0; r+rowSpan <= nRows; r++ {
				if free(r, rowSpan, colStart, colSpan) {
					it.RowStart, it.RowSpan = r, rowSpan
					it.ColStart, it.ColSpan = colStart, colSpan
					placed = true
					break
				}
			}
		} else if !it.rowPlace.IsAuto() {
			rowStart, _ := clampRange(it.rowPlace.Start, rowSpan, nRows)
			for col := 0; col+colSpan <= nCols; col++ {
				if free(rowStart, rowSpan, col, colSpan) {
					it.RowStart, it.RowSpan = rowStart, rowSpan
					it.ColStart, it.ColSpan = col, colSpan
					placed = true
					break
				}
			}
		} else {
		scan:
			for r := cursorRow; r+rowSpan <= nRows; r++ {
				startCol := 0
				if r == cursorRow {
					startCol = cursorCol
				}
				for col := startCol; col+colSpan <= nCols; col++ {
					if free(r, rowSpan, col, colSpan) {
						it.RowStart, it.RowSpan = r, rowSpan
						it.ColStart, it.ColSpan = col, colSpan
						cursorRow, cursorCol = r, col
						placed = true
						break scan
					}
				}
			}
		}
		if !placed {
			// Grid is full; clamp into the last possible area.
			it.RowStart, it.RowSpan = clampRange(nRows-rowSpan, rowSpan, nRows)
			it.ColStart, it.ColSpan = clampRange(nCols-colSpan, colSpan, nCols)
			tracer().Debugf("grid full, item %d overlaps at (%d,%d)", i, it.RowStart, it.ColStart)
		}
		occupy(i, it)
	}

	for i := range c.Items {
		it := &c.Items[i]
		r := it.Box
		r.result.Row, r.result.Col = it.RowStart, it.ColStart
		r.result.RowSpan, r.result.ColSpan = it.RowSpan, it.ColSpan
	}
}

func (it *Item) trackRange(axis boxlay.Axis) (start, span int) {
	if axis == boxlay.Horizontal {
		return it.ColStart, it.ColSpan
	}
	return it.RowStart, it.RowSpan
}

// --- Track sizing ----------------------------------------------------------

// sizeTracks assigns a base size and growth limit to every track on one
// axis in five ordered phases. Later phases may only increase a track's
// base size or growth limit; checkTracks guards the invariant after
// every phase.
func (e *Engine) sizeTracks(c *Container, axis boxlay.Axis) {
	tracks := c.tracks(axis)
	if len(tracks) == 0 {
		return
	}
	inner := c.InnerKnown.Get(axis)
	gap := c.gap(axis)

	e.initializeTracks(tracks, inner)
	checkTracks(tracks, "initialize")

	e.resolveIntrinsicTracks(c, axis, tracks, gap)
	checkTracks(tracks, "resolve-intrinsic")

	// Maximize: hand leftover definite space to tracks that may still
	// grow. Skipped entirely for an indefinite container size.
	if inner.IsSome() {
		e.maximizeTracks(tracks, inner.Unwrap(), gap)
	}
	checkTracks(tracks, "maximize")

	e.expandFlexibleTracks(c, axis, tracks, inner, gap)
	checkTracks(tracks, "expand-flexible")

	if inner.IsSome() {
		e.stretchAutoTracks(tracks, inner.Unwrap(), gap)
	}
	checkTracks(tracks, "stretch-auto")
}

// checkTracks asserts growth_limit >= base_size. A violation is a logic
// defect in the sizing phases, not a recoverable condition; it is traced
// and clamped so layout stays monotone.
func checkTracks(tracks []Track, phase string) {
	for i := range tracks {
		t := &tracks[i]
		if t.GrowthLimit < t.BaseSize {
			tracer().Errorf("track %d: growth limit %.2f < base size %.2f after %s",
				i, t.GrowthLimit, t.BaseSize, phase)
			t.GrowthLimit = t.BaseSize
		}
	}
}

// initializeTracks is phase 1: base sizes from fixed minimum sizing
// functions, growth limits from fixed maximums, +Inf for intrinsic ones.
// Flexible maximums pin the growth limit to the base size so the
// maximize phase cannot absorb the space the fr expansion phase is
// entitled to. Percentages against an indefinite container size count as
// unresolved, not zero.
func (e *Engine) initializeTracks(tracks []Track, inner boxlay.OptionalPx) {
	for i := range tracks {
		t := &tracks[i]
		t.BaseSize = t.Min.DefiniteValue(inner).UnwrapOr(0)
		t.FlexFactor = t.Max.FlexFactor()
		switch {
		case t.Max.IsFlexible():
			t.GrowthLimit = t.BaseSize
		default:
			if g := t.Max.DefiniteValue(inner); g.IsSome() {
				t.GrowthLimit = g.Unwrap()
			} else {
				t.GrowthLimit = math.Inf(1)
			}
		}
		if t.GrowthLimit < t.BaseSize {
			t.GrowthLimit = t.BaseSize
		}
	}
}

// spanContribution pairs an item with the track range it spans on the
// axis being sized.
type spanContribution struct {
	item    *Item
	start   int
	span    int
	spansFr bool
}

// resolveIntrinsicTracks is phase 2: grow tracks with content-dependent
// sizing functions to fit the contributions of the items spanning them.
// Items spanning a positive-flex track are processed after all others;
// within each group, narrower spans go first. Positive-flex tracks never
// receive growth here (phase 4 sizes them); 0fr tracks do participate.
func (e *Engine) resolveIntrinsicTracks(c *Container, axis boxlay.Axis, tracks []Track, gap float64) {
	contribs := make([]spanContribution, 0, len(c.Items))
	for i := range c.Items {
		it := &c.Items[i]
		start, span := it.trackRange(axis)
		if span == 0 {
			continue
		}
		sc := spanContribution{item: it, start: start, span: span}
		for ti := start; ti < start+span; ti++ {
			if tracks[ti].FlexFactor > 0 {
				sc.spansFr = true
			}
		}
		contribs = append(contribs, sc)
	}
	sort.SliceStable(contribs, func(i, j int) bool {
		if contribs[i].spansFr != contribs[j].spansFr {
			return !contribs[i].spansFr
		}
		return contribs[i].span < contribs[j].span
	})

	for _, sc := range contribs {
		known := e.spannedKnown(c, axis, sc.item)

		// Base sizes from the minimum contribution, for tracks with an
		// intrinsic minimum sizing function.
		receivers := e.eligibleTracks(tracks, sc, func(t *Track) bool { return t.Min.IsIntrinsic() })
		if len(receivers) > 0 {
			need := e.minimumContribution(c, sc.item, axis, known)
			levelUpBaseSizes(tracks, receivers, need-spannedSpace(tracks, sc, gap))
		}

		// Tracks asking for max-content minimums get the larger
		// max-content contribution as well.
		receivers = e.eligibleTracks(tracks, sc, func(t *Track) bool { return t.Min.IsMaxContent() })
		if len(receivers) > 0 {
			need := e.maxContentContribution(c, sc.item, axis, known)
			levelUpBaseSizes(tracks, receivers, need-spannedSpace(tracks, sc, gap))
		}

		// Growth limits of intrinsic maximums fit the min-content, then
		// the max-content contribution.
		limitReceivers := e.eligibleTracks(tracks, sc, func(t *Track) bool {
			return t.Max.IsIntrinsic()
		})
		if len(limitReceivers) > 0 {
			growGrowthLimits(tracks, sc, limitReceivers, gap,
				e.minContentContribution(c, sc.item, axis, known))
			growGrowthLimits(tracks, sc, limitReceivers, gap,
				e.maxContentContribution(c, sc.item, axis, known))
		}
	}
}

// spannedKnown carries the perpendicular size of an item's area into a
// contribution measurement, so row sizing sees the already-sized column
// widths.
func (e *Engine) spannedKnown(c *Container, axis boxlay.Axis, it *Item) boxlay.KnownDimensions {
	if axis != boxlay.Vertical {
		return boxlay.KnownDimensions{}
	}
	start, span := it.trackRange(boxlay.Horizontal)
	if span == 0 {
		return boxlay.KnownDimensions{}
	}
	area := sumBaseSizes(c.Cols[start:start+span], c.gap(boxlay.Horizontal))
	w := boxlay.Clamp(area-it.Margin.Horizontal(), it.MinSize.W, it.MaxSize.W)
	if s := it.Size.W; s.IsSome() {
		w = boxlay.Clamp(s.Unwrap(), it.MinSize.W, it.MaxSize.W)
	}
	return boxlay.KnownDimensions{W: boxlay.SomePx(w)}
}

// eligibleTracks selects the indices of the spanned tracks matching
// want, excluding tracks with a strictly positive flex factor.
func (e *Engine) eligibleTracks(tracks []Track, sc spanContribution, want func(*Track) bool) []int {
	var sel []int
	for ti := sc.start; ti < sc.start+sc.span; ti++ {
		t := &tracks[ti]
		if t.FlexFactor > 0 {
			continue
		}
		if want(t) {
			sel = append(sel, ti)
		}
	}
	return sel
}

// spannedSpace is the room an item already has: the base sizes of all
// tracks it spans plus the gaps between them.
func spannedSpace(tracks []Track, sc spanContribution, gap float64) float64 {
	total := gap * float64(sc.span-1)
	for ti := sc.start; ti < sc.start+sc.span; ti++ {
		total += tracks[ti].BaseSize
	}
	return total
}

// levelUpBaseSizes distributes amount across the base sizes of the
// selected tracks with a leveling distribution: the tracks currently at
// the minimum base size grow in lockstep until they reach the next
// distinct spanned size, and so on until the amount is used up. All
// tracks tied at the minimum grow simultaneously, without an arbitrary
// tie-break.
func levelUpBaseSizes(tracks []Track, sel []int, amount float64) {
	for amount > boxlay.Epsilon {
		min := math.Inf(1)
		for _, ti := range sel {
			if tracks[ti].BaseSize < min {
				min = tracks[ti].BaseSize
			}
		}
		next := math.Inf(1)
		var tied []int
		for _, ti := range sel {
			b := tracks[ti].BaseSize
			if b-min < boxlay.Epsilon {
				tied = append(tied, ti)
			} else if b < next {
				next = b
			}
		}
		step := amount / float64(len(tied))
		if !math.IsInf(next, 1) && next-min < step {
			step = next - min
		}
		for _, ti := range tied {
			t := &tracks[ti]
			t.BaseSize += step
			if t.GrowthLimit < t.BaseSize {
				t.GrowthLimit = t.BaseSize
			}
		}
		amount -= step * float64(len(tied))
	}
}

// growGrowthLimits raises the growth limits of the selected tracks so
// the spanned area can fit contribution. Infinite limits are seeded from
// the track's base size before receiving their share.
func growGrowthLimits(tracks []Track, sc spanContribution, sel []int, gap float64, contribution float64) {
	current := gap * float64(sc.span-1)
	for ti := sc.start; ti < sc.start+sc.span; ti++ {
		t := &tracks[ti]
		if math.IsInf(t.GrowthLimit, 1) {
			current += t.BaseSize
		} else {
			current += t.GrowthLimit
		}
	}
	extra := contribution - current
	if extra <= 0 {
		return
	}
	share := extra / float64(len(sel))
	for _, ti := range sel {
		t := &tracks[ti]
		if math.IsInf(t.GrowthLimit, 1) {
			t.GrowthLimit = t.BaseSize + share
		} else {
			t.GrowthLimit += share
		}
	}
}

// maximizeTracks is phase 3: positive free space grows every track that
// has room left toward its growth limit, in equal shares, repeating
// until the space is exhausted or nothing can absorb more.
func (e *Engine) maximizeTracks(tracks []Track, inner float64, gap float64) {
	free := inner - sumBaseSizes(tracks, gap)
	for free > boxlay.Epsilon {
		var eligible []int
		for i := range tracks {
			if tracks[i].GrowthLimit-tracks[i].BaseSize > boxlay.Epsilon {
				eligible = append(eligible, i)
			}
		}
		if len(eligible) == 0 {
			return
		}
		share := free / float64(len(eligible))
		grown := 0.0
		for _, ti := range eligible {
			t := &tracks[ti]
			inc := share
			if room := t.GrowthLimit - t.BaseSize; room < inc {
				inc = room
			}
			t.BaseSize += inc
			grown += inc
		}
		if grown < boxlay.Epsilon {
			return
		}
		free -= grown
	}
}

// expandFlexibleTracks is phase 4: find the size of an fr unit and grow
// every positive-flex track to max(base, fr * factor). Zero-flex tracks
// are left untouched.
func (e *Engine) expandFlexibleTracks(c *Container, axis boxlay.Axis, tracks []Track, inner boxlay.OptionalPx, gap float64) {
	anyFlex := false
	for i := range tracks {
		if tracks[i].FlexFactor > 0 {
			anyFlex = true
			break
		}
	}
	if !anyFlex {
		return
	}

	var frUnit float64
	if inner.IsSome() {
		space := inner.Unwrap() - gap*float64(len(tracks)-1)
		frUnit = findFrSize(tracks, space)
	} else {
		// Content-based sizing: the fr unit must be large enough for
		// every flexible track's own base size and for every item
		// spanning flexible tracks.
		for i := range tracks {
			t := &tracks[i]
			if t.FlexFactor > 0 && t.BaseSize/t.FlexFactor > frUnit {
				frUnit = t.BaseSize / t.FlexFactor
			}
		}
		for i := range c.Items {
			it := &c.Items[i]
			start, span := it.trackRange(axis)
			sumF := 0.0
			fixed := gap * float64(span-1)
			for ti := start; ti < start+span; ti++ {
				if tracks[ti].FlexFactor > 0 {
					sumF += tracks[ti].FlexFactor
				} else {
					fixed += tracks[ti].BaseSize
				}
			}
			if sumF <= 0 {
				continue
			}
			required := e.maxContentContribution(c, it, axis, e.spannedKnown(c, axis, it))
			if fraction := (required - fixed) / sumF; fraction > frUnit {
				frUnit = fraction
			}
		}
	}
	if frUnit < 0 || math.IsNaN(frUnit) {
		frUnit = 0
	}

	for i := range tracks {
		t := &tracks[i]
		if t.FlexFactor <= 0 {
			continue
		}
		if sized := frUnit * t.FlexFactor; sized > t.BaseSize {
			t.BaseSize = sized
		}
		if t.GrowthLimit < t.BaseSize {
			t.GrowthLimit = t.BaseSize
		}
	}
}

// findFrSize computes the definite-space fr unit value: leftover space
// divided by the flex factor sum, iteratively treating tracks whose
// base size already exceeds their flexible share as inflexible.
func findFrSize(tracks []Track, space float64) float64 {
	ignored := make([]bool, len(tracks))
	for {
		sumF := 0.0
		leftover := space
		for i := range tracks {
			t := &tracks[i]
			if t.FlexFactor > 0 && !ignored[i] {
				sumF += t.FlexFactor
			} else {
				leftover -= t.BaseSize
			}
		}
		if sumF <= 0 {
			return 0
		}
		if sumF < 1 {
			sumF = 1
		}
		hypo := leftover / sumF
		if hypo < 0 {
			hypo = 0
		}
		violated := false
		for i := range tracks {
			t := &tracks[i]
			if t.FlexFactor > 0 && !ignored[i] && hypo*t.FlexFactor < t.BaseSize {
				ignored[i] = true
				violated = true
			}
		}
		if !violated {
			return hypo
		}
	}
}

// stretchAutoTracks is phase 5: remaining definite free space spreads
// equally over the tracks whose maximum sizing function is exactly auto.
func (e *Engine) stretchAutoTracks(tracks []Track, inner float64, gap float64) {
	free := inner - sumBaseSizes(tracks, gap)
	if free <= 0 {
		return
	}
	var autos []int
	for i := range tracks {
		if tracks[i].Max.IsAuto() {
			autos = append(autos, i)
		}
	}
	if len(autos) == 0 {
		return
	}
	share := free / float64(len(autos))
	for _, ti := range autos {
		t := &tracks[ti]
		t.BaseSize += share
		if t.GrowthLimit < t.BaseSize {
			t.GrowthLimit = t.BaseSize
		}
	}
}

// --- Alignment & positioning -----------------------------------------------

// positionTracks aligns the sized tracks within the container's inner
// space: justify-content distributes columns, align-content rows.
func (e *Engine) positionTracks(c *Container, axis boxlay.Axis, inner float64) {
	tracks := c.tracks(axis)
	if len(tracks) == 0 {
		return
	}
	gap := c.gap(axis)
	kind := c.JustifyContent
	if axis == boxlay.Vertical {
		kind = c.AlignContent
	}
	free := inner - sumBaseSizes(tracks, gap)
	before, between, _ := spaceDistribution(kind, free, len(tracks), gap)
	offset := c.PB.Start(axis) + before
	for i := range tracks {
		tracks[i].Offset = offset
		offset += tracks[i].BaseSize + between
	}
}

// areaExtent is the pixel range covered by a span of positioned tracks.
func areaExtent(tracks []Track, start, span int) (pos, size float64) {
	if span == 0 || start >= len(tracks) {
		return 0, 0
	}
	last := &tracks[start+span-1]
	pos = tracks[start].Offset
	size = last.Offset + last.BaseSize - pos
	return pos, size
}

// positionGridItems sizes and aligns every item inside its grid area,
// applies per-row baseline shims, and (in PerformLayout mode) lays out
// the item boxes at their final sizes.
func (e *Engine) positionGridItems(c *Container, mode RunMode) {
	for i := range c.Items {
		it := &c.Items[i]
		colPos, colSize := areaExtent(c.Cols, it.ColStart, it.ColSpan)
		rowPos, rowSize := areaExtent(c.Rows, it.RowStart, it.RowSpan)

		w := e.gridItemSize(c, it, boxlay.Horizontal, colSize, it.JustifySelf)
		h := e.gridItemSize(c, it, boxlay.Vertical, rowSize, it.AlignSelf)
		it.TargetMain, it.TargetCross = w, h

		if b := it.Box.result.Baseline; b > 0 {
			it.Baseline = b
		} else {
			it.Baseline = h
		}

		freeW := colSize - (w + it.Margin.Horizontal())
		freeH := rowSize - (h + it.Margin.Vertical())
		it.MainOffset = colPos + it.Margin[boxlay.Left] + alignmentOffset(it.JustifySelf, freeW, true)
		var offH float64
		if it.AlignSelf != style.AlignBaseline {
			offH = alignmentOffset(it.AlignSelf, freeH, true)
		}
		it.CrossOffset = rowPos + it.Margin[boxlay.Top] + offH
	}

	// Baseline alignment groups items sharing a row track.
	byRow := make(map[int][]*Item)
	for i := range c.Items {
		it := &c.Items[i]
		byRow[it.RowStart] = append(byRow[it.RowStart], it)
	}
	for _, group := range byRow {
		applyBaselineShims(group, func(it *Item) float64 { return it.Margin[boxlay.Top] })
		for _, it := range group {
			it.CrossOffset += it.BaselineShim
		}
	}

	if mode != PerformLayout {
		return
	}
	for i := range c.Items {
		it := &c.Items[i]
		known := boxlay.Known(boxlay.SomePx(it.TargetMain), boxlay.SomePx(it.TargetCross))
		av := boxlay.AvailSize(
			boxlay.DefiniteSpace(it.TargetMain),
			boxlay.DefiniteSpace(it.TargetCross),
		)
		e.layoutBox(it.Box, known, av, PerformLayout)
		it.Box.result.Location = boxlay.Point{X: it.MainOffset, Y: it.CrossOffset}
		it.Box.result.Row, it.Box.result.Col = it.RowStart, it.ColStart
		it.Box.result.RowSpan, it.Box.result.ColSpan = it.RowSpan, it.ColSpan
	}
}

// gridItemSize resolves an item's used size on one axis inside an area
// of the given size: the preferred size if set, a stretched fill for
// stretch alignment, or the measured content size.
func (e *Engine) gridItemSize(c *Container, it *Item, axis boxlay.Axis, areaSize float64, align style.Align) float64 {
	margins := it.Margin.AxisSum(axis)
	if s := it.Size.Get(axis); s.IsSome() {
		return boxlay.Clamp(s.Unwrap(), it.MinSize.Get(axis), it.MaxSize.Get(axis))
	}
	if align == style.AlignStretch {
		return boxlay.Clamp(areaSize-margins, it.MinSize.Get(axis), it.MaxSize.Get(axis))
	}
	known := boxlay.KnownDimensions{}
	if axis == boxlay.Vertical {
		known = e.spannedKnown(c, axis, it)
	}
	av := boxlay.AvailableSize{}.
		Set(axis, boxlay.DefiniteSpace(areaSize-margins)).
		Set(axis.Other(), c.InnerAvail.Get(axis.Other()))
	size := e.layoutBox(it.Box, known, av, ComputeSize).Get(axis)
	return boxlay.Clamp(size, it.MinSize.Get(axis), it.MaxSize.Get(axis))
}
