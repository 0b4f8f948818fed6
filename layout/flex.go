package layout

import (
	"math"

	"github.com/npillmayer/boxlay"
	"github.com/npillmayer/boxlay/style"
)

// flexLayout runs the flexible-box algorithm for one container box and
// returns its border-box size. In PerformLayout mode, children are laid
// out recursively and receive their final offsets.
func (e *Engine) flexLayout(box *Box, known boxlay.KnownDimensions, avail boxlay.AvailableSize, mode RunMode) boxlay.Size {
	c := newContainer(box, known, avail)
	main, cross := c.MainAxis, c.CrossAxis

	if mode == PerformLayout {
		for _, child := range box.Children {
			if child.Style.Display == style.DisplayNone {
				e.hiddenLayout(child)
			}
		}
	}

	if len(c.Items) == 0 {
		return e.emptyContainerSize(c)
	}

	// Hypothetical main sizes from the used flex basis.
	e.resolveFlexBasis(c)

	// Break items into lines.
	e.collectLines(c)

	// Used inner main size of the container.
	innerMain := c.InnerKnown.Get(main)
	var mainSize float64
	if innerMain.IsSome() {
		mainSize = innerMain.Unwrap()
	} else {
		longest := 0.0
		for li := range c.Lines {
			l := e.lineContentMain(c, &c.Lines[li])
			if l > longest {
				longest = l
			}
		}
		mainSize = boxlay.Clamp(longest, c.MinInner.Get(main), c.MaxInner.Get(main))
	}

	// Resolve flexible lengths per line.
	for li := range c.Lines {
		e.resolveFlexibleLengths(c, &c.Lines[li], mainSize)
	}

	// Cross sizes per item and per line, including baseline grouping.
	for li := range c.Lines {
		e.determineLineCross(c, &c.Lines[li])
	}

	// Used inner cross size.
	innerCross := c.InnerKnown.Get(cross)
	var crossSize float64
	linesCross := 0.0
	for li := range c.Lines {
		linesCross += c.Lines[li].CrossSize
	}
	if len(c.Lines) > 1 {
		linesCross += c.GapCross * float64(len(c.Lines)-1)
	}
	if innerCross.IsSome() {
		crossSize = innerCross.Unwrap()
	} else {
		crossSize = boxlay.Clamp(linesCross, c.MinInner.Get(cross), c.MaxInner.Get(cross))
	}

	// Distribute lines in the cross space and stretch items.
	e.alignLines(c, crossSize, linesCross)
	e.stretchItems(c)

	// Main- and cross-axis offsets for every item.
	e.positionFlexItems(c, mainSize)

	size := boxlay.Size{}
	size = size.Set(main, mainSize+c.PB.AxisSum(main))
	size = size.Set(cross, crossSize+c.PB.AxisSum(cross))

	if mode == PerformLayout {
		e.finalizeFlexChildren(c)
		e.recordContainerBaseline(c)
	}
	return size
}

// emptyContainerSize is the degenerate result for a container without
// participating items: the known sizes, or just the box decoration.
func (e *Engine) emptyContainerSize(c *Container) boxlay.Size {
	w := c.InnerKnown.W.UnwrapOr(boxlay.Clamp(0, c.MinInner.W, c.MaxInner.W))
	h := c.InnerKnown.H.UnwrapOr(boxlay.Clamp(0, c.MinInner.H, c.MaxInner.H))
	return boxlay.Size{W: w + c.PB.Horizontal(), H: h + c.PB.Vertical()}
}

// resolveFlexBasis determines each item's used flex basis and its
// hypothetical main size (the basis clamped by min/max constraints).
func (e *Engine) resolveFlexBasis(c *Container) {
	main := c.MainAxis
	for i := range c.Items {
		it := &c.Items[i]
		basis := it.FlexBasis
		if basis.IsNone() {
			// flex-basis: auto defers to the main size property, and a
			// missing one defers to the max-content size.
			basis = it.Size.Get(main)
		}
		if basis.IsSome() {
			it.InnerBasis = basis.Unwrap()
		} else {
			it.InnerBasis = e.contentSize(c, it, main, boxlay.KnownDimensions{}, boxlay.MaxContent())
		}
		it.HypoMain = boxlay.Clamp(it.InnerBasis, it.MinSize.Get(main), it.MaxSize.Get(main))
	}
}

// collectLines breaks the item sequence into flex lines. Without
// wrapping all items share one line; otherwise items are placed
// greedily, and a min-content main constraint wraps at every
// opportunity.
func (e *Engine) collectLines(c *Container) {
	c.Lines = c.Lines[:0]
	if !c.Wrap {
		c.Lines = append(c.Lines, Line{Start: 0, End: len(c.Items)})
		return
	}
	limit := math.Inf(1)
	mainAvail := c.InnerAvail.Get(c.MainAxis)
	if v, ok := mainAvail.Value(); ok {
		limit = v
	} else if mainAvail.IsMinContent() {
		limit = 0
	}
	start := 0
	used := 0.0
	for i := range c.Items {
		outer := c.Items[i].OuterHypoMain()
		if i > start {
			outer += c.GapMain
		}
		if i > start && used+outer > limit {
			c.Lines = append(c.Lines, Line{Start: start, End: i})
			start = i
			used = c.Items[i].OuterHypoMain()
			continue
		}
		used += outer
	}
	c.Lines = append(c.Lines, Line{Start: start, End: len(c.Items)})
}

// lineContentMain is the content-based main size of a line: the sum of
// the items' hypothetical outer sizes plus gaps, or of their min-content
// contributions under a min-content constraint.
func (e *Engine) lineContentMain(c *Container, line *Line) float64 {
	minContent := c.InnerAvail.Get(c.MainAxis).IsMinContent()
	total := 0.0
	for i := line.Start; i < line.End; i++ {
		it := &c.Items[i]
		if minContent {
			total += e.minimumContribution(c, it, c.MainAxis, boxlay.KnownDimensions{})
		} else {
			total += it.OuterHypoMain()
		}
	}
	if n := line.End - line.Start; n > 1 {
		total += c.GapMain * float64(n-1)
	}
	return total
}

// resolveFlexibleLengths distributes positive or negative free space on
// a line among its unfrozen items, clamping into min/max constraints and
// re-freezing until no violations remain.
func (e *Engine) resolveFlexibleLengths(c *Container, line *Line, innerMain float64) {
	main := c.MainAxis
	n := line.End - line.Start
	gaps := 0.0
	if n > 1 {
		gaps = c.GapMain * float64(n-1)
	}

	hypoSum := 0.0
	for i := line.Start; i < line.End; i++ {
		hypoSum += c.Items[i].OuterHypoMain()
	}
	growing := hypoSum+gaps < innerMain

	// Freeze inflexible items at their hypothetical size.
	for i := line.Start; i < line.End; i++ {
		it := &c.Items[i]
		it.TargetMain = it.HypoMain
		it.Violation = 0
		factor := it.FlexGrow
		if !growing {
			factor = it.FlexShrink
		}
		it.Frozen = factor == 0 ||
			(growing && it.InnerBasis > it.HypoMain) ||
			(!growing && it.InnerBasis < it.HypoMain)
	}

	usedByFrozen := func() float64 {
		used := gaps
		for i := line.Start; i < line.End; i++ {
			it := &c.Items[i]
			if it.Frozen {
				used += it.TargetMain + it.marginMain
			} else {
				used += it.InnerBasis + it.marginMain
			}
		}
		return used
	}
	initialFree := innerMain - usedByFrozen()

	for iter := 0; iter < len(c.Items)+1; iter++ {
		sumFlex := 0.0
		scaledSum := 0.0
		anyUnfrozen := false
		for i := line.Start; i < line.End; i++ {
			it := &c.Items[i]
			if it.Frozen {
				continue
			}
			anyUnfrozen = true
			sumFlex += it.FlexGrow
			scaledSum += it.FlexShrink * it.InnerBasis
		}
		if !anyUnfrozen {
			break
		}

		remaining := innerMain - usedByFrozen()
		if growing && sumFlex < 1 {
			if scaled := initialFree * sumFlex; math.Abs(scaled) < math.Abs(remaining) {
				remaining = scaled
			}
		}

		// Distribute the remaining space.
		for i := line.Start; i < line.End; i++ {
			it := &c.Items[i]
			if it.Frozen {
				continue
			}
			if growing {
				if sumFlex > 0 {
					it.TargetMain = it.InnerBasis + remaining*it.FlexGrow/sumFlex
				} else {
					it.TargetMain = it.InnerBasis
				}
			} else {
				if scaledSum > 0 {
					it.TargetMain = it.InnerBasis - math.Abs(remaining)*(it.FlexShrink*it.InnerBasis)/scaledSum
				} else {
					it.TargetMain = it.InnerBasis
				}
			}
		}

		// Clamp and collect violations.
		totalViolation := 0.0
		for i := line.Start; i < line.End; i++ {
			it := &c.Items[i]
			if it.Frozen {
				continue
			}
			unclamped := it.TargetMain
			clamped := unclamped
			if clamped < 0 {
				clamped = 0
			}
			min := e.autoMin(c, it, main)
			if clamped < min {
				clamped = min
			}
			if max := it.MaxSize.Get(main); max.IsSome() && clamped > max.Unwrap() {
				clamped = max.Unwrap()
			}
			it.Violation = clamped - unclamped
			it.TargetMain = clamped
			totalViolation += it.Violation
		}

		switch {
		case math.Abs(totalViolation) < boxlay.Epsilon:
			for i := line.Start; i < line.End; i++ {
				c.Items[i].Frozen = true
			}
		case totalViolation > 0:
			for i := line.Start; i < line.End; i++ {
				if c.Items[i].Violation > 0 {
					c.Items[i].Frozen = true
				}
			}
		default:
			for i := line.Start; i < line.End; i++ {
				if c.Items[i].Violation < 0 {
					c.Items[i].Frozen = true
				}
			}
		}
	}

	line.MainSize = gaps
	for i := line.Start; i < line.End; i++ {
		line.MainSize += c.Items[i].OuterMain()
	}
	line.FreeSpace = innerMain - line.MainSize
}

// determineLineCross measures each item's hypothetical cross size at its
// resolved main size, applies baseline grouping, and sets the line's
// cross size.
func (e *Engine) determineLineCross(c *Container, line *Line) {
	main, cross := c.MainAxis, c.CrossAxis
	maxOuter := 0.0
	items := make([]*Item, 0, line.End-line.Start)
	for i := line.Start; i < line.End; i++ {
		it := &c.Items[i]
		known := boxlay.KnownDimensions{}.Set(main, boxlay.SomePx(it.TargetMain))
		if s := it.Size.Get(cross); s.IsSome() {
			it.HypoCross = s.Unwrap()
		} else {
			av := boxlay.AvailableSize{}.
				Set(main, boxlay.DefiniteSpace(it.TargetMain)).
				Set(cross, c.InnerAvail.Get(cross))
			it.HypoCross = e.layoutBox(it.Box, known, av, ComputeSize).Get(cross)
		}
		it.HypoCross = boxlay.Clamp(it.HypoCross, it.MinSize.Get(cross), it.MaxSize.Get(cross))
		it.TargetCross = it.HypoCross
		if b := it.Box.result.Baseline; b > 0 {
			it.Baseline = b
		} else {
			it.Baseline = it.HypoCross
		}
		items = append(items, it)
		if outer := it.HypoCross + it.marginCross; outer > maxOuter {
			maxOuter = outer
		}
	}

	// Baseline-aligned items may need more room than the plain maximum.
	group := applyBaselineShims(items, func(it *Item) float64 { return it.Margin.Start(cross) })
	for _, it := range items {
		if it.AlignSelf != style.AlignBaseline {
			continue
		}
		below := it.HypoCross + it.marginCross - it.Margin.Start(cross) - it.Baseline
		if ext := group + below; ext > maxOuter {
			maxOuter = ext
		}
	}
	line.CrossSize = maxOuter
}

// alignLines distributes the flex lines within the container's inner
// cross space per align-content. Stretch hands each line an equal share
// of positive free space.
func (e *Engine) alignLines(c *Container, innerCross, linesCross float64) {
	free := innerCross - linesCross
	if c.AlignContent == style.AlignStretch && free > 0 {
		share := free / float64(len(c.Lines))
		for li := range c.Lines {
			c.Lines[li].CrossSize += share
		}
		free = 0
	}
	before, between, _ := spaceDistribution(c.AlignContent, free, len(c.Lines), c.GapCross)

	offset := c.PB.Start(c.CrossAxis) + before
	if c.WrapReverse {
		for li := len(c.Lines) - 1; li >= 0; li-- {
			c.Lines[li].CrossStart = offset
			offset += c.Lines[li].CrossSize + between
		}
	} else {
		for li := range c.Lines {
			c.Lines[li].CrossStart = offset
			offset += c.Lines[li].CrossSize + between
		}
	}
}

// stretchItems grows auto-sized, stretch-aligned items to fill their
// line's cross size.
func (e *Engine) stretchItems(c *Container) {
	cross := c.CrossAxis
	for li := range c.Lines {
		line := &c.Lines[li]
		for i := line.Start; i < line.End; i++ {
			it := &c.Items[i]
			if it.AlignSelf != style.AlignStretch || it.Size.Get(cross).IsSome() {
				continue
			}
			stretched := line.CrossSize - it.marginCross
			it.TargetCross = boxlay.Clamp(stretched, it.MinSize.Get(cross), it.MaxSize.Get(cross))
		}
	}
}

// positionFlexItems assigns each item its main- and cross-axis offset
// relative to the container's border-box origin.
func (e *Engine) positionFlexItems(c *Container, innerMain float64) {
	main, cross := c.MainAxis, c.CrossAxis
	for li := range c.Lines {
		line := &c.Lines[li]
		n := line.End - line.Start
		before, between, _ := spaceDistribution(c.JustifyContent, line.FreeSpace, n, c.GapMain)

		cursor := c.PB.Start(main) + before
		place := func(i int) {
			it := &c.Items[i]
			it.MainOffset = cursor + it.Margin.Start(main)
			cursor += it.OuterMain() + between

			free := line.CrossSize - (it.TargetCross + it.marginCross)
			var off float64
			if it.AlignSelf == style.AlignBaseline {
				off = it.BaselineShim
			} else {
				off = alignmentOffset(it.AlignSelf, free, true)
			}
			it.CrossOffset = line.CrossStart + it.Margin.Start(cross) + off
		}
		if c.Dir.IsReverse() {
			for i := line.End - 1; i >= line.Start; i-- {
				place(i)
			}
		} else {
			for i := line.Start; i < line.End; i++ {
				place(i)
			}
		}
	}
}

// finalizeFlexChildren performs the positioned layout of every item at
// its now-known final size and writes the relative location.
func (e *Engine) finalizeFlexChildren(c *Container) {
	main, cross := c.MainAxis, c.CrossAxis
	for i := range c.Items {
		it := &c.Items[i]
		known := boxlay.KnownDimensions{}.
			Set(main, boxlay.SomePx(it.TargetMain)).
			Set(cross, boxlay.SomePx(it.TargetCross))
		av := boxlay.AvailSize(
			boxlay.DefiniteSpace(known.W.Unwrap()),
			boxlay.DefiniteSpace(known.H.Unwrap()),
		)
		e.layoutBox(it.Box, known, av, PerformLayout)
		loc := boxlay.Point{}.
			Set(main, it.MainOffset).
			Set(cross, it.CrossOffset)
		it.Box.result.Location = loc
	}
}

// recordContainerBaseline propagates the first item's baseline as the
// container's own.
func (e *Engine) recordContainerBaseline(c *Container) {
	if len(c.Items) == 0 {
		return
	}
	first := &c.Items[0]
	if c.CrossAxis == boxlay.Vertical {
		c.Box.result.Baseline = first.CrossOffset + first.Baseline
	} else {
		// Column container: baseline comes from the first item's own.
		c.Box.result.Baseline = first.Box.result.Location.Y + first.Box.result.Baseline
	}
}
