package layout

import (
	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/npillmayer/boxlay"
	"github.com/npillmayer/boxlay/style"
)

// Mode tags a container context as flex or grid. Both modes share the
// same item records and the same alignment routines; only the sizing
// algorithm in the middle differs.
type Mode int

// Container modes.
const (
	ModeFlex Mode = iota
	ModeGrid
)

// Item is the per-child state of one container-layout invocation. All
// CSS-resolved inputs are copied out of the style record at collection
// time; later phases of the algorithms work only off this struct and
// never consult the style collaborator again.
//
// Items live in the container's item slice for the duration of one
// layout invocation and are never heap-allocated individually.
type Item struct {
	Box *Box

	// Resolved CSS inputs.
	Size        boxlay.KnownDimensions
	MinSize     boxlay.KnownDimensions
	MaxSize     boxlay.KnownDimensions
	AspectRatio boxlay.OptionalPx
	Margin      boxlay.Insets
	Padding     boxlay.Insets
	Border      boxlay.Insets
	Overflow    style.Overflow
	AlignSelf   style.Align // already resolved against the container's items value
	JustifySelf style.Align

	// Flex inputs and intermediates.
	FlexGrow    float64
	FlexShrink  float64
	FlexBasis   boxlay.OptionalPx // resolved; unset means "content"
	InnerBasis  float64           // used flex basis (border-box)
	HypoMain    float64           // hypothetical main size, basis clamped by min/max
	TargetMain  float64           // main size after flexible length resolution
	HypoCross   float64           // hypothetical cross size
	TargetCross float64
	Frozen      bool
	Violation   float64

	// Grid intermediates: resolved 0-based track range per axis.
	RowStart, RowSpan int
	ColStart, ColSpan int

	// Shared outputs.
	MainOffset   float64
	CrossOffset  float64
	Baseline     float64 // within the item's own border box
	BaselineShim float64

	marginMain  float64 // precomputed margin sums per container axis
	marginCross float64

	rowPlace style.Placement // declared placement, before resolution
	colPlace style.Placement
}

// OuterMain returns the item's target main size including margins.
func (it *Item) OuterMain() float64 {
	return it.TargetMain + it.marginMain
}

// OuterHypoMain returns the hypothetical main size including margins.
func (it *Item) OuterHypoMain() float64 {
	return it.HypoMain + it.marginMain
}

// Track is one grid row or column during track sizing. The invariant
// GrowthLimit >= BaseSize holds after every phase of the algorithm.
type Track struct {
	BaseSize    float64
	GrowthLimit float64
	Min         style.SizingFunction
	Max         style.SizingFunction
	FlexFactor  float64
	Offset      float64 // track start position after content alignment
}

// IsFlexible returns true for tracks declared with an fr maximum,
// including 0fr tracks.
func (t *Track) IsFlexible() bool {
	return t.Max.IsFlexible()
}

// Line is one row of a wrapping flex container: a contiguous range of
// items plus the line's accumulated main size and resolved cross size.
type Line struct {
	Start, End int // item index range, End exclusive
	MainSize   float64
	CrossSize  float64
	FreeSpace  float64
	CrossStart float64 // cross-axis offset of the line after align-content
}

// Container is the per-invocation context of one flex or grid box: axes,
// resolved sizes and gaps, the ordered item collection, and the
// mode-specific line or track state.
type Container struct {
	Mode Mode
	Box  *Box

	Dir         style.FlexDirection
	MainAxis    boxlay.Axis
	CrossAxis   boxlay.Axis
	Wrap        bool
	WrapReverse bool

	Padding boxlay.Insets
	Border  boxlay.Insets
	PB      boxlay.Insets // padding + border, precomputed

	// Inner (content-box) sizes, where determined.
	InnerKnown boxlay.KnownDimensions
	InnerAvail boxlay.AvailableSize
	MinInner   boxlay.KnownDimensions
	MaxInner   boxlay.KnownDimensions

	GapMain  float64
	GapCross float64

	AlignItems     style.Align
	AlignContent   style.Align
	JustifyItems   style.Align
	JustifyContent style.Align

	Items []Item

	// Flex only.
	Lines []Line

	// Grid only. Rows and Cols are the declared tracks; Occupancy maps a
	// grid cell to the index of the item occupying it.
	Rows      []Track
	Cols      []Track
	Occupancy *hashmap.Map
}

type gridCell struct {
	row, col int
}

// newContainer collects the per-container context for box, copying the
// resolved CSS inputs of every non-hidden child into Item records.
func newContainer(box *Box, known boxlay.KnownDimensions, avail boxlay.AvailableSize) *Container {
	s := box.Style
	c := &Container{
		Box:            box,
		Dir:            s.FlexDirection,
		AlignItems:     s.AlignItems,
		AlignContent:   s.AlignContent,
		JustifyItems:   s.JustifyItems,
		JustifyContent: s.JustifyContent,
	}
	if s.Display == style.DisplayGrid {
		c.Mode = ModeGrid
		// Grids ignore flex-direction: columns run along the horizontal
		// axis, rows along the vertical one.
		c.MainAxis = boxlay.Horizontal
		c.CrossAxis = boxlay.Vertical
	} else {
		c.Mode = ModeFlex
		c.MainAxis = s.FlexDirection.MainAxis()
		c.CrossAxis = s.FlexDirection.CrossAxis()
		c.Wrap = s.FlexWrap != style.NoWrap
		c.WrapReverse = s.FlexWrap == style.WrapReverse
	}

	// Percentage padding and border resolve against the inline size the
	// parent made available.
	pbBasis := known.W.OrElse(avail.W.AsOption())
	c.Padding = s.Padding.Resolve(pbBasis)
	c.Border = s.Border.Resolve(pbBasis)
	c.PB = c.Padding.Add(c.Border)

	// Border-box sizes from the caller or the style, converted to inner
	// (content-box) sizes.
	borderBox := known.OrElse(s.Size.Resolve(boxlay.Known(avail.W.AsOption(), avail.H.AsOption())))
	minBox := s.MinSize.Resolve(boxlay.Known(avail.W.AsOption(), avail.H.AsOption()))
	maxBox := s.MaxSize.Resolve(boxlay.Known(avail.W.AsOption(), avail.H.AsOption()))
	borderBox = boxlay.Known(
		boxlay.ClampOpt(borderBox.W, minBox.W, maxBox.W),
		boxlay.ClampOpt(borderBox.H, minBox.H, maxBox.H),
	)
	c.InnerKnown = boxlay.Known(
		borderBox.W.Sub(c.PB.Horizontal()),
		borderBox.H.Sub(c.PB.Vertical()),
	)
	c.MinInner = boxlay.Known(minBox.W.Sub(c.PB.Horizontal()), minBox.H.Sub(c.PB.Vertical()))
	c.MaxInner = boxlay.Known(maxBox.W.Sub(c.PB.Horizontal()), maxBox.H.Sub(c.PB.Vertical()))
	c.InnerAvail = boxlay.AvailSize(
		avail.W.WithDefinite(borderBox.W).Sub(c.PB.Horizontal()),
		avail.H.WithDefinite(borderBox.H).Sub(c.PB.Vertical()),
	)

	// Gap percentages resolve against the inner size of their own axis.
	gapW := s.Gap(boxlay.Horizontal).Resolve(c.InnerKnown.W).Unwrap()
	gapH := s.Gap(boxlay.Vertical).Resolve(c.InnerKnown.H).Unwrap()
	if c.MainAxis == boxlay.Horizontal {
		c.GapMain, c.GapCross = gapW, gapH
	} else {
		c.GapMain, c.GapCross = gapH, gapW
	}

	c.collectItems()
	return c
}

// collectItems copies the resolved style inputs of every participating
// child. Hidden children get no item record; the layout driver gives
// them a placeholder layout instead.
func (c *Container) collectItems() {
	inner := c.InnerKnown
	c.Items = make([]Item, 0, len(c.Box.Children))
	for _, child := range c.Box.Children {
		cs := child.Style
		if cs.Display == style.DisplayNone {
			continue
		}
		it := Item{
			Box:         child,
			Size:        cs.Size.Resolve(inner),
			MinSize:     cs.MinSize.Resolve(inner),
			MaxSize:     cs.MaxSize.Resolve(inner),
			AspectRatio: cs.AspectRatio,
			Margin:      cs.Margin.Resolve(inner.W),
			Padding:     cs.Padding.Resolve(inner.W),
			Border:      cs.Border.Resolve(inner.W),
			Overflow:    cs.Overflow,
			AlignSelf:   resolveSelf(cs.AlignSelf, c.AlignItems),
			JustifySelf: resolveSelf(cs.JustifySelf, c.JustifyItems),
			FlexGrow:    cs.FlexGrow,
			FlexShrink:  cs.FlexShrink,
			FlexBasis:   cs.FlexBasis.Resolve(inner.Get(c.MainAxis)),
			rowPlace:    cs.RowPlacement,
			colPlace:    cs.ColPlacement,
		}
		it.applyAspectRatio()
		it.marginMain = it.Margin.AxisSum(c.MainAxis)
		it.marginCross = it.Margin.AxisSum(c.CrossAxis)
		c.Items = append(c.Items, it)
	}
}

// applyAspectRatio fills in the missing axis of a preferred size when an
// aspect ratio (width/height) is set and exactly one axis is known.
func (it *Item) applyAspectRatio() {
	if it.AspectRatio.IsNone() {
		return
	}
	ratio := it.AspectRatio.Unwrap()
	if ratio <= 0 {
		return
	}
	if it.Size.W.IsSome() && it.Size.H.IsNone() {
		it.Size.H = boxlay.SomePx(it.Size.W.Unwrap() / ratio)
	} else if it.Size.H.IsSome() && it.Size.W.IsNone() {
		it.Size.W = boxlay.SomePx(it.Size.H.Unwrap() * ratio)
	}
}

// sumBaseSizes returns the sum of the base sizes of tracks plus the gaps
// between them.
func sumBaseSizes(tracks []Track, gap float64) float64 {
	total := 0.0
	for i := range tracks {
		total += tracks[i].BaseSize
	}
	if len(tracks) > 1 {
		total += gap * float64(len(tracks)-1)
	}
	return total
}
