package layout

import (
	"github.com/npillmayer/boxlay"
	"github.com/npillmayer/boxlay/style"
)

// IntrinsicSizes are the four content-dependent extents of a box under a
// given available-space pair.
type IntrinsicSizes struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// MeasureIntrinsicSizes produces a box's min-content and max-content
// extents on both axes. Children are measured at their own intrinsic
// available space, not at the caller's concrete one; results end up in
// the box's measurement cache slots as a side effect, so repeated
// queries within one pass are cheap.
func (e *Engine) MeasureIntrinsicSizes(box *Box, avail boxlay.AvailableSize) IntrinsicSizes {
	min := e.layoutBox(box, boxlay.KnownDimensions{},
		boxlay.AvailSize(boxlay.MinContent(), boxlay.MinContent()), ComputeSize)
	max := e.layoutBox(box, boxlay.KnownDimensions{},
		boxlay.AvailSize(boxlay.MaxContent(), boxlay.MaxContent()), ComputeSize)
	return IntrinsicSizes{
		MinWidth:  min.W,
		MaxWidth:  max.W,
		MinHeight: min.H,
		MaxHeight: max.H,
	}
}

// contentSize measures an item's size on one axis under the given
// content constraint, with the other axis taken from known if determined
// there. A preferred size set on the axis short-circuits measurement.
func (e *Engine) contentSize(c *Container, it *Item, axis boxlay.Axis, known boxlay.KnownDimensions, constraint boxlay.AvailableSpace) float64 {
	if s := it.Size.Get(axis); s.IsSome() {
		return s.Unwrap()
	}
	other := axis.Other()
	av := boxlay.AvailableSize{}
	av = av.Set(axis, constraint)
	if o := known.Get(other); o.IsSome() {
		av = av.Set(other, boxlay.DefiniteSpace(o.Unwrap()))
	} else {
		av = av.Set(other, c.InnerAvail.Get(other))
	}
	measureKnown := known.Set(axis, boxlay.Px())
	return e.layoutBox(it.Box, measureKnown, av, ComputeSize).Get(axis)
}

// minContentContribution is the item's min-content size on the axis,
// clamped by its min/max constraints, plus its margin on that axis.
// (Padding and border are part of the border-box size already.)
func (e *Engine) minContentContribution(c *Container, it *Item, axis boxlay.Axis, known boxlay.KnownDimensions) float64 {
	size := e.contentSize(c, it, axis, known, boxlay.MinContent())
	size = boxlay.Clamp(size, it.MinSize.Get(axis), it.MaxSize.Get(axis))
	return size + it.Margin.AxisSum(axis)
}

// maxContentContribution is the item's max-content size on the axis,
// clamped by its min/max constraints, plus its margin on that axis.
func (e *Engine) maxContentContribution(c *Container, it *Item, axis boxlay.Axis, known boxlay.KnownDimensions) float64 {
	size := e.contentSize(c, it, axis, known, boxlay.MaxContent())
	size = boxlay.Clamp(size, it.MinSize.Get(axis), it.MaxSize.Get(axis))
	return size + it.Margin.AxisSum(axis)
}

// minimumContribution is the item's automatic minimum size on the axis.
// It equals the min-content contribution, except that an item whose
// overflow is not visible never forces a container to grow past its
// explicit minimum (or zero): scrolling is its way out.
func (e *Engine) minimumContribution(c *Container, it *Item, axis boxlay.Axis, known boxlay.KnownDimensions) float64 {
	mc := e.minContentContribution(c, it, axis, known)
	if it.Overflow == style.OverflowVisible {
		return mc
	}
	alt := it.MinSize.Get(axis).UnwrapOr(0) + it.Margin.AxisSum(axis)
	if alt < mc {
		return alt
	}
	return mc
}

// autoMin is the lower clamp used when resolving flexible lengths: the
// explicit minimum if set, else the automatic minimum (min-content for
// visible overflow, zero otherwise).
func (e *Engine) autoMin(c *Container, it *Item, axis boxlay.Axis) float64 {
	if min := it.MinSize.Get(axis); min.IsSome() {
		return min.Unwrap()
	}
	if it.Overflow != style.OverflowVisible {
		return 0
	}
	return e.contentSize(c, it, axis, boxlay.KnownDimensions{}, boxlay.MinContent())
}
