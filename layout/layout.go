package layout

import (
	"github.com/npillmayer/boxlay"
	"github.com/npillmayer/boxlay/style"
)

// RunMode selects what a layout call is expected to produce.
type RunMode int

// Run modes.
const (
	// PerformLayout computes sizes and assigns final offsets to every
	// descendant of the box.
	PerformLayout RunMode = iota
	// ComputeSize computes a width/height only, skipping positioning.
	ComputeSize
	// PerformHiddenLayout produces a zero-size result for an undisplayed
	// box without measuring any content, but still visits children so
	// their layout records exist for later mode switches.
	PerformHiddenLayout
)

func (m RunMode) String() string {
	switch m {
	case ComputeSize:
		return "compute-size"
	case PerformHiddenLayout:
		return "hidden-layout"
	}
	return "perform-layout"
}

// Engine drives layout over a box tree. It carries the leaf-measurement
// collaborator; everything else is per-box state.
//
// An Engine is stateless across calls and may be shared between trees,
// but a single tree must not be laid out by two goroutines at once: the
// per-box caches are unsynchronized by design.
type Engine struct {
	measurer Measurer
}

// New creates an Engine. A nil measurer makes every leaf measure as
// zero-size.
func New(m Measurer) *Engine {
	return &Engine{measurer: m}
}

// Layout computes the geometry of box under the given constraints and
// returns its border-box size. In PerformLayout mode, every descendant's
// Result is filled in afterwards, with locations relative to the
// respective containing box; the top box is positioned at the origin.
func (e *Engine) Layout(box *Box, known boxlay.KnownDimensions, avail boxlay.AvailableSize, mode RunMode) boxlay.Size {
	tracer().Debugf("layout %v: known=%v, avail=%v", mode, known, avail)
	size := e.layoutBox(box, known, avail, mode)
	if mode == PerformLayout {
		box.result.Location = boxlay.Point{}
	}
	return size
}

// layoutBox is the per-box layout entry point, shared by all modes and
// by all re-entrant measurement calls of the algorithms.
func (e *Engine) layoutBox(box *Box, known boxlay.KnownDimensions, avail boxlay.AvailableSize, mode RunMode) boxlay.Size {
	if mode == PerformHiddenLayout || box.Style.Display == style.DisplayNone {
		return e.hiddenLayout(box)
	}

	// Fill unset dimensions from the box's own style before anything
	// else; the early exit below depends on it.
	known = known.OrElse(e.styledSize(box, avail))

	// The single most important performance check: a size-only query
	// with both dimensions fixed has its answer already.
	if mode == ComputeSize && known.BothSet() {
		return known.ToSize()
	}

	if size, ok := box.cache.Get(known, avail, mode); ok {
		tracer().Debugf("cache hit for %v at %v/%v", mode, known, avail)
		return size
	}

	var size boxlay.Size
	switch {
	case box.IsLeaf():
		size = e.measureLeaf(box, known, avail)
	case box.Style.Display == style.DisplayGrid:
		size = e.gridLayout(box, known, avail, mode)
	default:
		size = e.flexLayout(box, known, avail, mode)
	}

	box.cache.Store(known, avail, mode, size)
	if mode == PerformLayout {
		box.result.Size = size
	}
	return size
}

// styledSize resolves the box's preferred size against the available
// space, clamps it by min/max and applies the aspect ratio.
func (e *Engine) styledSize(box *Box, avail boxlay.AvailableSize) boxlay.KnownDimensions {
	basis := boxlay.Known(avail.W.AsOption(), avail.H.AsOption())
	s := box.Style
	size := s.Size.Resolve(basis)
	min := s.MinSize.Resolve(basis)
	max := s.MaxSize.Resolve(basis)
	if ratio := s.AspectRatio; ratio.IsSome() && ratio.Unwrap() > 0 {
		if size.W.IsSome() && size.H.IsNone() {
			size.H = boxlay.SomePx(size.W.Unwrap() / ratio.Unwrap())
		} else if size.H.IsSome() && size.W.IsNone() {
			size.W = boxlay.SomePx(size.H.Unwrap() * ratio.Unwrap())
		}
	}
	return boxlay.Known(
		boxlay.ClampOpt(size.W, min.W, max.W),
		boxlay.ClampOpt(size.H, min.H, max.H),
	)
}

// hiddenLayout zeroes the subtree's results without measuring content.
func (e *Engine) hiddenLayout(box *Box) boxlay.Size {
	box.result = Result{}
	for _, child := range box.Children {
		e.hiddenLayout(child)
	}
	return boxlay.Size{}
}

// measureLeaf produces the size of a box without box-model children by
// delegating to the measuring collaborator. The measured content size is
// padded out to a border-box size; known dimensions and min/max win over
// measurement.
func (e *Engine) measureLeaf(box *Box, known boxlay.KnownDimensions, avail boxlay.AvailableSize) boxlay.Size {
	basis := known.W.OrElse(avail.W.AsOption())
	padding := box.Style.Padding.Resolve(basis)
	border := box.Style.Border.Resolve(basis)
	pb := padding.Add(border)

	var content boxlay.Size
	if e.measurer != nil && box.Content != nil {
		inner := boxlay.AvailSize(
			avail.W.WithDefinite(known.W).Sub(pb.Horizontal()),
			avail.H.WithDefinite(known.H).Sub(pb.Vertical()),
		)
		measured, err := e.measurer.Measure(box, inner)
		if err != nil {
			// A failing collaborator degrades to zero content, it never
			// aborts layout.
			tracer().Errorf("leaf measurement failed: %v", err)
			measured = boxlay.Size{}
		}
		content = measured
	}

	size := boxlay.Size{
		W: known.W.UnwrapOr(content.W + pb.Horizontal()),
		H: known.H.UnwrapOr(content.H + pb.Vertical()),
	}
	min := box.Style.MinSize.Resolve(boxlay.Known(avail.W.AsOption(), avail.H.AsOption()))
	max := box.Style.MaxSize.Resolve(boxlay.Known(avail.W.AsOption(), avail.H.AsOption()))
	size.W = boxlay.Clamp(size.W, min.W, max.W)
	size.H = boxlay.Clamp(size.H, min.H, max.H)
	box.result.Baseline = size.H - pb[boxlay.Bottom]
	return size
}
