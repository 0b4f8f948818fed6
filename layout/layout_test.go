package layout

import (
	"testing"

	"github.com/npillmayer/boxlay"
	"github.com/npillmayer/boxlay/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// countingMeasurer reports a fixed content size and counts its calls.
type countingMeasurer struct {
	count int
	size  boxlay.Size
}

func (m *countingMeasurer) Measure(box *Box, available boxlay.AvailableSize) (boxlay.Size, error) {
	m.count++
	return m.size, nil
}

func TestLeafMeasurement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	m := &countingMeasurer{size: boxlay.Size{W: 10, H: 10}}
	e := New(m)
	s := style.New()
	s.Padding = style.Edges(5)
	leaf := NewLeaf(s, "content")

	size := e.Layout(leaf, boxlay.KnownDimensions{},
		boxlay.AvailSize(boxlay.DefiniteSpace(100), boxlay.DefiniteSpace(100)), ComputeSize)
	// content size padded out to the border box
	assert.Equal(t, boxlay.Size{W: 20, H: 20}, size)
	assert.Equal(t, 1, m.count)
	assert.InDelta(t, 15, leaf.Result().Baseline, 1e-9)
}

func TestLeafMeasurementCached(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	m := &countingMeasurer{size: boxlay.Size{W: 10, H: 10}}
	e := New(m)
	leaf := NewLeaf(style.New(), "content")
	avail := boxlay.AvailSize(boxlay.DefiniteSpace(100), boxlay.DefiniteSpace(100))

	e.Layout(leaf, boxlay.KnownDimensions{}, avail, ComputeSize)
	e.Layout(leaf, boxlay.KnownDimensions{}, avail, ComputeSize)
	assert.Equal(t, 1, m.count)

	// a different constraint occupies the same slot and re-measures
	other := boxlay.AvailSize(boxlay.DefiniteSpace(200), boxlay.DefiniteSpace(100))
	e.Layout(leaf, boxlay.KnownDimensions{}, other, ComputeSize)
	assert.Equal(t, 2, m.count)
}

func TestComputeSizeShortCircuit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	m := &countingMeasurer{size: boxlay.Size{W: 999, H: 999}}
	e := New(m)
	s := style.New()
	s.Size = style.Dimensions{W: style.Length(50), H: style.Length(30)}
	leaf := NewLeaf(s, "content")

	size := e.Layout(leaf, boxlay.KnownDimensions{},
		boxlay.AvailSize(boxlay.DefiniteSpace(100), boxlay.DefiniteSpace(100)), ComputeSize)
	// both dimensions fixed: no measurement happens at all
	assert.Equal(t, boxlay.Size{W: 50, H: 30}, size)
	assert.Equal(t, 0, m.count)
}

func TestInvalidateForcesRemeasure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	m := &countingMeasurer{size: boxlay.Size{W: 10, H: 10}}
	e := New(m)
	leaf := NewLeaf(style.New(), "content")
	avail := boxlay.AvailSize(boxlay.DefiniteSpace(100), boxlay.DefiniteSpace(100))

	e.Layout(leaf, boxlay.KnownDimensions{}, avail, ComputeSize)
	leaf.Invalidate()
	e.Layout(leaf, boxlay.KnownDimensions{}, avail, ComputeSize)
	assert.Equal(t, 2, m.count)
}

func TestAspectRatio(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	e := New(nil)
	s := style.New()
	s.Size.W = style.Length(100)
	s.AspectRatio = boxlay.SomePx(2) // width / height
	leaf := NewLeaf(s, nil)

	size := e.Layout(leaf, boxlay.KnownDimensions{},
		boxlay.AvailSize(boxlay.MaxContent(), boxlay.MaxContent()), ComputeSize)
	assert.Equal(t, boxlay.Size{W: 100, H: 50}, size)
}

func TestHiddenLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	m := &countingMeasurer{size: boxlay.Size{W: 10, H: 10}}
	e := New(m)
	s := style.New()
	s.Display = style.DisplayNone
	s.Size = style.Dimensions{W: style.Length(50), H: style.Length(30)}
	child := NewLeaf(style.New(), "content")
	root := NewBox(s, child)

	size := e.Layout(root, boxlay.KnownDimensions{},
		boxlay.AvailSize(boxlay.DefiniteSpace(100), boxlay.DefiniteSpace(100)), PerformLayout)
	assert.Equal(t, boxlay.Size{}, size)
	assert.Equal(t, boxlay.Size{}, child.Result().Size)
	assert.Equal(t, 0, m.count)
}

func TestHiddenModeOverridesDisplay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	e := New(nil)
	s := style.New()
	s.Size = style.Dimensions{W: style.Length(50), H: style.Length(30)}
	box := NewBox(s)

	size := e.Layout(box, boxlay.KnownDimensions{},
		boxlay.AvailSize(boxlay.DefiniteSpace(100), boxlay.DefiniteSpace(100)), PerformHiddenLayout)
	assert.Equal(t, boxlay.Size{}, size)

	// a later visible pass is not poisoned by the hidden one
	size = e.Layout(box, boxlay.Known(boxlay.SomePx(50), boxlay.SomePx(30)),
		boxlay.AvailSize(boxlay.DefiniteSpace(50), boxlay.DefiniteSpace(30)), PerformLayout)
	assert.Equal(t, boxlay.Size{W: 50, H: 30}, size)
}

func TestMeasureIntrinsicSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	rs := style.New()
	rs.FlexWrap = style.Wrap
	a := NewBox(style.New())
	a.Style.Size = style.Dimensions{W: style.Length(50), H: style.Length(10)}
	b := NewBox(style.New())
	b.Style.Size = style.Dimensions{W: style.Length(50), H: style.Length(10)}
	root := NewBox(rs, a, b)

	e := New(nil)
	in := e.MeasureIntrinsicSizes(root, boxlay.AvailSize(boxlay.MaxContent(), boxlay.MaxContent()))
	assert.InDelta(t, 50, in.MinWidth, 1e-9)
	assert.InDelta(t, 100, in.MaxWidth, 1e-9)
	assert.InDelta(t, 20, in.MinHeight, 1e-9)
	assert.InDelta(t, 10, in.MaxHeight, 1e-9)
}

func TestOverflowChangesAutomaticMinimum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	widthFor := func(overflow style.Overflow) float64 {
		m := &countingMeasurer{size: boxlay.Size{W: 100, H: 10}}
		e := New(m)
		s := style.New()
		s.Display = style.DisplayGrid
		s.GridCols = []style.TrackSize{style.AutoTrack()}
		s.GridRows = []style.TrackSize{style.FixedTrack(10)}
		leaf := NewLeaf(style.New(), "content")
		leaf.Style.Overflow = overflow
		root := NewBox(s, leaf)
		size := e.Layout(root, boxlay.KnownDimensions{},
			boxlay.AvailSize(boxlay.MaxContent(), boxlay.MaxContent()), ComputeSize)
		return size.W
	}
	// visible overflow forces the container to fit the content
	assert.InDelta(t, 100, widthFor(style.OverflowVisible), 1e-9)
	// scrollable content does not
	assert.InDelta(t, 0, widthFor(style.OverflowScroll), 1e-9)
}
