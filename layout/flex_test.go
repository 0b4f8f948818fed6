package layout

import (
	"testing"

	"github.com/npillmayer/boxlay"
	"github.com/npillmayer/boxlay/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func flexChild(grow, shrink float64, basis style.Dimension) *Box {
	s := style.New()
	s.FlexGrow = grow
	s.FlexShrink = shrink
	s.FlexBasis = basis
	return NewBox(s)
}

func performLayout(t *testing.T, root *Box, w, h boxlay.AvailableSpace) boxlay.Size {
	t.Helper()
	e := New(nil)
	return e.Layout(root, boxlay.KnownDimensions{}, boxlay.AvailSize(w, h), PerformLayout)
}

func TestFlexGrow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	rs := style.New()
	rs.Size.W = style.Length(400)
	a := flexChild(1, 1, style.Length(0))
	b := flexChild(1, 1, style.Length(0))
	c := flexChild(2, 1, style.Length(0))
	root := NewBox(rs, a, b, c)

	size := performLayout(t, root, boxlay.DefiniteSpace(400), boxlay.MaxContent())
	assert.InDelta(t, 400, size.W, 1e-9)
	assert.InDelta(t, 100, a.Result().Size.W, 1e-9)
	assert.InDelta(t, 100, b.Result().Size.W, 1e-9)
	assert.InDelta(t, 200, c.Result().Size.W, 1e-9)
	assert.InDelta(t, 0, a.Result().Location.X, 1e-9)
	assert.InDelta(t, 100, b.Result().Location.X, 1e-9)
	assert.InDelta(t, 200, c.Result().Location.X, 1e-9)
}

func TestFlexGrowSumBelowOne(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	rs := style.New()
	rs.Size.W = style.Length(100)
	a := flexChild(0.5, 1, style.Length(0))
	root := NewBox(rs, a)

	performLayout(t, root, boxlay.DefiniteSpace(100), boxlay.MaxContent())
	// a grow sum below 1 only hands out that fraction of the free space
	assert.InDelta(t, 50, a.Result().Size.W, 1e-9)
}

func TestFlexShrink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	rs := style.New()
	rs.Size.W = style.Length(200)
	a := flexChild(0, 0, style.Length(100))
	b := flexChild(0, 1, style.Length(100))
	c := flexChild(0, 1, style.Length(100))
	root := NewBox(rs, a, b, c)

	performLayout(t, root, boxlay.DefiniteSpace(200), boxlay.MaxContent())
	assert.InDelta(t, 100, a.Result().Size.W, 1e-9)
	assert.InDelta(t, 50, b.Result().Size.W, 1e-9)
	assert.InDelta(t, 50, c.Result().Size.W, 1e-9)
	assert.InDelta(t, 100, b.Result().Location.X, 1e-9)
	assert.InDelta(t, 150, c.Result().Location.X, 1e-9)
}

func TestFlexShrinkRespectsMinSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	rs := style.New()
	rs.Size.W = style.Length(100)
	a := flexChild(0, 1, style.Length(100))
	a.Style.MinSize.W = style.Length(80)
	b := flexChild(0, 1, style.Length(100))
	root := NewBox(rs, a, b)

	performLayout(t, root, boxlay.DefiniteSpace(100), boxlay.MaxContent())
	// a freezes at its minimum, b absorbs the rest of the shortfall
	assert.InDelta(t, 80, a.Result().Size.W, 1e-9)
	assert.InDelta(t, 20, b.Result().Size.W, 1e-9)
}

func TestFlexGrowRespectsMaxSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	rs := style.New()
	rs.Size.W = style.Length(300)
	a := flexChild(1, 1, style.Length(0))
	a.Style.MaxSize.W = style.Length(50)
	b := flexChild(1, 1, style.Length(0))
	root := NewBox(rs, a, b)

	performLayout(t, root, boxlay.DefiniteSpace(300), boxlay.MaxContent())
	assert.InDelta(t, 50, a.Result().Size.W, 1e-9)
	assert.InDelta(t, 250, b.Result().Size.W, 1e-9)
}

func TestFlexCrossStretch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	rs := style.New()
	rs.Size.W = style.Length(100)
	rs.Size.H = style.Length(60)
	a := flexChild(1, 1, style.Length(0))
	b := flexChild(1, 1, style.Length(0))
	b.Style.Size.H = style.Length(20)
	b.Style.AlignSelf = style.AlignCenter
	root := NewBox(rs, a, b)

	performLayout(t, root, boxlay.DefiniteSpace(100), boxlay.DefiniteSpace(60))
	// default stretch fills the line, an explicit size centers instead
	assert.InDelta(t, 60, a.Result().Size.H, 1e-9)
	assert.InDelta(t, 0, a.Result().Location.Y, 1e-9)
	assert.InDelta(t, 20, b.Result().Size.H, 1e-9)
	assert.InDelta(t, 20, b.Result().Location.Y, 1e-9)
}

func TestFlexJustifySpaceBetween(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	rs := style.New()
	rs.Size.W = style.Length(300)
	rs.JustifyContent = style.AlignSpaceBetween
	var children []*Box
	for i := 0; i < 3; i++ {
		c := NewBox(style.New())
		c.Style.Size.W = style.Length(50)
		children = append(children, c)
	}
	root := NewBox(rs, children...)

	performLayout(t, root, boxlay.DefiniteSpace(300), boxlay.MaxContent())
	assert.InDelta(t, 0, children[0].Result().Location.X, 1e-9)
	assert.InDelta(t, 125, children[1].Result().Location.X, 1e-9)
	assert.InDelta(t, 250, children[2].Result().Location.X, 1e-9)
}

func TestFlexWrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	rs := style.New()
	rs.Size.W = style.Length(100)
	rs.FlexWrap = style.Wrap
	var children []*Box
	for i := 0; i < 3; i++ {
		c := flexChild(0, 1, style.Length(60))
		c.Style.Size.H = style.Length(10)
		children = append(children, c)
	}
	root := NewBox(rs, children...)

	size := performLayout(t, root, boxlay.DefiniteSpace(100), boxlay.MaxContent())
	assert.InDelta(t, 30, size.H, 1e-9)
	assert.InDelta(t, 0, children[0].Result().Location.Y, 1e-9)
	assert.InDelta(t, 10, children[1].Result().Location.Y, 1e-9)
	assert.InDelta(t, 20, children[2].Result().Location.Y, 1e-9)
	for _, c := range children {
		assert.InDelta(t, 0, c.Result().Location.X, 1e-9)
	}
}

func TestFlexWrapReverse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	rs := style.New()
	rs.Size.W = style.Length(100)
	rs.FlexWrap = style.WrapReverse
	a := flexChild(0, 1, style.Length(60))
	a.Style.Size.H = style.Length(10)
	b := flexChild(0, 1, style.Length(60))
	b.Style.Size.H = style.Length(10)
	root := NewBox(rs, a, b)

	performLayout(t, root, boxlay.DefiniteSpace(100), boxlay.MaxContent())
	// lines stack from the cross end: the first line sits below the second
	assert.InDelta(t, 10, a.Result().Location.Y, 1e-9)
	assert.InDelta(t, 0, b.Result().Location.Y, 1e-9)
}

func TestFlexRowReverse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	rs := style.New()
	rs.Size.W = style.Length(300)
	rs.FlexDirection = style.RowReverse
	a := NewBox(style.New())
	a.Style.Size.W = style.Length(50)
	b := NewBox(style.New())
	b.Style.Size.W = style.Length(50)
	root := NewBox(rs, a, b)

	performLayout(t, root, boxlay.DefiniteSpace(300), boxlay.MaxContent())
	// document order a, b renders b first along the main axis
	assert.InDelta(t, 50, a.Result().Location.X, 1e-9)
	assert.InDelta(t, 0, b.Result().Location.X, 1e-9)
}

func TestFlexColumn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	rs := style.New()
	rs.Size.H = style.Length(300)
	rs.FlexDirection = style.Column
	a := NewBox(style.New())
	a.Style.Size.H = style.Length(30)
	b := NewBox(style.New())
	b.Style.Size.H = style.Length(30)
	root := NewBox(rs, a, b)

	performLayout(t, root, boxlay.MaxContent(), boxlay.DefiniteSpace(300))
	assert.InDelta(t, 0, a.Result().Location.Y, 1e-9)
	assert.InDelta(t, 30, b.Result().Location.Y, 1e-9)
}

func TestFlexGapAndMargin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	rs := style.New()
	rs.Size.W = style.Length(300)
	rs.ColGap = style.Length(10)
	a := NewBox(style.New())
	a.Style.Size.W = style.Length(50)
	b := NewBox(style.New())
	b.Style.Size.W = style.Length(50)
	b.Style.Margin[boxlay.Left] = style.Length(5)
	root := NewBox(rs, a, b)

	performLayout(t, root, boxlay.DefiniteSpace(300), boxlay.MaxContent())
	assert.InDelta(t, 0, a.Result().Location.X, 1e-9)
	assert.InDelta(t, 65, b.Result().Location.X, 1e-9)
}

func TestFlexHiddenChildTakesNoSpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	rs := style.New()
	rs.Size.W = style.Length(200)
	a := NewBox(style.New())
	a.Style.Size.W = style.Length(50)
	hidden := NewBox(style.New())
	hidden.Style.Display = style.DisplayNone
	hidden.Style.Size.W = style.Length(999)
	b := NewBox(style.New())
	b.Style.Size.W = style.Length(50)
	root := NewBox(rs, a, hidden, b)

	performLayout(t, root, boxlay.DefiniteSpace(200), boxlay.MaxContent())
	assert.Equal(t, boxlay.Size{}, hidden.Result().Size)
	assert.InDelta(t, 50, b.Result().Location.X, 1e-9)
}

func TestFlexContainerPadding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	rs := style.New()
	rs.Size.W = style.Length(120)
	rs.Padding = style.Edges(10)
	a := flexChild(1, 1, style.Length(0))
	root := NewBox(rs, a)

	size := performLayout(t, root, boxlay.DefiniteSpace(120), boxlay.MaxContent())
	assert.InDelta(t, 120, size.W, 1e-9)
	// the item fills the content box and starts past the padding edge
	assert.InDelta(t, 100, a.Result().Size.W, 1e-9)
	assert.InDelta(t, 10, a.Result().Location.X, 1e-9)
	assert.InDelta(t, 10, a.Result().Location.Y, 1e-9)
}

func TestFlexContentSizedMain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlay.layout")
	defer teardown()
	//
	rs := style.New() // no size set
	a := NewBox(style.New())
	a.Style.Size.W = style.Length(40)
	b := NewBox(style.New())
	b.Style.Size.W = style.Length(60)
	root := NewBox(rs, a, b)

	size := performLayout(t, root, boxlay.MaxContent(), boxlay.MaxContent())
	assert.InDelta(t, 100, size.W, 1e-9)
}
