package layout

import (
	"github.com/npillmayer/boxlay"
	"github.com/npillmayer/boxlay/style"
)

// Content is the opaque payload of a leaf box. The layout core never
// inspects it; it is handed to the Measurer as-is.
type Content interface{}

// A Measurer is the text/leaf-measurement collaborator. Given a leaf box
// and an available-space pair it reports the natural width and height of
// the leaf's content. Measuring is expected to be pure in its inputs.
type Measurer interface {
	Measure(box *Box, available boxlay.AvailableSize) (boxlay.Size, error)
}

// MeasureFunc adapts a plain function to the Measurer interface.
type MeasureFunc func(box *Box, available boxlay.AvailableSize) (boxlay.Size, error)

// Measure calls f.
func (f MeasureFunc) Measure(box *Box, available boxlay.AvailableSize) (boxlay.Size, error) {
	return f(box, available)
}

// Box is one node of the layout tree. It owns its result cache and its
// computed geometry; both are valid only as long as the box's style and
// children stay untouched. Mutating either requires a call to Invalidate.
type Box struct {
	Style    *style.Style
	Children []*Box
	Content  Content

	cache  Cache
	result Result
}

// Result is the computed geometry of a box after layout: a border-box
// size and a position relative to the containing box's origin. For grid
// items, the occupied track range is recorded as well.
type Result struct {
	Size     boxlay.Size
	Location boxlay.Point
	Baseline float64 // first-baseline offset from the box's top edge

	// Grid geometry, set when the parent is a grid container.
	Row, Col         int
	RowSpan, ColSpan int
}

// NewBox creates a container box with the given children.
func NewBox(s *style.Style, children ...*Box) *Box {
	if s == nil {
		s = style.New()
	}
	return &Box{Style: s, Children: children}
}

// NewLeaf creates a leaf box carrying measurable content.
func NewLeaf(s *style.Style, content Content) *Box {
	if s == nil {
		s = style.New()
	}
	return &Box{Style: s, Content: content}
}

// IsLeaf returns true for boxes without box-model children.
func (b *Box) IsLeaf() bool {
	return len(b.Children) == 0
}

// Result returns the geometry computed by the most recent layout pass.
func (b *Box) Result() Result {
	return b.result
}

// AppendChild adds a child box and invalidates b's cache.
func (b *Box) AppendChild(child *Box) {
	b.Children = append(b.Children, child)
	b.Invalidate()
}

// Invalidate clears the box's layout cache. The style-resolution
// collaborator must call this whenever any property affecting b's sizing
// changes; a stale cache hit is a correctness bug, not a performance one.
func (b *Box) Invalidate() {
	b.cache.Clear()
}

// InvalidateTree invalidates b and every descendant.
func (b *Box) InvalidateTree() {
	b.Invalidate()
	for _, child := range b.Children {
		child.InvalidateTree()
	}
}
