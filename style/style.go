package style

import (
	"github.com/npillmayer/boxlay"
)

// Display selects which layout algorithm a box participates in.
type Display int

// Display modes. Leaf boxes have no box-model children; their content is
// handed to the measuring collaborator as a black box.
const (
	DisplayFlex Display = iota
	DisplayGrid
	DisplayNone
)

func (d Display) String() string {
	switch d {
	case DisplayGrid:
		return "grid"
	case DisplayNone:
		return "none"
	}
	return "flex"
}

// Overflow is the subset of the CSS overflow property the layout core
// cares about: whether content overflow is visible, which changes a box's
// automatic minimum size.
type Overflow int

// Overflow modes.
const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// FlexDirection is the main-axis orientation of a flex container.
type FlexDirection int

// Flex directions.
const (
	Row FlexDirection = iota
	RowReverse
	Column
	ColumnReverse
)

// IsRow returns true for the two horizontal directions.
func (fd FlexDirection) IsRow() bool {
	return fd == Row || fd == RowReverse
}

// IsReverse returns true for the two reversed directions.
func (fd FlexDirection) IsReverse() bool {
	return fd == RowReverse || fd == ColumnReverse
}

// MainAxis returns the geometric axis the main axis maps onto.
func (fd FlexDirection) MainAxis() boxlay.Axis {
	if fd.IsRow() {
		return boxlay.Horizontal
	}
	return boxlay.Vertical
}

// CrossAxis returns the geometric axis perpendicular to the main axis.
func (fd FlexDirection) CrossAxis() boxlay.Axis {
	return fd.MainAxis().Other()
}

// FlexWrap controls line breaking in a flex container.
type FlexWrap int

// Wrap modes.
const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// Align covers the value space of the justify-*/align-* property family.
// Not every value is valid for every property; resolution falls back to
// start semantics for values a property cannot honor.
type Align int

// Alignment keywords.
const (
	AlignAuto Align = iota
	AlignStart
	AlignEnd
	AlignCenter
	AlignStretch
	AlignBaseline
	AlignSpaceBetween
	AlignSpaceAround
	AlignSpaceEvenly
)

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	case AlignStretch:
		return "stretch"
	case AlignBaseline:
		return "baseline"
	case AlignSpaceBetween:
		return "space-between"
	case AlignSpaceAround:
		return "space-around"
	case AlignSpaceEvenly:
		return "space-evenly"
	}
	return "auto"
}

// IsDistribution returns true for the space-* content-distribution values.
func (a Align) IsDistribution() bool {
	return a == AlignSpaceBetween || a == AlignSpaceAround || a == AlignSpaceEvenly
}

// --- Style -----------------------------------------------------------------

// Style is the record of resolved CSS values for one box, as produced by
// the style-resolution collaborator. The layout core copies what it needs
// out of this record once per layout invocation and never reads it again
// afterwards.
type Style struct {
	Display  Display
	Overflow Overflow

	// Box model. Sizes are border-box.
	Size        Dimensions
	MinSize     Dimensions
	MaxSize     Dimensions
	AspectRatio boxlay.OptionalPx // width / height
	Margin      EdgeSizes
	Padding     EdgeSizes
	Border      EdgeSizes

	// Container-level properties, flex and grid alike.
	RowGap         Dimension
	ColGap         Dimension
	AlignItems     Align
	AlignContent   Align
	JustifyItems   Align
	JustifyContent Align

	// Flex container.
	FlexDirection FlexDirection
	FlexWrap      FlexWrap

	// Flex item.
	FlexGrow   float64
	FlexShrink float64
	FlexBasis  Dimension

	// Item-level alignment overrides.
	AlignSelf   Align
	JustifySelf Align

	// Grid container: explicitly declared tracks only.
	GridRows []TrackSize
	GridCols []TrackSize

	// Grid item.
	RowPlacement Placement
	ColPlacement Placement
}

// New creates a Style with CSS initial values: everything auto except
// flex-shrink (1), stretch alignment and span-1 auto placement.
func New() *Style {
	return &Style{
		Size:           AutoSize(),
		MinSize:        AutoSize(),
		MaxSize:        AutoSize(),
		FlexShrink:     1,
		FlexBasis:      Auto(),
		RowGap:         Length(0),
		ColGap:         Length(0),
		AlignItems:     AlignStretch,
		AlignContent:   AlignStretch,
		JustifyItems:   AlignStretch,
		JustifyContent: AlignStart,
		RowPlacement:   AutoPlacement(),
		ColPlacement:   AutoPlacement(),
	}
}

// Gap returns the gap dimension separating tracks/lines along the given
// geometric axis: column-gap for Horizontal, row-gap for Vertical.
func (s *Style) Gap(axis boxlay.Axis) Dimension {
	if axis == boxlay.Horizontal {
		return s.ColGap
	}
	return s.RowGap
}

// Tracks returns the declared track list for the given axis: columns for
// Horizontal, rows for Vertical.
func (s *Style) Tracks(axis boxlay.Axis) []TrackSize {
	if axis == boxlay.Horizontal {
		return s.GridCols
	}
	return s.GridRows
}

// Placement returns the grid placement for the given axis.
func (s *Style) Placement(axis boxlay.Axis) Placement {
	if axis == boxlay.Horizontal {
		return s.ColPlacement
	}
	return s.RowPlacement
}
