package boxlay

import (
	"fmt"
	"math"
)

// Axis denotes one of the two geometric axes of a box.
type Axis int

// The two axes. Flex containers map these onto main/cross depending on
// flex-direction; grids size columns along Horizontal and rows along
// Vertical.
const (
	Horizontal Axis = iota
	Vertical
)

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// --- Optional pixel values -------------------------------------------------

// OptionalPx is an option type for a pixel value which may be unset.
// The zero value is unset.
type OptionalPx struct {
	px  float64
	set bool
}

// SomePx creates an optional pixel value with value px.
// NaN inputs produce an unset option, negative inputs are clamped to 0.
func SomePx(px float64) OptionalPx {
	if math.IsNaN(px) {
		return OptionalPx{}
	}
	if px < 0 {
		px = 0
	}
	return OptionalPx{px: px, set: true}
}

// Px creates an unset optional pixel value.
func Px() OptionalPx {
	return OptionalPx{}
}

// IsNone returns true if o is unset.
func (o OptionalPx) IsNone() bool {
	return !o.set
}

// IsSome returns true if o carries a value.
func (o OptionalPx) IsSome() bool {
	return o.set
}

// Unwrap returns the underlying value of o (zero if unset).
func (o OptionalPx) Unwrap() float64 {
	return o.px
}

// UnwrapOr returns the underlying value of o, or fallback if o is unset.
func (o OptionalPx) UnwrapOr(fallback float64) float64 {
	if !o.set {
		return fallback
	}
	return o.px
}

// OrElse returns o if set, other otherwise.
func (o OptionalPx) OrElse(other OptionalPx) OptionalPx {
	if o.set {
		return o
	}
	return other
}

// Sub subtracts px from a set option and leaves an unset one alone.
func (o OptionalPx) Sub(px float64) OptionalPx {
	if !o.set {
		return o
	}
	return SomePx(o.px - px)
}

func (o OptionalPx) String() string {
	if !o.set {
		return "unset"
	}
	return fmt.Sprintf("%.2fpx", o.px)
}

// Clamp clamps v into the interval given by the optional bounds min and max.
// A contradictory min > max resolves by treating max as authoritative.
func Clamp(v float64, min, max OptionalPx) float64 {
	if min.set && v < min.px {
		v = min.px
	}
	if max.set && v > max.px {
		v = max.px
	}
	return v
}

// ClampOpt is Clamp lifted over an optional input value.
func ClampOpt(v OptionalPx, min, max OptionalPx) OptionalPx {
	if !v.set {
		return v
	}
	return SomePx(Clamp(v.px, min, max))
}

// --- KnownDimensions -------------------------------------------------------

// KnownDimensions carries sizes already fixed by the caller before layout
// of a box begins. Either axis may be unset.
type KnownDimensions struct {
	W OptionalPx
	H OptionalPx
}

// Known is a convenience constructor for KnownDimensions.
func Known(w, h OptionalPx) KnownDimensions {
	return KnownDimensions{W: w, H: h}
}

// BothSet returns true if width and height are both fixed.
func (k KnownDimensions) BothSet() bool {
	return k.W.IsSome() && k.H.IsSome()
}

// Get returns the optional size for the given axis.
func (k KnownDimensions) Get(axis Axis) OptionalPx {
	if axis == Horizontal {
		return k.W
	}
	return k.H
}

// Set returns a copy of k with the size on axis replaced.
func (k KnownDimensions) Set(axis Axis, o OptionalPx) KnownDimensions {
	if axis == Horizontal {
		k.W = o
	} else {
		k.H = o
	}
	return k
}

// OrElse fills unset axes of k from other.
func (k KnownDimensions) OrElse(other KnownDimensions) KnownDimensions {
	return KnownDimensions{
		W: k.W.OrElse(other.W),
		H: k.H.OrElse(other.H),
	}
}

// ToSize unwraps both axes, using 0 for unset ones.
func (k KnownDimensions) ToSize() Size {
	return Size{W: k.W.Unwrap(), H: k.H.Unwrap()}
}

func (k KnownDimensions) String() string {
	return fmt.Sprintf("(%v x %v)", k.W, k.H)
}

// --- Geometry scalars ------------------------------------------------------

// Size is a concrete width/height pair.
type Size struct {
	W float64
	H float64
}

// Get returns the extent on the given axis.
func (s Size) Get(axis Axis) float64 {
	if axis == Horizontal {
		return s.W
	}
	return s.H
}

// Set returns a copy of s with the extent on axis replaced.
func (s Size) Set(axis Axis, v float64) Size {
	if axis == Horizontal {
		s.W = v
	} else {
		s.H = v
	}
	return s
}

func (s Size) String() string {
	return fmt.Sprintf("(%.2f x %.2f)", s.W, s.H)
}

// Point is a position relative to some origin.
type Point struct {
	X float64
	Y float64
}

// Get returns the coordinate along the given axis.
func (p Point) Get(axis Axis) float64 {
	if axis == Horizontal {
		return p.X
	}
	return p.Y
}

// Set returns a copy of p with the coordinate on axis replaced.
func (p Point) Set(axis Axis, v float64) Point {
	if axis == Horizontal {
		p.X = v
	} else {
		p.Y = v
	}
	return p
}

// For insets, 4-way values always start at the top and travel clockwise.
const (
	Top int = iota
	Right
	Bottom
	Left
)

// Insets are resolved 4-way pixel amounts (margins, padding or border
// widths), indexed with Top, Right, Bottom and Left.
type Insets [4]float64

// Horizontal returns the sum of the left and right components.
func (in Insets) Horizontal() float64 {
	return in[Left] + in[Right]
}

// Vertical returns the sum of the top and bottom components.
func (in Insets) Vertical() float64 {
	return in[Top] + in[Bottom]
}

// AxisSum returns the sum of the two components along the given axis.
func (in Insets) AxisSum(axis Axis) float64 {
	if axis == Horizontal {
		return in.Horizontal()
	}
	return in.Vertical()
}

// Start returns the axis-start component (left resp. top).
func (in Insets) Start(axis Axis) float64 {
	if axis == Horizontal {
		return in[Left]
	}
	return in[Top]
}

// End returns the axis-end component (right resp. bottom).
func (in Insets) End(axis Axis) float64 {
	if axis == Horizontal {
		return in[Right]
	}
	return in[Bottom]
}

// Add componentwise adds two insets.
func (in Insets) Add(other Insets) Insets {
	for i := range in {
		in[i] += other[i]
	}
	return in
}
