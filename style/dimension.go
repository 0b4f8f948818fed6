package style

import (
	"fmt"
	"math"

	"github.com/npillmayer/boxlay"
)

const (
	dimenAuto uint8 = iota
	dimenLength
	dimenPercent
)

// Dimension is an option type for a CSS sizing value: auto, an absolute
// length in pixels, or a percentage of some basis not yet known.
// The zero value is auto.
type Dimension struct {
	v    float64
	kind uint8
}

// Auto creates the auto dimension.
func Auto() Dimension {
	return Dimension{kind: dimenAuto}
}

// Length creates an absolute dimension of px pixels.
// NaN is treated as 0, negative lengths are clamped to 0.
func Length(px float64) Dimension {
	if math.IsNaN(px) || px < 0 {
		px = 0
	}
	return Dimension{v: px, kind: dimenLength}
}

// Percent creates a percentage dimension; pct is a fraction, i.e.
// Percent(0.5) means 50%.
func Percent(pct float64) Dimension {
	if math.IsNaN(pct) || pct < 0 {
		pct = 0
	}
	return Dimension{v: pct, kind: dimenPercent}
}

// IsAuto returns true for the auto variant.
func (d Dimension) IsAuto() bool {
	return d.kind == dimenAuto
}

// IsLength returns true for an absolute length.
func (d Dimension) IsLength() bool {
	return d.kind == dimenLength
}

// IsPercent returns true for a percentage.
func (d Dimension) IsPercent() bool {
	return d.kind == dimenPercent
}

// Resolve turns d into an optional pixel value. Lengths always resolve;
// percentages resolve iff basis is set; auto never resolves.
func (d Dimension) Resolve(basis boxlay.OptionalPx) boxlay.OptionalPx {
	switch d.kind {
	case dimenLength:
		return boxlay.SomePx(d.v)
	case dimenPercent:
		if basis.IsNone() {
			return boxlay.Px()
		}
		return boxlay.SomePx(d.v * basis.Unwrap())
	}
	return boxlay.Px()
}

func (d Dimension) String() string {
	switch d.kind {
	case dimenLength:
		return fmt.Sprintf("%.2fpx", d.v)
	case dimenPercent:
		return fmt.Sprintf("%.1f%%", d.v*100)
	}
	return "auto"
}

// --- Dimension pairs and edges ---------------------------------------------

// Dimensions is a width/height pair of Dimension values.
type Dimensions struct {
	W Dimension
	H Dimension
}

// AutoSize is a Dimensions pair with both axes auto.
func AutoSize() Dimensions {
	return Dimensions{W: Auto(), H: Auto()}
}

// Get returns the dimension for the given axis.
func (dd Dimensions) Get(axis boxlay.Axis) Dimension {
	if axis == boxlay.Horizontal {
		return dd.W
	}
	return dd.H
}

// Resolve resolves both axes against the respective basis.
func (dd Dimensions) Resolve(basis boxlay.KnownDimensions) boxlay.KnownDimensions {
	return boxlay.KnownDimensions{
		W: dd.W.Resolve(basis.W),
		H: dd.H.Resolve(basis.H),
	}
}

// EdgeSizes are 4-way Dimension values (for margins, padding, border
// widths), indexed with boxlay.Top … boxlay.Left.
type EdgeSizes [4]Dimension

// Edges creates EdgeSizes with all four components set to the same
// absolute length.
func Edges(px float64) EdgeSizes {
	d := Length(px)
	return EdgeSizes{d, d, d, d}
}

// Resolve resolves all four components against basis. Per CSS, margin and
// padding percentages on any side resolve against the *inline-size* of the
// containing block, which is the single basis passed here. Unresolvable
// components come out as 0.
func (e EdgeSizes) Resolve(basis boxlay.OptionalPx) boxlay.Insets {
	var in boxlay.Insets
	for i, d := range e {
		in[i] = d.Resolve(basis).Unwrap()
	}
	return in
}
