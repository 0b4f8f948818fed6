package boxlay

import (
	"fmt"
	"math"
)

// Epsilon is the default tolerance for comparing definite available-space
// values. Two definite constraints closer than this are treated as the same
// constraint, e.g. for layout-cache lookups.
const Epsilon = 1e-5

const (
	spaceDefinite uint8 = iota
	spaceMinContent
	spaceMaxContent
)

// AvailableSpace is an option type for one axis of a sizing constraint.
// It is one of three variants: a definite pixel amount, min-content or
// max-content. The zero value is Definite(0).
type AvailableSpace struct {
	px   float64
	kind uint8
}

// DefiniteSpace creates a definite available-space constraint of px pixels.
// Negative and NaN inputs are clamped to 0.
func DefiniteSpace(px float64) AvailableSpace {
	if math.IsNaN(px) || px < 0 {
		px = 0
	}
	return AvailableSpace{px: px, kind: spaceDefinite}
}

// MinContent creates the min-content constraint.
func MinContent() AvailableSpace {
	return AvailableSpace{kind: spaceMinContent}
}

// MaxContent creates the max-content constraint.
func MaxContent() AvailableSpace {
	return AvailableSpace{kind: spaceMaxContent}
}

// IsDefinite returns true if sp carries a concrete pixel amount.
func (sp AvailableSpace) IsDefinite() bool {
	return sp.kind == spaceDefinite
}

// IsMinContent returns true for the min-content variant.
func (sp AvailableSpace) IsMinContent() bool {
	return sp.kind == spaceMinContent
}

// IsMaxContent returns true for the max-content variant.
func (sp AvailableSpace) IsMaxContent() bool {
	return sp.kind == spaceMaxContent
}

// Value returns the pixel amount of a definite constraint.
func (sp AvailableSpace) Value() (float64, bool) {
	if sp.kind != spaceDefinite {
		return 0, false
	}
	return sp.px, true
}

// UnwrapOr returns the pixel amount of a definite constraint, or fallback
// for the content-dependent variants.
func (sp AvailableSpace) UnwrapOr(fallback float64) float64 {
	if sp.kind != spaceDefinite {
		return fallback
	}
	return sp.px
}

// AsOption converts sp to an optional pixel value: set for a definite
// constraint, unset otherwise.
func (sp AvailableSpace) AsOption() OptionalPx {
	if sp.kind != spaceDefinite {
		return Px()
	}
	return SomePx(sp.px)
}

// Sub returns a constraint with px subtracted if sp is definite (floored at
// zero), and sp unchanged otherwise.
func (sp AvailableSpace) Sub(px float64) AvailableSpace {
	if sp.kind != spaceDefinite {
		return sp
	}
	return DefiniteSpace(sp.px - px)
}

// WithDefinite returns a definite constraint of the option's value if it is
// set, and sp unchanged otherwise.
func (sp AvailableSpace) WithDefinite(opt OptionalPx) AvailableSpace {
	if opt.IsNone() {
		return sp
	}
	return DefiniteSpace(opt.Unwrap())
}

// RoughlyEqual compares two constraints for cache purposes: the variants
// must agree, and definite values must differ by less than tol.
// Content-dependent variants compare equal regardless of anything else.
func (sp AvailableSpace) RoughlyEqual(other AvailableSpace, tol float64) bool {
	if sp.kind != other.kind {
		return false
	}
	if sp.kind != spaceDefinite {
		return true
	}
	return math.Abs(sp.px-other.px) < tol
}

func (sp AvailableSpace) String() string {
	switch sp.kind {
	case spaceMinContent:
		return "min-content"
	case spaceMaxContent:
		return "max-content"
	}
	return fmt.Sprintf("%.2fpx", sp.px)
}

// --- AvailableSize ---------------------------------------------------------

// AvailableSize is a pair of available-space constraints, one per axis.
type AvailableSize struct {
	W AvailableSpace
	H AvailableSpace
}

// AvailSize is a convenience constructor for an AvailableSize.
func AvailSize(w, h AvailableSpace) AvailableSize {
	return AvailableSize{W: w, H: h}
}

// Get returns the constraint for the given axis.
func (av AvailableSize) Get(axis Axis) AvailableSpace {
	if axis == Horizontal {
		return av.W
	}
	return av.H
}

// Set returns a copy of av with the constraint on axis replaced.
func (av AvailableSize) Set(axis Axis, sp AvailableSpace) AvailableSize {
	if axis == Horizontal {
		av.W = sp
	} else {
		av.H = sp
	}
	return av
}

// WithKnown overrides each axis with a definite constraint where known
// carries a value for it.
func (av AvailableSize) WithKnown(known KnownDimensions) AvailableSize {
	return AvailableSize{
		W: av.W.WithDefinite(known.W),
		H: av.H.WithDefinite(known.H),
	}
}

// RoughlyEqual compares both axes with tolerance tol.
func (av AvailableSize) RoughlyEqual(other AvailableSize, tol float64) bool {
	return av.W.RoughlyEqual(other.W, tol) && av.H.RoughlyEqual(other.H, tol)
}

func (av AvailableSize) String() string {
	return fmt.Sprintf("(%v x %v)", av.W, av.H)
}
