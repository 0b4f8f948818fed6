package style

import (
	"fmt"
	"math"

	"github.com/npillmayer/boxlay"
)

const (
	sizingAuto uint8 = iota
	sizingLength
	sizingPercent
	sizingMinContent
	sizingMaxContent
	sizingFr
)

// SizingFunction is one half of a grid track definition: either the
// minimum or the maximum sizing function of a track. The zero value is
// auto.
type SizingFunction struct {
	v    float64
	kind uint8
}

// SizingAuto creates the auto sizing function.
func SizingAuto() SizingFunction {
	return SizingFunction{kind: sizingAuto}
}

// SizingLength creates a fixed sizing function of px pixels.
func SizingLength(px float64) SizingFunction {
	if math.IsNaN(px) || px < 0 {
		px = 0
	}
	return SizingFunction{v: px, kind: sizingLength}
}

// SizingPercent creates a percentage sizing function (fraction, 0.5 = 50%).
func SizingPercent(pct float64) SizingFunction {
	if math.IsNaN(pct) || pct < 0 {
		pct = 0
	}
	return SizingFunction{v: pct, kind: sizingPercent}
}

// SizingMinContent creates the min-content sizing function.
func SizingMinContent() SizingFunction {
	return SizingFunction{kind: sizingMinContent}
}

// SizingMaxContent creates the max-content sizing function.
func SizingMaxContent() SizingFunction {
	return SizingFunction{kind: sizingMaxContent}
}

// SizingFr creates a flexible sizing function with flex factor f.
// Only valid as a track's maximum sizing function.
func SizingFr(f float64) SizingFunction {
	if math.IsNaN(f) || f < 0 {
		f = 0
	}
	return SizingFunction{v: f, kind: sizingFr}
}

// IsAuto returns true for the auto variant.
func (sf SizingFunction) IsAuto() bool { return sf.kind == sizingAuto }

// IsFlexible returns true for an fr sizing function, regardless of its
// flex factor (0fr is still flexible in the declaration sense).
func (sf SizingFunction) IsFlexible() bool { return sf.kind == sizingFr }

// IsIntrinsic returns true for content-dependent sizing functions
// (min-content, max-content, auto).
func (sf SizingFunction) IsIntrinsic() bool {
	return sf.kind == sizingMinContent || sf.kind == sizingMaxContent || sf.kind == sizingAuto
}

// IsMaxContent returns true for the max-content variant.
func (sf SizingFunction) IsMaxContent() bool { return sf.kind == sizingMaxContent }

// IsMinContent returns true for the min-content variant.
func (sf SizingFunction) IsMinContent() bool { return sf.kind == sizingMinContent }

// FlexFactor returns the fr coefficient, 0 for non-flexible functions.
func (sf SizingFunction) FlexFactor() float64 {
	if sf.kind != sizingFr {
		return 0
	}
	return sf.v
}

// DefiniteValue resolves a fixed sizing function to pixels: lengths always
// resolve, percentages only against a definite container size. All other
// variants are unresolved.
func (sf SizingFunction) DefiniteValue(containerSize boxlay.OptionalPx) boxlay.OptionalPx {
	switch sf.kind {
	case sizingLength:
		return boxlay.SomePx(sf.v)
	case sizingPercent:
		if containerSize.IsNone() {
			return boxlay.Px()
		}
		return boxlay.SomePx(sf.v * containerSize.Unwrap())
	}
	return boxlay.Px()
}

func (sf SizingFunction) String() string {
	switch sf.kind {
	case sizingLength:
		return fmt.Sprintf("%.2fpx", sf.v)
	case sizingPercent:
		return fmt.Sprintf("%.1f%%", sf.v*100)
	case sizingMinContent:
		return "min-content"
	case sizingMaxContent:
		return "max-content"
	case sizingFr:
		return fmt.Sprintf("%.2ffr", sf.v)
	}
	return "auto"
}

// TrackSize is a declared grid track: a minimum and a maximum sizing
// function. Single-value track declarations expand to both halves (e.g.
// `100px` means minmax(100px, 100px), `1fr` means minmax(auto, 1fr)).
type TrackSize struct {
	Min SizingFunction
	Max SizingFunction
}

// FixedTrack declares a track of a fixed pixel size.
func FixedTrack(px float64) TrackSize {
	return TrackSize{Min: SizingLength(px), Max: SizingLength(px)}
}

// FrTrack declares a flexible track with flex factor f.
func FrTrack(f float64) TrackSize {
	return TrackSize{Min: SizingAuto(), Max: SizingFr(f)}
}

// AutoTrack declares an auto-sized track.
func AutoTrack() TrackSize {
	return TrackSize{Min: SizingAuto(), Max: SizingAuto()}
}

// PercentTrack declares a track of a percentage of the container.
func PercentTrack(pct float64) TrackSize {
	return TrackSize{Min: SizingPercent(pct), Max: SizingPercent(pct)}
}

// Minmax declares a track with distinct minimum and maximum functions.
func Minmax(min, max SizingFunction) TrackSize {
	return TrackSize{Min: min, Max: max}
}

func (ts TrackSize) String() string {
	return fmt.Sprintf("minmax(%v, %v)", ts.Min, ts.Max)
}

// --- Grid placement --------------------------------------------------------

// Placement is an explicit grid placement on one axis: a 0-based start
// track and a span. Start < 0 requests auto-placement. A span below 1 is
// treated as 1.
type Placement struct {
	Start int
	Span  int
}

// AutoPlacement requests auto-placement with a span of 1.
func AutoPlacement() Placement {
	return Placement{Start: -1, Span: 1}
}

// PlaceAt creates an explicit placement.
func PlaceAt(start, span int) Placement {
	return Placement{Start: start, Span: span}
}

// IsAuto returns true if the placement requests auto-placement.
func (p Placement) IsAuto() bool {
	return p.Start < 0
}

// ClampedSpan returns the span, at least 1.
func (p Placement) ClampedSpan() int {
	if p.Span < 1 {
		return 1
	}
	return p.Span
}
