package monospace

import (
	"strings"

	"github.com/npillmayer/boxlay"
	"github.com/npillmayer/boxlay/layout"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
)

// measurer measures string content of leaf boxes on a monospaced grid.
type measurer struct {
	em               float64
	graphemeSplitter *segment.Segmenter
	context          *uax11.Context
}

// Measurer creates a measurer for monospaced text content.
// An em-size in pixels may be given which will then be used as the cell
// width (and line height) for measuring text. If it is zero, it will be
// set to 10px. A nil context selects a latin writing context.
func Measurer(em float64, context *uax11.Context) layout.Measurer {
	if em <= 0 {
		em = 10
	}
	m := &measurer{
		em:      em,
		context: context,
	}
	if context == nil {
		m.context = uax11.LatinContext
	}
	onGraphemes := grapheme.NewBreaker(1)
	m.graphemeSplitter = segment.NewSegmenter(onGraphemes)
	grapheme.SetupGraphemeClasses()
	return m
}

// token is a measured run of text: a word, an inter-word blank, or a hard
// line break.
type token struct {
	width float64
	kind  uint8
}

const (
	tokenWord uint8 = iota
	tokenBlank
	tokenBreak
)

// Measure reports the size of a leaf's string content under the given
// constraints. Definite widths wrap the text greedily at blanks; the
// min-content constraint wraps at every opportunity, max-content at none.
// Non-string content measures as zero.
func (m *measurer) Measure(box *layout.Box, available boxlay.AvailableSize) (boxlay.Size, error) {
	text, ok := box.Content.(string)
	if !ok || text == "" {
		return boxlay.Size{}, nil
	}
	tokens := m.tokenize(text)
	var limit float64
	switch {
	case available.W.IsMinContent():
		limit = 0 // forces a break at every opportunity
	case available.W.IsMaxContent():
		limit = maxContentWidth(tokens)
	default:
		limit, _ = available.W.Value()
	}
	w, lines := wrap(tokens, limit)
	tracer().Debugf("measured %d line(s), width %.2f", lines, w)
	return boxlay.Size{W: w, H: float64(lines) * m.em}, nil
}

// tokenize splits text into words, blanks and hard breaks, with every
// token carrying its cell width. Grapheme clusters never split across
// tokens.
func (m *measurer) tokenize(text string) []token {
	var tokens []token
	push := func(kind uint8, width float64) {
		if n := len(tokens); n > 0 && tokens[n-1].kind == kind && kind != tokenBreak {
			tokens[n-1].width += width
			return
		}
		tokens = append(tokens, token{width: width, kind: kind})
	}
	m.graphemeSplitter.Init(strings.NewReader(text))
	for m.graphemeSplitter.Next() {
		grphm := m.graphemeSplitter.Bytes()
		if len(grphm) == 1 && grphm[0] == '\n' {
			push(tokenBreak, 0)
			continue
		}
		cells := uax11.Width(grphm, m.context)
		width := float64(cells) * m.em
		if len(grphm) == 1 && (grphm[0] == ' ' || grphm[0] == '\t') {
			push(tokenBlank, width)
			continue
		}
		push(tokenWord, width)
	}
	return tokens
}

// maxContentWidth is the width of the longest hard line, i.e. the text
// without any soft wrapping.
func maxContentWidth(tokens []token) float64 {
	var widest, line float64
	for _, t := range tokens {
		if t.kind == tokenBreak {
			line = 0
			continue
		}
		line += t.width
		if line > widest {
			widest = line
		}
	}
	return widest
}

// wrap lays the tokens into lines of at most limit width, breaking at
// blanks and hard breaks. A word wider than the limit overflows its line
// rather than splitting; blanks at a soft break are dropped. Returns the
// widest resulting line and the line count.
func wrap(tokens []token, limit float64) (width float64, lines int) {
	lines = 1
	var line float64
	var pendingBlank float64
	for _, t := range tokens {
		switch t.kind {
		case tokenBreak:
			lines++
			line, pendingBlank = 0, 0
		case tokenBlank:
			pendingBlank += t.width
		case tokenWord:
			if line > 0 && line+pendingBlank+t.width > limit+boxlay.Epsilon {
				lines++
				line, pendingBlank = 0, 0
			}
			line += pendingBlank + t.width
			pendingBlank = 0
			if line > width {
				width = line
			}
		}
	}
	return width, lines
}
