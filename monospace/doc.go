/*
Package monospace implements a leaf-content measurer for monospaced text.

Every grapheme cluster occupies one or two character cells, following the
Unicode east asian width rules, and every line is one em tall. That is
enough for terminal-style output and for driving the layout engine in
tests without a font stack.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxlay.measure'.
func tracer() tracing.Trace {
	return tracing.Select("boxlay.measure")
}
