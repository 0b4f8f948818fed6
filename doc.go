/*
Package boxlay provides the shared value types for a constraint-based
box layout core: available-space constraints handed down from containers
to children, optional pixel dimensions, and plain geometry scalars.

Sizing constraints follow the CSS sizing model. A container never tells a
child "be this big"; it hands the child an available space per axis, which
is either a definite number of pixels, or one of the two content-dependent
constraints min-content ("break at every opportunity") and max-content
("do not break at all"). The child answers with a concrete size.

The layout algorithms themselves live in package layout; a font-free
default text measurer lives in package monospace.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package boxlay

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxlay.core'.
func tracer() tracing.Trace {
	return tracing.Select("boxlay.core")
}
