/*
Package layout implements a constraint-based layout core for trees of
boxes participating in flexible-box and grid layout.

Layout is a recursive descent over the box tree: containers hand sizing
constraints down (package boxlay), children report intrinsic sizes up,
and a per-box result cache keeps the re-entrant measurement pattern cheap.
The same entry point serves three run modes: computing a size only,
performing a full positioned layout, or producing a cheap zero-size
placeholder for hidden boxes.

The core is single-threaded and synchronous. A second layout pass over
the same tree must not begin before the first one returns.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxlay.layout'.
func tracer() tracing.Trace {
	return tracing.Select("boxlay.layout")
}
