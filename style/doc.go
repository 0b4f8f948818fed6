/*
Package style declares the resolved CSS input values the layout core
consumes per box. Style resolution itself (cascading, inheritance,
specified-to-computed mapping) is the job of an upstream collaborator;
this package only gives the handed-over values a shape.

Values which may be auto, a length or a percentage are modeled with the
option type Dimension. Percentages stay unresolved until layout knows the
size they are relative to; resolving against an indefinite basis yields
an unset value, never zero.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxlay.style'.
func tracer() tracing.Trace {
	return tracing.Select("boxlay.style")
}
