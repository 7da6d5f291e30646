/*
Package curve provides timing curves for CSS animations.

A timing curve maps the progress of an animation to an eased progress value.
CSS knows a set of keyword curves (linear, ease, …) and arbitrary cubic
Bézier curves. Curves are values; they are rendered to a CSS timing function
by String and read back from CSS text by Parse.

The zero value of a curve is CSS's initial timing function, ease.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package curve

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'imgfx.css'.
func tracer() tracing.Trace {
	return tracing.Select("imgfx.css")
}
