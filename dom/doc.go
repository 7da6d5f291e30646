/*
Package dom provides utilities for locating and styling elements of an HTML DOM.

Status

Early draft—API may change frequently. Please stay patient.

Overview

Transition effects like a lightbox zoom operate on single elements of a
document, most of the time an image. Elements are represented by
styledtree.StyNode, which links an HTML parse tree node
(golang.org/x/net/html) to its style surface. Clients locate the elements
to style with CSS selectors, using QuerySelector and QuerySelectorAll.
Selector matching is done by https://godoc.org/github.com/andybalholm/cascadia.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'imgfx.dom'
func tracer() tracing.Trace {
	return tracing.Select("imgfx.dom")
}
