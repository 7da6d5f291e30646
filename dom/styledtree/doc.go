/*
Package styledtree is a straightforward default implementation of a styled element.

Overview

A StyNode links an HTML node to its style surface, i.e. the set of style
properties applied directly to the element (as opposed to rules defined
in a stylesheet). StyNode implements style.Styler and may therefore be
the target of style assignments and animations.

The style surface is seeded from the element's style attribute. After
modification, clients call SyncStyleAttribute to write the surface back
to the HTML node; style.Assign does this automatically.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'imgfx.dom'.
func tracer() tracing.Trace {
	return tracing.Select("imgfx.dom")
}
