/*
Package scale prepares keyframe animations which scale an element between two sizes.

Overview

A typical use is a lightbox: an image is rendered at its larger (natural)
size and, at the start of the transition, scaled down to the size of its
thumbnail. The animation then grows the image back to its natural size.
Scaling uses the top left corner as origin; clients usually combine it
with a translation.

Prepare sets up the style surface of the element and returns the text of a
@keyframes rule. Clients insert the text into a stylesheet of the document
to start the animation, and remove keyframes and styles after the
animation has completed. Keyframes names are derived from a prefix given
by the client; UniquePrefix helps to find a prefix not in use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scale

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'imgfx.anim'.
func tracer() tracing.Trace {
	return tracing.Select("imgfx.anim")
}
