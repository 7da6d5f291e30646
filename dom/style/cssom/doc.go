/*
Package cssom provides functionality for CSS stylesheets.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML.
Animations generated by this module are delivered as stylesheet text,
which clients insert into a document. Package cssom lets clients inspect
such text, together with the stylesheets already present in a document,
e.g. to find out which keyframes names are in use.

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. Concrete implementations may be found in sub-packages
of package cssom (see package douceuradapter).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'imgfx.css'.
func tracer() tracing.Trace {
	return tracing.Select("imgfx.css")
}
