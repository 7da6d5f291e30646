/*
Package size provides two-dimensional extents and the scale factors between them.

Sizes are unit-less. Callers may measure in CSS pixels, in typesetting
dimensions or in anything else, as long as both operands of a division are
measured in the same unit.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package size

import (
	"fmt"

	"github.com/npillmayer/tyse/core/dimen"
)

// Size is the extent of an element. Both components are expected to be
// non-negative; they have to be positive to be used as a divisor.
type Size struct {
	Width  float64
	Height float64
}

// FromDU creates a size from typesetting dimensions.
func FromDU(w, h dimen.DU) Size {
	return Size{Width: float64(w), Height: float64(h)}
}

func (sz Size) String() string {
	return fmt.Sprintf("(%g x %g)", sz.Width, sz.Height)
}

// Scale is a pair of factors for scaling horizontally and vertically.
type Scale struct {
	X float64
	Y float64
}

// Identity returns the neutral scale (1, 1).
func Identity() Scale {
	return Scale{X: 1, Y: 1}
}

func (s Scale) String() string {
	return fmt.Sprintf("scale(%g, %g)", s.X, s.Y)
}

// Divide returns the component-wise ratio a/b.
//
// Divide does not check its arguments. A zero component of b results in a
// factor of ±Inf or NaN.
func Divide(a, b Size) Scale {
	return Scale{
		X: a.Width / b.Width,
		Y: a.Height / b.Height,
	}
}
