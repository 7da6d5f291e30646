package curve

import (
	"fmt"
	"strings"

	"github.com/npillmayer/imgfx/dom/style"
)

type kind uint8

const (
	kindUnset kind = iota
	kindKeyword
	kindBezier
)

// Points are the inner control points of a cubic Bézier curve.
// The outer control points are fixed at (0, 0) and (1, 1).
type Points struct {
	X1, Y1, X2, Y2 float64
}

// Curve is an option type for CSS timing functions.
type Curve struct {
	keyword string
	points  Points
	kind    kind
}

/*
type Curve
	= Ease
	| Keyword name
	| Bezier x1 y1 x2 y2
*/

// Keyword creates a curve for a CSS easing keyword, e.g. "ease-in".
// The keyword is not checked; see Parse for a validating alternative.
func Keyword(name string) Curve {
	return Curve{keyword: strings.ToLower(name), kind: kindKeyword}
}

// Bezier creates a cubic Bézier curve from its inner control points.
// The points are not checked; see Parse for a validating alternative.
func Bezier(x1, y1, x2, y2 float64) Curve {
	return Curve{points: Points{x1, y1, x2, y2}, kind: kindBezier}
}

// Predefined keyword curves.
var (
	Linear    = Keyword("linear")
	Ease      = Keyword("ease")
	EaseIn    = Keyword("ease-in")
	EaseOut   = Keyword("ease-out")
	EaseInOut = Keyword("ease-in-out")
)

var keywords = map[string]bool{
	"linear":      true,
	"ease":        true,
	"ease-in":     true,
	"ease-out":    true,
	"ease-in-out": true,
	"step-start":  true,
	"step-end":    true,
}

// String renders a curve as a CSS timing function, suitable as a value
// for animation-timing-function.
func (c Curve) String() string {
	switch c.kind {
	case kindKeyword:
		return c.keyword
	case kindBezier:
		p := c.points
		return fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)",
			style.Number(p.X1), style.Number(p.Y1), style.Number(p.X2), style.Number(p.Y2))
	}
	return "ease"
}

// Property returns the curve as a style property value.
func (c Curve) Property() style.Property {
	return style.Property(c.String())
}

// ---------------------------------------------------------------------------

// Match returns a matcher for a curve:
//
//    var pts curve.Points
//    switch m := c.Match(); m {
//    case m.Bezier(&pts):
//        …
//    }
//
func (c Curve) Match() *Matcher {
	return &Matcher{curve: c}
}

// Matcher matches a curve against its variants.
type Matcher struct {
	curve Curve
}

// Keyword matches keyword curves, including the zero curve ("ease").
func (m *Matcher) Keyword(name *string) *Matcher {
	if m.curve.kind == kindBezier {
		return nil
	}
	if name != nil {
		*name = m.curve.String()
	}
	return m
}

// Bezier matches cubic Bézier curves.
func (m *Matcher) Bezier(pts *Points) *Matcher {
	if m.curve.kind != kindBezier {
		return nil
	}
	if pts != nil {
		*pts = m.curve.points
	}
	return m
}
