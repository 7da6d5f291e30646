package scale

import (
	"fmt"

	"github.com/npillmayer/imgfx/curve"
	"github.com/npillmayer/imgfx/dom/style"
	"github.com/npillmayer/imgfx/dom/style/cssom"
	"github.com/npillmayer/imgfx/size"
)

// Options configure a scale animation.
type Options struct {
	Element           style.Styler // the element to apply the scaling to
	LargerDimensions  size.Size    // the larger of start and end dimensions
	SmallerDimensions size.Size    // the smaller of start and end dimensions
	Curve             curve.Curve  // timing curve for the scaling
	Styles            style.Bag    // additional styles to apply to Element
	KeyframesPrefix   string       // prefix for the generated keyframes name
	ToLarger          bool         // animate towards LargerDimensions?
}

// KeyframesName returns the name of the keyframes generated for a prefix.
func KeyframesName(prefix string) string {
	return prefix + "-scale"
}

// Prepare prepares a scale animation. It sets the styles of opts and the
// properties linking the element to the animation on the style surface of
// opts.Element, and returns the CSS text of the keyframes. The returned text
// has to be inserted into the document for the animation to run.
//
// The element is rendered at LargerDimensions without scaling. Prepare does
// not check the dimensions: SmallerDimensions are expected to be not larger
// than LargerDimensions, and LargerDimensions have to be non-zero.
func Prepare(opts Options) string {
	curveString := opts.Curve.Property()
	keyframesName := KeyframesName(opts.KeyframesPrefix)

	neutralScale := size.Identity()
	scaleDown := size.Divide(opts.SmallerDimensions, opts.LargerDimensions)
	startScale, endScale := neutralScale, scaleDown
	if opts.ToLarger {
		startScale, endScale = scaleDown, neutralScale
	}
	tracer().P("keyframes", keyframesName).Debugf("scale from %v to %v", startScale, endScale)

	style.Assign(opts.Element, opts.Styles, style.Bag{
		"will-change":               "transform",
		"transform-origin":          "top left",
		"animation-name":            style.Property(keyframesName),
		"animation-timing-function": curveString,
		"animation-fill-mode":       "forwards",
	})
	return keyframes(keyframesName, startScale, endScale)
}

func keyframes(name string, from, to size.Scale) string {
	return fmt.Sprintf(`
@keyframes %s {
  from {
    transform: %s;
  }

  to {
    transform: %s;
  }
}
`, name, transform(from), transform(to))
}

func transform(s size.Scale) string {
	return fmt.Sprintf("scale(%s, %s)", style.Number(s.X), style.Number(s.Y))
}

// UniquePrefix returns a keyframes prefix derived from base, for which none
// of the given stylesheets defines keyframes named KeyframesName(prefix).
// If base itself is free, it is returned unchanged; otherwise a counter is
// appended ("base-2", "base-3", …).
func UniquePrefix(base string, sheets ...cssom.StyleSheet) string {
	inUse := make(map[string]bool)
	for _, sheet := range sheets {
		for _, name := range cssom.KeyframesNames(sheet) {
			inUse[name] = true
		}
	}
	prefix := base
	for n := 2; inUse[KeyframesName(prefix)]; n++ {
		prefix = fmt.Sprintf("%s-%d", base, n)
	}
	if prefix != base {
		tracer().Debugf("keyframes prefix %q in use, using %q", base, prefix)
	}
	return prefix
}
