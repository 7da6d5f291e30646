package style

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Styler is implemented by everything carrying a live style surface,
// e.g. an element of a styled tree. Styles must not return nil.
type Styler interface {
	Styles() *PropertyMap
}

// Syncer is implemented by stylers which keep a copy of their style
// surface elsewhere, e.g. in an HTML style attribute.
type Syncer interface {
	SyncStyleAttribute()
}

// Bag is a caller-owned set of style properties to be applied to an element.
// Keys may be given in CSS notation ("z-index") or in DOM notation ("zIndex").
type Bag map[string]Property

// Assign merges bags onto the style surface of target. Bags are applied in
// order, later values overwriting earlier ones. Properties of the surface
// not mentioned in any bag are left untouched.
//
// If target is a Syncer, it is synced after all bags have been merged.
func Assign(target Styler, bags ...Bag) {
	pmap := target.Styles()
	for _, bag := range bags {
		for _, kv := range bag.Properties() {
			tracer().P("key", kv.Key).Debugf("assign %s", kv.Value)
			pmap.Add(kv.Key, kv.Value)
		}
	}
	if s, ok := target.(Syncer); ok {
		s.SyncStyleAttribute()
	}
}

// Properties returns the bag's properties with normalized keys, ordered by key.
// If two keys of the bag normalize to the same CSS key, the CSS notation wins.
func (bag Bag) Properties() []KeyValue {
	norm := make(map[string]Property, len(bag))
	for k, v := range bag {
		key := NormalizeKey(k)
		if _, clash := norm[key]; clash && key != k {
			continue
		}
		norm[key] = v
	}
	r := make([]KeyValue, 0, len(norm))
	for k, v := range norm {
		r = append(r, KeyValue{k, v})
	}
	sortKeyValues(r)
	return r
}

// NormalizeKey maps a style property key in DOM notation to CSS notation.
// Example:
//    NormalizeKey("animationFillMode") => "animation-fill-mode"
//
// Keys already in CSS notation are returned unchanged. Vendor prefixes
// ("WebkitTransform", "msTransform") get a leading dash.
func NormalizeKey(key string) string {
	if strings.HasPrefix(key, "--") { // custom properties are case-sensitive
		return key
	}
	var b strings.Builder
	if isVendor(key) {
		b.WriteByte('-')
	}
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isVendor(key string) bool {
	for _, v := range []string{"Webkit", "Moz", "ms", "O"} {
		if strings.HasPrefix(key, v) && len(key) > len(v) && unicode.IsUpper(rune(key[len(v)])) {
			return true
		}
	}
	return false
}

// Number creates a property value from a number, formatted the way a
// browser stringifies numbers: shortest representation, no trailing zeros,
// exponent notation below 1e-6 and from 1e21 on ("1e-7", "1e+21"),
// and "Infinity", "-Infinity" or "NaN" for non-finite values.
func Number(x float64) Property {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0" // avoid "-0"
	}
	if abs := math.Abs(x); abs < 1e-6 || abs >= 1e21 {
		// Go writes at least two exponent digits: 1e-07
		mant, exp, _ := strings.Cut(strconv.FormatFloat(x, 'e', -1, 64), "e")
		return Property(mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0"))
	}
	return Property(strconv.FormatFloat(x, 'f', -1, 64))
}
