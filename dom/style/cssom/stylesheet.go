package cssom

import "github.com/npillmayer/imgfx/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// clients of this module, we introduce an interface for CSS stylesheets.
// Concrete implementations have to be provided (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Name() string                // at-keyword, e.g. "@keyframes"; empty for qualified rules
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
	Rules() []Rule               // nested rules of block at-rules like @keyframes
}

// KeyframesAtRule is the at-keyword of keyframes rules.
const KeyframesAtRule = "@keyframes"

// KeyframesNames returns the names of all keyframes defined by a stylesheet,
// in order of appearance. Keyframes nested in other block at-rules (e.g., @media)
// are included.
func KeyframesNames(sheet StyleSheet) []string {
	if sheet == nil {
		return nil
	}
	var names []string
	var collect func([]Rule)
	collect = func(rules []Rule) {
		for _, r := range rules {
			if r.Name() == KeyframesAtRule {
				names = append(names, r.Selector())
				continue
			}
			collect(r.Rules())
		}
	}
	collect(sheet.Rules())
	tracer().Debugf("stylesheet defines keyframes %v", names)
	return names
}
