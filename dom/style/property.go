package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'imgfx.dom'
func tracer() tracing.Trace {
	return tracing.Select("imgfx.dom")
}

// Property is a raw value for a CSS property. For example, with
//
//     transform-origin: top left
//
// a property value of "top left" is set. Values are stored as given,
// including case and a trailing "!important".
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value.String()
}

func sortKeyValues(kvs []KeyValue) {
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].Key < kvs[j].Key })
}

// --- Property groups ---------------------------------------------------

// PropertyGroup holds the properties of an element which share a topic,
// e.g. all the margins. GroupNameFromPropertyKey tells which group a
// property belongs to.
type PropertyGroup struct {
	name  string
	props map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	return &PropertyGroup{name: groupname}
}

// Name returns the name of the property group.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] =\n", pg.name)
	for _, kv := range pg.Properties() {
		fmt.Fprintf(&b, "  %s\n", kv)
	}
	return b.String()
}

// Properties returns the properties of the group, ordered by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(pg.props))
	for k, v := range pg.props {
		r = append(r, KeyValue{k, v})
	}
	sortKeyValues(r)
	return r
}

// Get returns a property's value and wether it is present.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	p, ok := pg.props[key]
	return p, ok
}

// Set stores a property's value verbatim, replacing an existing one.
func (pg *PropertyGroup) Set(key string, p Property) {
	if pg.props == nil {
		pg.props = make(map[string]Property)
	}
	pg.props[key] = p
}

// Remove deletes a property from the group.
func (pg *PropertyGroup) Remove(key string) {
	delete(pg.props, key)
}

// Len returns the number of properties in this group.
func (pg *PropertyGroup) Len() int {
	return len(pg.props)
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGColor     = "Color"
	PGText      = "Text"
	PGAnimation = "Animation"
	PGX         = "X"
)

var groupMembers = map[string][]string{
	PGMargins: {"margin-top", "margin-right", "margin-bottom", "margin-left"},
	PGPadding: {"padding-top", "padding-right", "padding-bottom", "padding-left"},
	PGBorder: {
		"border-top-color", "border-right-color", "border-bottom-color", "border-left-color",
		"border-top-width", "border-right-width", "border-bottom-width", "border-left-width",
		"border-top-style", "border-right-style", "border-bottom-style", "border-left-style",
		"border-top-left-radius", "border-top-right-radius",
		"border-bottom-left-radius", "border-bottom-right-radius",
	},
	PGDimension: {"width", "height", "min-width", "min-height", "max-width", "max-height"},
	PGDisplay: {
		"display", "float", "visibility", "position", "overflow",
		"top", "right", "bottom", "left", "z-index", "opacity",
	},
	PGColor: {"color", "background-color", "background-image"},
	PGText: {
		"direction", "white-space", "word-spacing", "letter-spacing",
		"word-break", "word-wrap",
	},
	PGAnimation: {"will-change", "transform", "transform-origin", "transition"},
}

var groupOfKey = func() map[string]string {
	m := make(map[string]string)
	for group, keys := range groupMembers {
		for _, k := range keys {
			m[k] = group
		}
	}
	return m
}()

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// All animation-* properties belong to group "Animation".
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	if group, found := groupOfKey[key]; found {
		return group
	}
	if strings.HasPrefix(key, "animation") {
		return PGAnimation
	}
	return PGX
}

// --- Property map ------------------------------------------------------

// PropertyMap is the style surface of an element. nil is a legal (empty)
// property map. Properties are kept in property groups.
type PropertyMap struct {
	m map[string]*PropertyGroup
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {\n"
	for _, name := range pmap.GroupNames() {
		s += pmap.m[name].String()
	}
	return s + "}"
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// GroupNames returns the names of all property groups present, sorted.
func (pmap *PropertyMap) GroupNames() []string {
	if pmap == nil {
		return nil
	}
	names := make([]string, 0, len(pmap.m))
	for name := range pmap.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	group := pmap.Group(GroupNameFromPropertyKey(key))
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// Properties returns all properties of the map, ordered by key.
func (pmap *PropertyMap) Properties() []KeyValue {
	var r []KeyValue
	for _, name := range pmap.GroupNames() {
		r = append(r, pmap.m[name].Properties()...)
	}
	sortKeyValues(r)
	return r
}

// Add sets a property of this property map, e.g.,
//
//    pm.Add("will-change", "transform")
//
// An existing value for key is overwritten.
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}

// Remove deletes a property from this property map.
func (pmap *PropertyMap) Remove(key string) {
	if group := pmap.Group(GroupNameFromPropertyKey(key)); group != nil {
		group.Remove(key)
		if group.Len() == 0 {
			delete(pmap.m, group.name)
		}
	}
}

// CSSText renders the property map as a CSS declaration list, suitable
// as the value of an HTML style attribute. Properties are ordered by key.
func (pmap *PropertyMap) CSSText() string {
	props := pmap.Properties()
	decls := make([]string, len(props))
	for i, kv := range props {
		decls[i] = kv.String()
	}
	return strings.Join(decls, "; ")
}
