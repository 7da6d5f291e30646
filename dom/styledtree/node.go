package styledtree

/*
License

*/

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/imgfx/dom/style"
	"golang.org/x/net/html"
)

// StyNode is a style node, an element together with its style surface.
type StyNode struct {
	htmlNode *html.Node
	styles   *style.PropertyMap
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
// Declarations of an existing style attribute are copied to the style
// surface verbatim, keeping an "!important" priority. A malformed style
// attribute is ignored.
func NewNodeForHTMLNode(h *html.Node) *StyNode {
	sn := &StyNode{htmlNode: h, styles: style.NewPropertyMap()}
	if attr, ok := styleAttr(h); ok {
		decls, err := parser.ParseDeclarations(terminated(attr.Val))
		if err != nil {
			tracer().Errorf("ignoring malformed style attribute: %v", err)
			return sn
		}
		for _, d := range decls {
			value := d.Value
			if d.Important {
				value += " !important"
			}
			sn.styles.Add(d.Property, style.Property(value))
		}
	}
	return sn
}

// terminated makes sure the last declaration of a declaration list ends
// with a semicolon; the parser drops the value of an unterminated one.
func terminated(decls string) string {
	decls = strings.TrimSpace(decls)
	if decls == "" || strings.HasSuffix(decls, ";") {
		return decls
	}
	return decls + ";"
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// Styles is part of interface style.Styler.
func (sn *StyNode) Styles() *style.PropertyMap {
	if sn.styles == nil {
		sn.styles = style.NewPropertyMap()
	}
	return sn.styles
}

// SetStyles sets the styling properties of a styled node.
func (sn *StyNode) SetStyles(styles *style.PropertyMap) {
	sn.styles = styles
}

// GetPropertyValue returns the property value for a given key.
// No cascading is performed.
func (sn *StyNode) GetPropertyValue(key string) style.Property {
	p, _ := sn.Styles().Property(key)
	return p
}

// SyncStyleAttribute writes the style surface to the style attribute of
// the HTML node. An empty surface removes the attribute.
//
// Part of interface style.Syncer.
func (sn *StyNode) SyncStyleAttribute() {
	if sn.htmlNode == nil {
		return
	}
	text := sn.Styles().CSSText()
	tracer().Debugf("style=%q", text)
	for i, a := range sn.htmlNode.Attr {
		if a.Namespace == "" && a.Key == "style" {
			if text == "" {
				sn.htmlNode.Attr = append(sn.htmlNode.Attr[:i], sn.htmlNode.Attr[i+1:]...)
			} else {
				sn.htmlNode.Attr[i].Val = text
			}
			return
		}
	}
	if text != "" {
		sn.htmlNode.Attr = append(sn.htmlNode.Attr, html.Attribute{Key: "style", Val: text})
	}
}

func styleAttr(h *html.Node) (html.Attribute, bool) {
	if h == nil {
		return html.Attribute{}, false
	}
	for _, a := range h.Attr {
		if a.Namespace == "" && a.Key == "style" {
			return a, true
		}
	}
	return html.Attribute{}, false
}

var _ style.Styler = &StyNode{}
var _ style.Syncer = &StyNode{}
