package dom

import (
	"errors"
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/imgfx/dom/styledtree"
	"golang.org/x/net/html"
)

// ErrNoMatch is returned if a selector does not match any element.
var ErrNoMatch = errors.New("no element matches selector")

// QuerySelector returns the first element of doc matching a CSS selector,
// wrapped as a styled node.
func QuerySelector(doc *html.Node, selector string) (*styledtree.StyNode, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("dom: cannot compile selector %q: %w", selector, err)
	}
	n := sel.MatchFirst(doc)
	if n == nil {
		return nil, fmt.Errorf("dom: %w: %q", ErrNoMatch, selector)
	}
	tracer().Debugf("selector %q matches <%s>", selector, n.Data)
	return styledtree.NewNodeForHTMLNode(n), nil
}

// QuerySelectorAll returns all elements of doc matching a CSS selector,
// in document order. If no element matches, an empty slice is returned.
func QuerySelectorAll(doc *html.Node, selector string) ([]*styledtree.StyNode, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("dom: cannot compile selector %q: %w", selector, err)
	}
	matches := sel.MatchAll(doc)
	nodes := make([]*styledtree.StyNode, len(matches))
	for i, n := range matches {
		nodes[i] = styledtree.NewNodeForHTMLNode(n)
	}
	return nodes, nil
}
