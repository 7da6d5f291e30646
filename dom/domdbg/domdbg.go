/*
Package domdbg implements helpers to debug styled elements.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"

	"github.com/npillmayer/imgfx/dom/style"
	"github.com/npillmayer/imgfx/dom/styledtree"
	tp "github.com/xlab/treeprint"
)

// StyleTree renders the style surface of an element as a tree, with
// property groups as branches. If groups are given, only these property
// groups are included.
func StyleTree(s style.Styler, groups ...string) string {
	tree := tp.New()
	label := "styles"
	if sn, ok := s.(*styledtree.StyNode); ok && sn.HTMLNode() != nil {
		label = fmt.Sprintf("<%s>", sn.HTMLNode().Data)
	}
	root := tree.AddBranch(label)
	pmap := s.Styles()
	for _, name := range selectGroups(pmap, groups) {
		group := pmap.Group(name)
		if group == nil {
			continue
		}
		branch := root.AddBranch(name)
		for _, kv := range group.Properties() {
			branch.AddMetaNode(kv.Key, kv.Value.String())
		}
	}
	return tree.String()
}

// Dump writes the style tree of an element to w.
func Dump(w io.Writer, s style.Styler, groups ...string) error {
	_, err := io.WriteString(w, StyleTree(s, groups...))
	return err
}

func selectGroups(pmap *style.PropertyMap, groups []string) []string {
	if len(groups) == 0 {
		return pmap.GroupNames()
	}
	return groups
}
