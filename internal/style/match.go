package style

import (
	"strings"

	"github.com/quillweb/quill/internal/cssparse"
	"github.com/quillweb/quill/internal/dom"
)

// compoundGroup is a run of simple selectors that apply to the same
// element (no combinator between them), preceded by the combinator
// that connects it to the previous group. The very first group in a
// selector always has combinator NoCombinator, meaning "this is the
// selector's leftmost element", not "same element as a predecessor".
type compoundGroup struct {
	combinator cssparse.Combinator
	kinds      []cssparse.SimpleSelector
}

func groupSelector(sel cssparse.Selector) []compoundGroup {
	var groups []compoundGroup
	for i, e := range sel {
		if i == 0 || e.Combinator != cssparse.NoCombinator {
			groups = append(groups, compoundGroup{combinator: e.Combinator})
		}
		last := &groups[len(groups)-1]
		last.kinds = append(last.kinds, e)
	}
	return groups
}

// matches reports whether sel matches the element at nodeID, per
// spec.md §3's "matching walks outwards from the target" (the
// selector's rightmost group anchors on nodeID itself; earlier groups
// are matched against ancestors/siblings according to their
// combinator).
func matches(doc *dom.Document, nodeID dom.NodeID, sel cssparse.Selector) bool {
	groups := groupSelector(sel)
	if len(groups) == 0 {
		return false
	}
	target := len(groups) - 1
	if !matchGroup(doc, nodeID, groups[target].kinds) {
		return false
	}
	return matchAncestors(doc, nodeID, groups, target-1)
}

// matchAncestors checks groups[0..=idx], each against some node
// reachable from cur by the combinator stored in groups[idx+1].
func matchAncestors(doc *dom.Document, cur dom.NodeID, groups []compoundGroup, idx int) bool {
	if idx < 0 {
		return true
	}
	combinator := groups[idx+1].combinator
	switch combinator {
	case cssparse.Child:
		parent := parentElement(doc, cur)
		if parent == 0 {
			return false
		}
		if !matchGroup(doc, parent, groups[idx].kinds) {
			return false
		}
		return matchAncestors(doc, parent, groups, idx-1)
	case cssparse.Descendant:
		for anc := parentElement(doc, cur); anc != 0; anc = parentElement(doc, anc) {
			if matchGroup(doc, anc, groups[idx].kinds) && matchAncestors(doc, anc, groups, idx-1) {
				return true
			}
		}
		return false
	case cssparse.NextSibling:
		sib := immediatePrecedingSibling(doc, cur)
		if sib == 0 {
			return false
		}
		if !matchGroup(doc, sib, groups[idx].kinds) {
			return false
		}
		return matchAncestors(doc, sib, groups, idx-1)
	case cssparse.GeneralSibling:
		for _, sib := range precedingSiblings(doc, cur) {
			if matchGroup(doc, sib, groups[idx].kinds) && matchAncestors(doc, sib, groups, idx-1) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func matchGroup(doc *dom.Document, nodeID dom.NodeID, kinds []cssparse.SimpleSelector) bool {
	if nodeID == 0 {
		return false
	}
	n := doc.Node(nodeID)
	if n == nil || n.Type != dom.ElementNode {
		return false
	}
	for _, k := range kinds {
		if !matchOne(n, k) {
			return false
		}
	}
	return true
}

func matchOne(n *dom.Node, sel cssparse.SimpleSelector) bool {
	switch sel.Kind {
	case cssparse.KindUniversal:
		return true
	case cssparse.KindName:
		return n.Name == sel.Ident
	case cssparse.KindID:
		v, ok := n.Attr("id")
		return ok && v == sel.Ident
	case cssparse.KindClass:
		v, ok := n.Attr("class")
		if !ok {
			return false
		}
		for _, c := range strings.Fields(v) {
			if c == sel.Ident {
				return true
			}
		}
		return false
	case cssparse.KindAttribute:
		// Presence-only: value matchers ([attr=value]) are not part of
		// spec.md §4.4's selector grammar, so any value satisfies a
		// matched attribute name (spec.md §7 "non-Name selector kinds
		// in matcher" unimplemented-feature note).
		_, ok := n.Attr(sel.Ident)
		return ok
	default:
		return false
	}
}

func parentElement(doc *dom.Document, id dom.NodeID) dom.NodeID {
	n := doc.Node(id)
	if n == nil || n.ParentID == id {
		return 0
	}
	parent := doc.Node(n.ParentID)
	if parent == nil || parent.Type != dom.ElementNode {
		return 0
	}
	return parent.ID
}

func immediatePrecedingSibling(doc *dom.Document, id dom.NodeID) dom.NodeID {
	sibs := siblingElements(doc, id)
	for i, s := range sibs {
		if s == id {
			if i == 0 {
				return 0
			}
			return sibs[i-1]
		}
	}
	return 0
}

func precedingSiblings(doc *dom.Document, id dom.NodeID) []dom.NodeID {
	sibs := siblingElements(doc, id)
	for i, s := range sibs {
		if s == id {
			return sibs[:i]
		}
	}
	return nil
}

func siblingElements(doc *dom.Document, id dom.NodeID) []dom.NodeID {
	n := doc.Node(id)
	if n == nil {
		return nil
	}
	parent := doc.Node(n.ParentID)
	if parent == nil {
		return nil
	}
	var out []dom.NodeID
	for _, c := range parent.Children {
		child := doc.Node(c)
		if child != nil && child.Type == dom.ElementNode {
			out = append(out, c)
		}
	}
	return out
}
