package style

import (
	"sort"

	"github.com/quillweb/quill/internal/cssparse"
	"github.com/quillweb/quill/internal/dom"
)

type activeRule struct {
	rule Rule
	spec cssparse.Specificity
}

// Resolve computes the effective property map for nodeID: cascade
// (origin, specificity, source order) followed by per-property
// inheritance up the parent chain (spec.md §4.5).
func Resolve(doc *dom.Document, ctx *StyleContext, nodeID dom.NodeID) map[cssparse.Property]string {
	own := cascade(doc, ctx, nodeID)
	parent := parentElement(doc, nodeID)
	if parent == 0 {
		return own
	}
	parentStyles := Resolve(doc, ctx, parent)
	for prop, val := range parentStyles {
		if _, set := own[prop]; !set && prop.Inheritable() {
			own[prop] = val
		}
	}
	return own
}

func cascade(doc *dom.Document, ctx *StyleContext, nodeID dom.NodeID) map[cssparse.Property]string {
	var actives []activeRule
	for _, r := range ctx.UserAgentSheet {
		if matches(doc, nodeID, r.Selector) {
			actives = append(actives, activeRule{rule: r, spec: r.Selector.Specificity()})
		}
	}
	for _, r := range ctx.AuthorSheet {
		if matches(doc, nodeID, r.Selector) {
			actives = append(actives, activeRule{rule: r, spec: r.Selector.Specificity()})
		}
	}

	sort.SliceStable(actives, func(i, j int) bool {
		return lessActive(actives[i], actives[j])
	})

	out := make(map[cssparse.Property]string, len(actives))
	for _, a := range actives {
		out[a.rule.Property] = a.rule.Value
	}
	return out
}

// lessActive is the cascade ordering comparator. spec.md §9 flags the
// source's version of this comparator as comparing a rule against
// itself (rule_a.spec_X > rule_a.spec_X, always false) -- a
// transcription bug that silently disabled specificity as a tiebreak.
// This compares a against b on every key, as the cascade actually
// requires.
func lessActive(a, b activeRule) bool {
	if a.rule.Origin != b.rule.Origin {
		return a.rule.Origin < b.rule.Origin
	}
	if a.spec.Attribute != b.spec.Attribute {
		return a.spec.Attribute < b.spec.Attribute
	}
	if a.spec.ID != b.spec.ID {
		return a.spec.ID < b.spec.ID
	}
	if a.spec.Class != b.spec.Class {
		return a.spec.Class < b.spec.Class
	}
	if a.spec.Type != b.spec.Type {
		return a.spec.Type < b.spec.Type
	}
	return a.rule.Order < b.rule.Order
}
