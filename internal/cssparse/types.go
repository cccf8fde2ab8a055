// Package cssparse builds selector+declaration rules from the CSS
// token stream (spec.md §4.4), consumed by internal/style's cascade
// resolver.
package cssparse

// Combinator connects one simple selector to the next one in a
// Selector, walking right to left (spec.md §3's "Stylesheet Rule").
type Combinator int

const (
	NoCombinator Combinator = iota // first element in the selector
	Descendant                     // whitespace
	Child                          // >
	NextSibling                    // +
	GeneralSibling                 // ~
)

func (c Combinator) String() string {
	switch c {
	case Descendant:
		return "Descendant"
	case Child:
		return "Child"
	case NextSibling:
		return "NextSibling"
	case GeneralSibling:
		return "GeneralSibling"
	default:
		return "None"
	}
}

// SimpleSelectorKind is what a single selector element matches against.
type SimpleSelectorKind int

const (
	KindName SimpleSelectorKind = iota
	KindID
	KindClass
	KindUniversal
	KindAttribute
)

// SimpleSelector is one element of a Selector: a combinator connecting
// it to the previous element, a kind, and the identifier it matches
// (tag name, id, class name, or attribute name).
type SimpleSelector struct {
	Combinator    Combinator
	Kind          SimpleSelectorKind
	Ident         string
	Pseudoclasses []string
}

// Selector is stored in source order; matching an element against it
// walks outward from the last (rightmost, target) element, per
// spec.md §3's invariant.
type Selector []SimpleSelector

// Specificity is the (attribute, id, class, type) counting tuple used
// to break ties between matching rules (spec.md §4.5).
type Specificity struct {
	Attribute int
	ID        int
	Class     int
	Type      int
}

// add combines the specificity contribution of one SimpleSelector.
func (s Specificity) add(kind SimpleSelectorKind) Specificity {
	switch kind {
	case KindAttribute:
		s.Attribute++
	case KindID:
		s.ID++
	case KindClass:
		s.Class++
	case KindName:
		s.Type++
	}
	return s
}

// Specificity computes the selector's specificity tuple by summing
// every simple selector's contribution (universal selectors and
// pseudoclasses contribute nothing extra here, matching the subset
// spec.md §4.5 describes).
func (sel Selector) Specificity() Specificity {
	var s Specificity
	for _, e := range sel {
		s = s.add(e.Kind)
	}
	return s
}

// Declaration is a single `property: value` pair inside a ruleset's
// declaration block. Value is the raw captured text; unit/number
// resolution happens later in internal/style (spec.md §4.4: "value is
// captured as a raw string").
type Declaration struct {
	Property Property
	RawValue string
}

// Rule is a parsed ruleset: a comma-separated list of selectors
// sharing one declaration block, matching spec.md §4.4's ruleset
// grammar. The cascade resolver (internal/style) expands this into
// one StyleRule per (selector, declaration) pair.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}
