// Package dom implements the node arena described in spec.md §3 "DOM
// Node" and §9's design note: nodes are slab-allocated in a Document
// and referenced by integer id rather than by pointer, so that parent
// links and child lists are weak-by-construction and dirty-bit
// propagation is a simple linear scan (no reference-counted cycles).
package dom

import "golang.org/x/net/html/atom"

// NodeID is a process-wide unique integer id. 0 is reserved for "no
// parent" (the synthetic root is its own parent, per spec.md §3).
type NodeID int

// NodeType is the tagged variant spec.md's Data Model names for a DOM
// Node: Document, Element, Attribute, Text.
type NodeType int

const (
	DocumentNode NodeType = iota
	ElementNode
	AttributeNode
	TextNode
)

func (t NodeType) String() string {
	switch t {
	case DocumentNode:
		return "Document"
	case ElementNode:
		return "Element"
	case AttributeNode:
		return "Attribute"
	case TextNode:
		return "Text"
	default:
		return "Unknown"
	}
}

// Attribute is a single name/value pair carried on an Element node.
type Attribute struct {
	Name  string
	Value string
}

// Image is the decoded resource an <img> element may carry once the
// platform's resource loader (spec.md §6) has fetched it. The core
// never decodes bytes itself; it only stores whatever the collaborator
// handed back (or a fallback on failure, per spec.md §7).
type Image struct {
	Width, Height int
	Loaded        bool
}

// ComponentKind distinguishes the two page-component handles an
// Element may carry (spec.md §3: "optional page-component handle
// (button or text input)").
type ComponentKind int

const (
	NoComponent ComponentKind = iota
	ButtonComponent
	TextInputComponent
)

// Component is an opaque handle to a UI widget the platform owns; the
// core only stores and forwards it, per spec.md §6's platform
// interface boundary.
type Component struct {
	Kind  ComponentKind
	Value string // current text content, e.g. an <input> value or a <button> label
}

// Node is one entry in a Document's arena. Exactly one of
// {Text, Children, Name} is populated depending on Type, per spec.md
// §3's invariant.
type Node struct {
	ID       NodeID
	ParentID NodeID
	Type     NodeType
	Dirty    bool

	// Element fields.
	Name       string // lowercased tag name
	Atom       atom.Atom
	Attributes []Attribute
	Image      *Image
	Component  *Component

	// Text fields.
	Text string
	// NonBreakingIndices records character indices (into Text) that
	// originated from an &nbsp; entity and therefore forbid line-wrap
	// at that position (spec.md §3, §4.7).
	NonBreakingIndices map[int]bool

	Children []NodeID
}

// Attr returns the value of the named attribute and whether it was
// present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// VoidElements never expect a matching close tag (spec.md §4.3 item 1);
// the parser emits their Element node immediately at OpenTagEnd and
// ignores stray close tags for these names.
var VoidElements = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true, "link": true, "meta": true,
}
