package dom

import (
	"fmt"

	"golang.org/x/net/html/atom"
)

// Document is the node arena for one parsed page (spec.md §3's DOM
// lifecycle: "built once per navigation"). All traversal goes through
// Nodes by id; there are no pointer-based parent/child links.
type Document struct {
	Nodes  map[NodeID]*Node
	RootID NodeID

	nextID NodeID
}

// NewDocument allocates an empty arena with a synthetic Document root
// node. Per spec.md §3, the root is its own parent.
func NewDocument() *Document {
	d := &Document{Nodes: make(map[NodeID]*Node)}
	root := d.alloc(DocumentNode)
	root.ParentID = root.ID
	d.RootID = root.ID
	return d
}

func (d *Document) alloc(t NodeType) *Node {
	d.nextID++
	n := &Node{ID: d.nextID, Type: t}
	d.Nodes[n.ID] = n
	return n
}

// NewElement allocates an Element node with the given lowercased tag
// name (interned against golang.org/x/net/html/atom, the teacher's tag
// atom table) and appends it as a child of parentID.
func (d *Document) NewElement(parentID NodeID, name string) NodeID {
	n := d.alloc(ElementNode)
	n.Name = name
	n.Atom = atom.Lookup([]byte(name))
	n.ParentID = parentID
	d.appendChild(parentID, n.ID)
	return n.ID
}

// NewText allocates a Text node and appends it as a child of parentID.
func (d *Document) NewText(parentID NodeID, text string, nbsp map[int]bool) NodeID {
	n := d.alloc(TextNode)
	n.Text = text
	n.NonBreakingIndices = nbsp
	n.ParentID = parentID
	d.appendChild(parentID, n.ID)
	return n.ID
}

func (d *Document) appendChild(parentID, childID NodeID) {
	if p, ok := d.Nodes[parentID]; ok {
		p.Children = append(p.Children, childID)
	}
}

// Node looks up a node by id, returning nil if id is not present (a
// stale id survived a navigation -- spec.md §5's "Cancellation":
// "discarding any results arriving for DOM nodes that no longer
// exist").
func (d *Document) Node(id NodeID) *Node {
	return d.Nodes[id]
}

// Parent returns n's parent node, or nil at the root.
func (d *Document) Parent(n *Node) *Node {
	if n == nil || n.ParentID == n.ID {
		return nil
	}
	return d.Node(n.ParentID)
}

// MarkDirty sets n's dirty bit and propagates it up to the root, so a
// single linear scan from any ancestor finds every dirty descendant
// (spec.md §4.7 "Dirty tracking").
func (d *Document) MarkDirty(id NodeID) {
	for {
		n := d.Node(id)
		if n == nil || n.Dirty {
			return
		}
		n.Dirty = true
		if n.ID == n.ParentID {
			return
		}
		id = n.ParentID
	}
}

// ClearDirty clears the dirty bit on rootID and every descendant.
// Called after each full compute_layout pass (spec.md §4.7).
func (d *Document) ClearDirty(rootID NodeID) {
	n := d.Node(rootID)
	if n == nil {
		return
	}
	n.Dirty = false
	for _, c := range n.Children {
		d.ClearDirty(c)
	}
}

// IsDirtyAnywhere reports whether rootID or any descendant has its
// dirty bit set.
func (d *Document) IsDirtyAnywhere(rootID NodeID) bool {
	n := d.Node(rootID)
	if n == nil {
		return false
	}
	if n.Dirty {
		return true
	}
	for _, c := range n.Children {
		if d.IsDirtyAnywhere(c) {
			return true
		}
	}
	return false
}

// CheckConsistency validates testable property 3 from spec.md §8: every
// child's ParentID equals its parent's id, and every id reachable from
// the root is present in Nodes. Returns "" when consistent, or a
// description of the first violation found.
func (d *Document) CheckConsistency() string {
	return d.checkSubtree(d.RootID)
}

func (d *Document) checkSubtree(id NodeID) string {
	n := d.Node(id)
	if n == nil {
		return fmt.Sprintf("node %d reachable but missing from arena", id)
	}
	for _, c := range n.Children {
		child := d.Node(c)
		if child == nil {
			return fmt.Sprintf("child %d of node %d missing from arena", c, id)
		}
		if child.ParentID != n.ID {
			return fmt.Sprintf("child %d has ParentID %d, want %d", c, child.ParentID, n.ID)
		}
		if msg := d.checkSubtree(c); msg != "" {
			return msg
		}
	}
	return ""
}
