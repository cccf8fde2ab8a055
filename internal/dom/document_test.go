package dom

import "testing"

func TestRootIsOwnParent(t *testing.T) {
	doc := NewDocument()
	root := doc.Node(doc.RootID)
	if root.ParentID != root.ID {
		t.Fatalf("root ParentID = %d, want %d (itself)", root.ParentID, root.ID)
	}
}

func TestNewElementAppendsChild(t *testing.T) {
	doc := NewDocument()
	div := doc.NewElement(doc.RootID, "div")
	span := doc.NewElement(div, "span")

	root := doc.Node(doc.RootID)
	if len(root.Children) != 1 || root.Children[0] != div {
		t.Fatalf("unexpected root children: %+v", root.Children)
	}
	divNode := doc.Node(div)
	if len(divNode.Children) != 1 || divNode.Children[0] != span {
		t.Fatalf("unexpected div children: %+v", divNode.Children)
	}
	if doc.Node(span).ParentID != div {
		t.Fatalf("span ParentID = %d, want %d", doc.Node(span).ParentID, div)
	}
}

// Property 3 from spec.md §8: parent/child consistency.
func TestCheckConsistency(t *testing.T) {
	doc := NewDocument()
	div := doc.NewElement(doc.RootID, "div")
	doc.NewText(div, "hi", nil)
	if msg := doc.CheckConsistency(); msg != "" {
		t.Fatalf("expected a consistent tree, got: %s", msg)
	}
}

func TestCheckConsistencyCatchesBrokenParentID(t *testing.T) {
	doc := NewDocument()
	div := doc.NewElement(doc.RootID, "div")
	text := doc.NewText(div, "hi", nil)
	doc.Node(text).ParentID = doc.RootID // corrupt it
	if msg := doc.CheckConsistency(); msg == "" {
		t.Fatalf("expected CheckConsistency to catch the corrupted ParentID")
	}
}

func TestDirtyPropagatesToRoot(t *testing.T) {
	doc := NewDocument()
	div := doc.NewElement(doc.RootID, "div")
	span := doc.NewElement(div, "span")

	doc.MarkDirty(span)
	if !doc.Node(span).Dirty || !doc.Node(div).Dirty || !doc.Node(doc.RootID).Dirty {
		t.Fatalf("expected dirty bit to propagate to every ancestor")
	}
	if !doc.IsDirtyAnywhere(doc.RootID) {
		t.Fatalf("IsDirtyAnywhere should report true")
	}

	doc.ClearDirty(doc.RootID)
	if doc.IsDirtyAnywhere(doc.RootID) {
		t.Fatalf("IsDirtyAnywhere should report false after ClearDirty")
	}
}

func TestNodeLookupMissReturnsNil(t *testing.T) {
	doc := NewDocument()
	if doc.Node(NodeID(9999)) != nil {
		t.Fatalf("expected nil for a stale/missing id")
	}
}

func TestAttrLookup(t *testing.T) {
	doc := NewDocument()
	div := doc.NewElement(doc.RootID, "div")
	n := doc.Node(div)
	n.Attributes = append(n.Attributes, Attribute{Name: "id", Value: "main"})
	if v, ok := n.Attr("id"); !ok || v != "main" {
		t.Fatalf("unexpected attr lookup: %v, %v", v, ok)
	}
	if _, ok := n.Attr("missing"); ok {
		t.Fatalf("expected missing attribute to report ok=false")
	}
}
