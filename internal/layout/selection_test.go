package layout

import (
	"testing"

	"github.com/quillweb/quill/internal/platform"
)

func buildTwoWordInlineTree(fc platform.FontContext) *Tree {
	tr := newTree()
	root := tr.alloc(AreaContent)
	root.FmtCtx = Inline
	tr.RootID = root.ID

	font := platform.Font{SizePx: 12}
	c1 := newTextNode(tr, "hello", font, nil)
	c2 := newTextNode(tr, "world", font, nil)
	root.Children = []NodeID{c1.ID, c2.ID}
	c1.ParentID, c2.ParentID = root.ID, root.ID

	Compute(tr, fc, root.ID, 0, 0, 1000, false, true)
	tr.ContentNodesInWalkOrder = walkOrder(tr, root.ID)
	return tr
}

func TestSetSelectionRegionsWithinOneWord(t *testing.T) {
	fc := platform.NewFixedFontContext(2, 10)
	tr := buildTwoWordInlineTree(fc)
	c1 := tr.Node(tr.ContentNodesInWalkOrder[0])

	// "hello" spans x in [0,10) at 2px/char; select runes 1..3 ("el").
	SetSelectionRegions(tr, Point{X: 2, Y: 5}, Point{X: 6, Y: 5})

	if c1.TextBoxes[0].Selection == nil {
		t.Fatalf("expected a selection on the first word")
	}
	got := SelectedText(tr)
	if got != "el" {
		t.Fatalf("selected text = %q, want %q", got, "el")
	}
}

func TestSetSelectionRegionsSpansMultipleNodes(t *testing.T) {
	fc := platform.NewFixedFontContext(2, 10)
	tr := buildTwoWordInlineTree(fc)

	// "hello" at x[0,10), "world" at x[10,20).
	SetSelectionRegions(tr, Point{X: 4, Y: 5}, Point{X: 16, Y: 5})

	got := SelectedText(tr)
	if got != "llowor" {
		t.Fatalf("selected text = %q, want %q", got, "llowor")
	}
}

// Property 10: selection is symmetric -- the two hit points can be
// given in either order and produce the same selected text.
func TestSetSelectionRegionsSymmetric(t *testing.T) {
	fc := platform.NewFixedFontContext(2, 10)
	tr1 := buildTwoWordInlineTree(fc)
	tr2 := buildTwoWordInlineTree(fc)

	p1, p2 := Point{X: 4, Y: 5}, Point{X: 16, Y: 5}
	SetSelectionRegions(tr1, p1, p2)
	SetSelectionRegions(tr2, p2, p1)

	got1, got2 := SelectedText(tr1), SelectedText(tr2)
	if got1 != got2 {
		t.Fatalf("selection not symmetric: %q vs %q", got1, got2)
	}
}

func TestClearSelectionRemovesAnnotations(t *testing.T) {
	fc := platform.NewFixedFontContext(2, 10)
	tr := buildTwoWordInlineTree(fc)
	SetSelectionRegions(tr, Point{X: 0, Y: 5}, Point{X: 20, Y: 5})
	if SelectedText(tr) == "" {
		t.Fatalf("expected a non-empty selection before clearing")
	}
	ClearSelection(tr)
	if got := SelectedText(tr); got != "" {
		t.Fatalf("expected no selection after ClearSelection, got %q", got)
	}
}
