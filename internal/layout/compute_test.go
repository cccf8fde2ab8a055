package layout

import (
	"testing"

	"github.com/quillweb/quill/internal/platform"
)

func newTextNode(tr *Tree, text string, font platform.Font, nbsp map[int]bool) *Node {
	n := tr.alloc(TextContent)
	n.Font = font
	n.NonBreak = nbsp
	tb := TextBox{Text: text}
	n.TextBoxes = []TextBox{tb}
	n.BackupBox = tb
	return n
}

func TestComputeBlockStacksChildrenVertically(t *testing.T) {
	tr := newTree()
	root := tr.alloc(AreaContent)
	root.FmtCtx = Block
	tr.RootID = root.ID

	font := platform.Font{SizePx: 12}
	c1 := newTextNode(tr, "hello", font, nil)
	c2 := newTextNode(tr, "world", font, nil)
	root.Children = []NodeID{c1.ID, c2.ID}
	c1.ParentID, c2.ParentID = root.ID, root.ID

	fc := platform.NewFixedFontContext(2, 10)
	box := Compute(tr, fc, root.ID, 0, 0, 100, false, true)

	if box.H != 20 {
		t.Fatalf("root height = %v, want 20", box.H)
	}
	if c1.Box.Y != 0 || c2.Box.Y != 10 {
		t.Fatalf("child y positions = %v, %v; want 0, 10", c1.Box.Y, c2.Box.Y)
	}
	if c1.Box.W != 10 { // "hello" = 5 runes * 2px
		t.Fatalf("c1 width = %v, want 10", c1.Box.W)
	}
}

func TestComputeInlineWrapsLongText(t *testing.T) {
	tr := newTree()
	root := tr.alloc(AreaContent)
	root.FmtCtx = Inline
	tr.RootID = root.ID

	font := platform.Font{SizePx: 12}
	c1 := newTextNode(tr, "aaaa bbbb cccc", font, nil)
	root.Children = []NodeID{c1.ID}
	c1.ParentID = root.ID

	fc := platform.NewFixedFontContext(1, 10)
	Compute(tr, fc, root.ID, 0, 0, 9, false, true)

	if len(c1.TextBoxes) != 2 {
		t.Fatalf("expected the long run to wrap into 2 lines, got %d: %+v", len(c1.TextBoxes), c1.TextBoxes)
	}
	if c1.TextBoxes[1].Box.Y != 10 {
		t.Fatalf("second line y = %v, want 10", c1.TextBoxes[1].Box.Y)
	}
}

func TestComputeInlineSkipsLeadingTrailingWhitespace(t *testing.T) {
	tr := newTree()
	root := tr.alloc(AreaContent)
	root.FmtCtx = Inline
	tr.RootID = root.ID

	font := platform.Font{SizePx: 12}
	lead := newTextNode(tr, "  ", font, nil)
	word := newTextNode(tr, "hi", font, nil)
	trail := newTextNode(tr, " ", font, nil)
	root.Children = []NodeID{lead.ID, word.ID, trail.ID}
	for _, c := range root.Children {
		tr.Node(c).ParentID = root.ID
	}

	fc := platform.NewFixedFontContext(1, 10)
	Compute(tr, fc, root.ID, 0, 0, 100, false, true)

	if len(lead.TextBoxes) != 0 || len(trail.TextBoxes) != 0 {
		t.Fatalf("expected leading/trailing whitespace-only children to render no boxes")
	}
	if len(word.TextBoxes) != 1 || word.TextBoxes[0].Text != "hi" {
		t.Fatalf("expected the interior word to render, got %+v", word.TextBoxes)
	}
}

func TestComputeInlineSkipsInteriorWhitespaceOnlySibling(t *testing.T) {
	tr := newTree()
	root := tr.alloc(AreaContent)
	root.FmtCtx = Inline
	tr.RootID = root.ID

	font := platform.Font{SizePx: 12}
	a := newTextNode(tr, "a", font, nil)
	gap := newTextNode(tr, " ", font, nil)
	b := newTextNode(tr, "b", font, nil)
	root.Children = []NodeID{a.ID, gap.ID, b.ID}
	for _, c := range root.Children {
		tr.Node(c).ParentID = root.ID
	}

	fc := platform.NewFixedFontContext(1, 10)
	Compute(tr, fc, root.ID, 0, 0, 100, false, true)

	if len(gap.TextBoxes) != 0 {
		t.Fatalf("expected an interior whitespace-only sibling between two inline children to render no boxes, got %+v", gap.TextBoxes)
	}
	if len(a.TextBoxes) != 1 || len(b.TextBoxes) != 1 {
		t.Fatalf("expected both non-whitespace siblings to still render, got a=%+v b=%+v", a.TextBoxes, b.TextBoxes)
	}
}

func TestComputeVerticalShiftFastPathTranslatesWithoutRemeasuring(t *testing.T) {
	tr := newTree()
	root := tr.alloc(AreaContent)
	root.FmtCtx = Block
	tr.RootID = root.ID

	font := platform.Font{SizePx: 12}
	c1 := newTextNode(tr, "hello", font, nil)
	root.Children = []NodeID{c1.ID}
	c1.ParentID = root.ID

	fc := platform.NewFixedFontContext(2, 10)
	Compute(tr, fc, root.ID, 0, 0, 100, false, true)
	originalW := c1.Box.W

	Compute(tr, fc, root.ID, 0, 50, 100, true, false)
	if c1.Box.Y != 50 {
		t.Fatalf("child y after vertical shift = %v, want 50", c1.Box.Y)
	}
	if c1.Box.W != originalW {
		t.Fatalf("vertical shift must not alter width: got %v, want %v", c1.Box.W, originalW)
	}
}

func TestPositionPanicsForNoContent(t *testing.T) {
	tr := newTree()
	root := tr.alloc(NoContent)
	tr.RootID = root.ID

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected Position on a NoContent node to panic")
		}
	}()
	tr.Position(root.ID)
}
