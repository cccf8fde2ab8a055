package layout

import (
	"testing"

	"github.com/quillweb/quill/internal/cssparse"
	"github.com/quillweb/quill/internal/diag"
	"github.com/quillweb/quill/internal/dom"
	"github.com/quillweb/quill/internal/style"
)

func TestBuildAllInlineChildrenGiveInlineContext(t *testing.T) {
	doc := dom.NewDocument()
	span := doc.NewElement(doc.RootID, "span")
	doc.NewText(span, "hi", nil)

	res := Build(doc, style.NewStyleContext(), doc.RootID, diag.New())
	root := res.Tree.Node(res.Root)
	if root.FmtCtx != Inline {
		t.Fatalf("expected Inline formatting context for an all-inline child set, got %v", root.FmtCtx)
	}
}

func TestBuildAllBlockChildrenGiveBlockContext(t *testing.T) {
	doc := dom.NewDocument()
	doc.NewElement(doc.RootID, "div")
	doc.NewElement(doc.RootID, "p")

	res := Build(doc, style.NewStyleContext(), doc.RootID, diag.New())
	root := res.Tree.Node(res.Root)
	if root.FmtCtx != Block {
		t.Fatalf("expected Block formatting context for an all-block child set, got %v", root.FmtCtx)
	}
}

// Spec.md §4.6's "critical invariant": mixed block/inline children
// force a Block context with contiguous inline runs wrapped in
// synthetic anonymous-block nodes.
func TestBuildMixedChildrenWrapInlineRunsInAnonymousBlocks(t *testing.T) {
	doc := dom.NewDocument()
	span := doc.NewElement(doc.RootID, "span")
	doc.NewText(span, "inline text", nil)
	doc.NewElement(doc.RootID, "div")

	res := Build(doc, style.NewStyleContext(), doc.RootID, diag.New())
	root := res.Tree.Node(res.Root)
	if root.FmtCtx != Block {
		t.Fatalf("expected Block formatting context for mixed children, got %v", root.FmtCtx)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 top-level children (anonymous block + div), got %d", len(root.Children))
	}
	anon := res.Tree.Node(root.Children[0])
	if anon.Kind != AreaContent || anon.FmtCtx != Inline {
		t.Fatalf("expected the first child to be a synthetic inline area, got kind=%v fmtCtx=%v", anon.Kind, anon.FmtCtx)
	}
}

func TestBuildSkipsDisplayNoneChildren(t *testing.T) {
	doc := dom.NewDocument()
	doc.NewElement(doc.RootID, "div")
	ctx := style.NewStyleContext()
	ctx.AppendAuthorRules(cssparse.Parse("div { display: none }", diag.New()))

	res := Build(doc, ctx, doc.RootID, diag.New())
	root := res.Tree.Node(res.Root)
	if len(root.Children) != 0 {
		t.Fatalf("expected display:none child to be excluded entirely, got %d children", len(root.Children))
	}
}

func TestBuildWalkOrderListsContentNodesDepthFirst(t *testing.T) {
	doc := dom.NewDocument()
	div := doc.NewElement(doc.RootID, "div")
	doc.NewText(div, "a", nil)
	doc.NewText(div, "b", nil)

	res := Build(doc, style.NewStyleContext(), doc.RootID, diag.New())
	if len(res.Tree.ContentNodesInWalkOrder) != 2 {
		t.Fatalf("expected 2 content nodes in walk order, got %d", len(res.Tree.ContentNodesInWalkOrder))
	}
}
