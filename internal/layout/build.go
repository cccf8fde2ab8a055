package layout

import (
	"github.com/quillweb/quill/internal/cssparse"
	"github.com/quillweb/quill/internal/diag"
	"github.com/quillweb/quill/internal/dom"
	"github.com/quillweb/quill/internal/platform"
	"github.com/quillweb/quill/internal/style"
)

// Result bundles the outputs spec.md §6's build_full_layout names: the
// tree root plus every content node in depth-first walk order (used by
// the selection engine, spec.md §4.9).
type Result struct {
	Tree *Tree
	Root NodeID
}

// Build walks doc from rootDomID and produces a layout tree, assigning
// a formatting context per parent and wrapping contiguous inline runs
// in anonymous blocks wherever a parent has mixed block/inline children
// (spec.md §4.6, the "critical invariant").
func Build(doc *dom.Document, ctx *style.StyleContext, rootDomID dom.NodeID, h *diag.Handler) Result {
	t := newTree()
	root := t.alloc(NoContent)
	root.DOMNode = rootDomID
	root.ParentID = root.ID
	t.RootID = root.ID

	domRoot := doc.Node(rootDomID)
	children, fctx := buildChildGroup(t, doc, ctx, domRoot.Children, h)
	root.FmtCtx = fctx
	root.Children = children
	setParents(t, root.ID, children)

	t.ContentNodesInWalkOrder = walkOrder(t, root.ID)
	return Result{Tree: t, Root: root.ID}
}

func setParents(t *Tree, parentID NodeID, children []NodeID) {
	for _, c := range children {
		if n := t.Node(c); n != nil {
			n.ParentID = parentID
		}
	}
}

func walkOrder(t *Tree, id NodeID) []NodeID {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	var out []NodeID
	if n.IsContentNode() {
		out = append(out, id)
	}
	for _, c := range n.Children {
		out = append(out, walkOrder(t, c)...)
	}
	return out
}

// buildNodeForDOM dispatches per element name/atom, per spec.md §4.6's
// per-element rules.
func buildNodeForDOM(t *Tree, doc *dom.Document, ctx *style.StyleContext, domID dom.NodeID, h *diag.Handler) NodeID {
	n := doc.Node(domID)
	if n.Type == dom.TextNode {
		return buildTextLeaf(t, doc, ctx, n)
	}
	switch n.Name {
	case "br":
		return buildBr(t, n)
	case "img":
		return buildImg(t, n)
	case "input":
		return buildInput(t, n)
	case "script", "style", "title":
		return buildInvisible(t, n)
	case "table":
		return buildTable(t, doc, ctx, n, h)
	default:
		return buildContainer(t, doc, ctx, n, h)
	}
}

func buildContainer(t *Tree, doc *dom.Document, ctx *style.StyleContext, n *dom.Node, h *diag.Handler) NodeID {
	ln := t.alloc(AreaContent)
	ln.DOMNode = n.ID

	styles := style.Resolve(doc, ctx, n.ID)
	if c, ok := resolveBackground(styles); ok {
		ln.Bg, ln.HasBg = c, true
	}

	children, fctx := buildChildGroup(t, doc, ctx, n.Children, h)
	ln.FmtCtx = fctx
	ln.Children = children
	setParents(t, ln.ID, children)
	return ln.ID
}

// buildChildGroup implements spec.md §4.6's formatting-context
// assignment: inspect each child's display property (display:none
// children are excluded entirely); all-inline children give the parent
// an Inline context, all-block gives Block, and a mixed set gives
// Block with every contiguous inline run wrapped in a synthetic
// anonymous-block layout node.
func buildChildGroup(t *Tree, doc *dom.Document, ctx *style.StyleContext, domChildren []dom.NodeID, h *diag.Handler) ([]NodeID, FormattingContext) {
	type item struct {
		id     NodeID
		inline bool
	}
	var items []item
	for _, childDomID := range domChildren {
		child := doc.Node(childDomID)
		if child == nil {
			continue
		}
		switch child.Type {
		case dom.ElementNode:
			styles := style.Resolve(doc, ctx, childDomID)
			if style.GetProperty(styles, cssparse.PropertyDisplay) == "none" {
				continue
			}
			isInline := style.GetProperty(styles, cssparse.PropertyDisplay) != "block"
			items = append(items, item{buildNodeForDOM(t, doc, ctx, childDomID, h), isInline})
		case dom.TextNode:
			items = append(items, item{buildNodeForDOM(t, doc, ctx, childDomID, h), true})
		}
	}

	if len(items) == 0 {
		return nil, Inline
	}

	allInline, allBlock := true, true
	for _, it := range items {
		if it.inline {
			allBlock = false
		} else {
			allInline = false
		}
	}

	ids := func(its []item) []NodeID {
		out := make([]NodeID, len(its))
		for i, it := range its {
			out[i] = it.id
		}
		return out
	}

	if allInline {
		return ids(items), Inline
	}
	if allBlock {
		return ids(items), Block
	}

	var out []NodeID
	i := 0
	for i < len(items) {
		if !items[i].inline {
			out = append(out, items[i].id)
			i++
			continue
		}
		start := i
		for i < len(items) && items[i].inline {
			i++
		}
		run := items[start:i]
		anon := t.alloc(AreaContent)
		anon.FmtCtx = Inline
		for _, r := range run {
			anon.Children = append(anon.Children, r.id)
		}
		setParents(t, anon.ID, anon.Children)
		out = append(out, anon.ID)
	}
	return out, Block
}

func buildTextLeaf(t *Tree, doc *dom.Document, ctx *style.StyleContext, n *dom.Node) NodeID {
	ln := t.alloc(TextContent)
	ln.DOMNode = n.ID
	ln.NonBreak = n.NonBreakingIndices

	parentStyles := style.Resolve(doc, ctx, n.ParentID)
	ln.Font = resolveFont(parentStyles)
	ln.Color = style.GetColorStyleValue(parentStyles, cssparse.PropertyColor, nil)
	if c, ok := resolveBackground(parentStyles); ok {
		ln.Bg, ln.HasBg = c, true
	}

	tb := TextBox{Text: n.Text}
	ln.TextBoxes = []TextBox{tb}
	ln.BackupBox = tb
	return ln.ID
}

func buildBr(t *Tree, n *dom.Node) NodeID {
	ln := t.alloc(TextContent)
	ln.DOMNode = n.ID
	ln.LineBreak = true
	return ln.ID
}

func buildImg(t *Tree, n *dom.Node) NodeID {
	ln := t.alloc(ImageContent)
	ln.DOMNode = n.ID
	if n.Image != nil && n.Image.Loaded {
		ln.ImageW, ln.ImageH = n.Image.Width, n.Image.Height
	} else {
		// spec.md §7: missing resource falls back to a 1x1 transparent
		// image; layout proceeds without propagating an error.
		ln.ImageW, ln.ImageH = 1, 1
	}
	return ln.ID
}

func buildInput(t *Tree, n *dom.Node) NodeID {
	typ, _ := n.Attr("type")
	var kind ContentKind
	if typ == "submit" {
		kind = ButtonContent
	} else {
		kind = TextInputContent
	}
	ln := t.alloc(kind)
	ln.DOMNode = n.ID
	ln.Component = n.Component
	return ln.ID
}

// buildInvisible handles <script>/<style>/<title>: included in the
// tree so ids remain stable, but never painted or measured (spec.md
// §4.6).
func buildInvisible(t *Tree, n *dom.Node) NodeID {
	ln := t.alloc(AreaContent)
	ln.DOMNode = n.ID
	ln.Visible = false
	return ln.ID
}

func resolveFont(styles map[cssparse.Property]string) platform.Font {
	size, ok := style.ResolveNumericValue(style.GetProperty(styles, cssparse.PropertyFontSize), nil)
	if !ok {
		size = 18
	}
	return platform.Font{
		Family: style.GetProperty(styles, cssparse.PropertyFontFamily),
		SizePx: size,
		Bold:   style.GetProperty(styles, cssparse.PropertyFontWeight) == "bold",
	}
}

// resolveBackground treats the "transparent" default as "no
// background to paint" rather than calling GetColorStyleValue (which
// would otherwise warn and fall back to black for any non-named
// value, per spec.md §4.5).
func resolveBackground(styles map[cssparse.Property]string) (style.Color, bool) {
	raw := style.GetProperty(styles, cssparse.PropertyBackgroundColor)
	if raw == "transparent" {
		return style.Color{}, false
	}
	return style.ParseColor(raw)
}
