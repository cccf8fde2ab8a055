// Package layout builds and computes the layout tree of spec.md §3
// "Layout Node" / §4.6-§4.8: a second pass over the styled DOM that
// assigns block/inline/table formatting contexts, wraps mixed
// inline/block runs in anonymous blocks, and (in a later pass) assigns
// geometric boxes. Structured as an id-keyed arena, the same pattern
// internal/dom uses, for the same reason (spec.md §9): dirty-bit
// reflow needs a stable node identity that survives a partial rebuild.
package layout

import (
	"github.com/quillweb/quill/internal/dom"
	"github.com/quillweb/quill/internal/platform"
	"github.com/quillweb/quill/internal/style"
)

// NodeID is a layout-tree-local arena id.
type NodeID int

// FormattingContext is the rule set governing how a node's children
// are positioned (spec.md §3/§4.6).
type FormattingContext int

const (
	Block FormattingContext = iota
	Inline
	Table
)

func (f FormattingContext) String() string {
	switch f {
	case Block:
		return "Block"
	case Inline:
		return "Inline"
	case Table:
		return "Table"
	default:
		return "Unknown"
	}
}

// PositioningScheme is reserved per spec.md §3; only Static is
// implemented (positioned layout is a Non-goal).
type PositioningScheme int

const (
	Static PositioningScheme = iota
)

// ContentKind tags which of spec.md §3's Layout Node content variants
// a Node carries.
type ContentKind int

const (
	NoContent ContentKind = iota
	TextContent
	ImageContent
	ButtonContent
	TextInputContent
	AreaContent
	TableContent
	TableCellContent
)

func (k ContentKind) String() string {
	switch k {
	case TextContent:
		return "Text"
	case ImageContent:
		return "Image"
	case ButtonContent:
		return "Button"
	case TextInputContent:
		return "TextInput"
	case AreaContent:
		return "Area"
	case TableContent:
		return "Table"
	case TableCellContent:
		return "TableCell"
	default:
		return "NoContent"
	}
}

// Box is the CSS box spec.md §3 defines: an axis-aligned rectangle in
// floating-point page pixels.
type Box struct {
	X, Y, W, H float64
}

// SelectionRange is a half-open [Start, End) rune-index range into a
// TextBox's literal string (End is one past the last selected rune),
// set by the selection engine (spec.md §4.9).
type SelectionRange struct {
	Start, End int
}

// TextBox is one wrapped line (or the whole run, pre-wrap) of a Text
// content node: a box, the literal substring it renders, the
// per-character x-advance mapping used by selection, and
// an optional selection annotation.
type TextBox struct {
	Box           Box
	Text          string
	CharPositions []float64 // CharPositions[i] = x-advance from line start to the end of rune i
	Selection     *SelectionRange
	SelectionRect *Box
}

// Node is one entry in a layout Tree's arena. Exactly one content
// variant applies, selected by Kind, matching spec.md §3's "content
// tagged variant" (kept as a single struct with Kind-gated fields,
// the same pattern internal/dom.Node uses, per spec.md §9's note on
// preserving the source's tagged-variant polymorphism as a sum type).
type Node struct {
	ID       NodeID
	ParentID NodeID
	DOMNode  dom.NodeID // 0 for synthetic nodes (anonymous blocks, root)
	Visible  bool
	FmtCtx   FormattingContext
	Pos      PositioningScheme
	Children []NodeID
	Kind     ContentKind

	// TextContent.
	TextBoxes []TextBox
	BackupBox TextBox // pre-wrap box, restored when available width changes
	Font      platform.Font
	Color     style.Color
	Bg        style.Color
	NonBreak  map[int]bool
	LineBreak bool

	// AreaContent / TextContent background.
	HasBg bool

	// ImageContent.
	Box            Box
	ImageW, ImageH int

	// ButtonContent / TextInputContent.
	Component *dom.Component

	// TableContent.
	TableCols, TableRows int

	// TableCellContent.
	SlotX, SlotY, ColSpan, RowSpan int
}

// Tree is the arena for one built layout pass.
type Tree struct {
	Nodes  map[NodeID]*Node
	RootID NodeID

	// ContentNodesInWalkOrder lists every content-bearing leaf
	// (Text/Image/Button/TextInput) in depth-first walk order, used by
	// the selection engine to decide selection direction (spec.md
	// §4.9, §6's build_full_layout output).
	ContentNodesInWalkOrder []NodeID

	nextID NodeID
}

func newTree() *Tree {
	return &Tree{Nodes: make(map[NodeID]*Node)}
}

func (t *Tree) alloc(kind ContentKind) *Node {
	t.nextID++
	n := &Node{ID: t.nextID, Kind: kind, Visible: true}
	t.Nodes[n.ID] = n
	return n
}

// Node looks up a node by id, or nil if id is stale/missing.
func (t *Tree) Node(id NodeID) *Node {
	return t.Nodes[id]
}

// IsContentNode reports whether n carries user-visible content, per
// spec.md's GLOSSARY "Content node" definition.
func (n *Node) IsContentNode() bool {
	switch n.Kind {
	case TextContent, ImageContent, ButtonContent, TextInputContent:
		return true
	default:
		return false
	}
}
