package layout

import (
	"github.com/quillweb/quill/internal/diag"
	"github.com/quillweb/quill/internal/platform"
)

// Compute assigns every node in t a geometric Box, starting from
// rootID at (x, y) with availableWidth to lay out into (spec.md §4.7,
// §6's compute_layout).
//
// When onlyVerticalShift is true and forceFullLayout is false, this is
// the dirty-bit fast path: no box is re-measured, the whole subtree is
// simply translated by the delta between its previous and new y, which
// is cheap relative to re-running text measurement and wrapping.
// forceFullLayout overrides the fast path (used the first time a
// subtree is laid out, when there is no previous box to shift from).
func Compute(t *Tree, fc platform.FontContext, rootID NodeID, x, y, availableWidth float64, onlyVerticalShift, forceFullLayout bool) Box {
	return computeNode(t, fc, rootID, x, y, availableWidth, onlyVerticalShift, forceFullLayout)
}

// Position returns n's box for external callers (rendering, hit
// testing). Querying the position of a NoContent node -- the synthetic
// root only -- is an internal invariant violation; every other node
// kind always carries a real box once Compute has run.
func (t *Tree) Position(id NodeID) Box {
	n := t.Node(id)
	if n == nil {
		diag.Fatalf("layout: position requested for unknown node %d", id)
	}
	if n.Kind == NoContent {
		diag.Fatalf("layout: position requested for NoContent node %d", id)
	}
	return n.Box
}

func computeNode(t *Tree, fc platform.FontContext, id NodeID, x, y, availWidth float64, onlyVerticalShift, forceFullLayout bool) Box {
	n := t.Node(id)
	if n == nil {
		diag.Fatalf("layout: compute requested for unknown node %d", id)
	}
	if !n.Visible {
		n.Box = Box{X: x, Y: y, W: 0, H: 0}
		return n.Box
	}

	if onlyVerticalShift && !forceFullLayout {
		delta := y - n.Box.Y
		translateVertical(t, id, delta)
		n.Box.X = x
		return n.Box
	}

	switch n.Kind {
	case TableContent:
		return computeTable(t, fc, n, x, y, availWidth)
	case ImageContent:
		n.Box = Box{X: x, Y: y, W: float64(n.ImageW), H: float64(n.ImageH)}
		return n.Box
	case ButtonContent:
		n.Box = Box{X: x, Y: y, W: 100, H: 32}
		return n.Box
	case TextInputContent:
		n.Box = Box{X: x, Y: y, W: 240, H: 32}
		return n.Box
	case TextContent:
		// A text node computed directly (not through its parent's inline
		// flow) lays out as a single unwrapped line; real documents only
		// reach this through computeInline, which measures/wraps inline.
		return computeStandaloneText(fc, n, x, y)
	default:
		switch n.FmtCtx {
		case Inline:
			return computeInline(t, fc, n, x, y, availWidth)
		default:
			return computeBlock(t, fc, n, x, y, availWidth)
		}
	}
}

func computeStandaloneText(fc platform.FontContext, n *Node, x, y float64) Box {
	text := n.BackupBox.Text
	w, h := fc.TextDimension(text, n.Font)
	tb := TextBox{Box: Box{X: x, Y: y, W: w, H: h}, Text: text, CharPositions: fc.CharPositionMapping(text, n.Font)}
	n.TextBoxes = []TextBox{tb}
	n.Box = tb.Box
	return n.Box
}

// computeBlock stacks children vertically, each at the parent's
// left edge and full available width, and sizes the parent to the
// union of its children (spec.md §4.7's block formatting context).
func computeBlock(t *Tree, fc platform.FontContext, n *Node, x, y, availWidth float64) Box {
	cursorY := y
	maxW := 0.0
	for _, c := range n.Children {
		box := computeNode(t, fc, c, x, cursorY, availWidth, false, true)
		if box.W > maxW {
			maxW = box.W
		}
		cursorY += box.H
	}
	n.Box = Box{X: x, Y: y, W: maxW, H: cursorY - y}
	return n.Box
}

// translateVertical shifts a previously-computed subtree's boxes (and
// every TextBox within it) by delta without re-measuring anything --
// the dirty-bit fast path for a pure scroll or reflow-above-without-
// content-change event (spec.md §4.7, §9).
func translateVertical(t *Tree, id NodeID, delta float64) {
	n := t.Node(id)
	if n == nil || delta == 0 {
		return
	}
	n.Box.Y += delta
	for i := range n.TextBoxes {
		n.TextBoxes[i].Box.Y += delta
		if n.TextBoxes[i].SelectionRect != nil {
			n.TextBoxes[i].SelectionRect.Y += delta
		}
	}
	n.BackupBox.Box.Y += delta
	for _, c := range n.Children {
		translateVertical(t, c, delta)
	}
}
