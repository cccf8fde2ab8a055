package layout

import (
	"strings"

	"github.com/quillweb/quill/internal/platform"
)

// computeInline lays out a node's children left-to-right as spec.md
// §4.7's inline formatting context: text runs are measured and, when
// they overflow the remaining width, wrapped (wrap_text); non-text
// inline children (images, buttons, inputs, nested anonymous inline
// boxes) flow alongside them and move to the next line as a whole
// when they don't fit; a line_break child always starts a fresh line.
// A whitespace-only text child is dropped entirely wherever it falls in
// the run, matching how inter-element whitespace collapses to nothing
// instead of becoming a visible text box.
func computeInline(t *Tree, fc platform.FontContext, n *Node, x, y, availWidth float64) Box {
	cursorX, cursorY := x, y
	lineHeight := 0.0
	maxLineW := 0.0
	atLineStart := true

	for _, childID := range n.Children {
		child := t.Node(childID)
		if child == nil {
			continue
		}

		if child.Kind == TextContent && !child.LineBreak && isWhitespaceOnly(child.BackupBox.Text) {
			child.TextBoxes = nil
			child.Box = Box{X: cursorX, Y: cursorY}
			continue
		}

		if child.Kind == TextContent && child.LineBreak {
			h := lineHeight
			if h == 0 {
				_, h = fc.TextDimension("X", child.Font)
			}
			child.Box = Box{X: cursorX, Y: cursorY, H: h}
			cursorY += h
			cursorX = x
			lineHeight = 0
			atLineStart = true
			continue
		}

		if child.Kind == TextContent {
			placeTextChild(fc, child, &cursorX, &cursorY, &lineHeight, &atLineStart, x, availWidth)
			if cursorX-x > maxLineW {
				maxLineW = cursorX - x
			}
			continue
		}

		remaining := availWidth - (cursorX - x)
		childBox := computeNode(t, fc, childID, cursorX, cursorY, remaining, false, true)
		if childBox.W > remaining && !atLineStart {
			cursorX = x
			cursorY += lineHeight
			lineHeight = 0
			atLineStart = true
			childBox = computeNode(t, fc, childID, cursorX, cursorY, availWidth, false, true)
		}
		cursorX += childBox.W
		if childBox.H > lineHeight {
			lineHeight = childBox.H
		}
		if cursorX-x > maxLineW {
			maxLineW = cursorX - x
		}
		atLineStart = false
	}

	n.Box = Box{X: x, Y: y, W: maxLineW, H: (cursorY + lineHeight) - y}
	return n.Box
}

func placeTextChild(fc platform.FontContext, child *Node, cursorX, cursorY, lineHeight *float64, atLineStart *bool, lineX, availWidth float64) {
	text := child.BackupBox.Text
	remaining := availWidth - (*cursorX - lineX)
	w, h := fc.TextDimension(text, child.Font)

	if w <= remaining {
		tb := TextBox{Box: Box{X: *cursorX, Y: *cursorY, W: w, H: h}, Text: text, CharPositions: fc.CharPositionMapping(text, child.Font)}
		child.TextBoxes = []TextBox{tb}
		child.Box = tb.Box
		*cursorX += w
		if h > *lineHeight {
			*lineHeight = h
		}
		*atLineStart = false
		return
	}

	lines := wrapText(fc, child.Font, text, child.NonBreak, availWidth, remaining)
	boxes := make([]TextBox, 0, len(lines))
	for i, lineText := range lines {
		if i > 0 {
			*cursorX = lineX
			*cursorY += *lineHeight
			*lineHeight = 0
			*atLineStart = true
		}
		lw, lh := fc.TextDimension(lineText, child.Font)
		boxes = append(boxes, TextBox{Box: Box{X: *cursorX, Y: *cursorY, W: lw, H: lh}, Text: lineText, CharPositions: fc.CharPositionMapping(lineText, child.Font)})
		*cursorX += lw
		if lh > *lineHeight {
			*lineHeight = lh
		}
		*atLineStart = false
	}
	child.TextBoxes = boxes
	if len(boxes) > 0 {
		first, last := boxes[0].Box, boxes[len(boxes)-1].Box
		maxW := 0.0
		for _, b := range boxes {
			if b.Box.W > maxW {
				maxW = b.Box.W
			}
		}
		child.Box = Box{X: first.X, Y: first.Y, W: maxW, H: (last.Y + last.H) - first.Y}
	}
}

func isWhitespaceOnly(s string) bool {
	return strings.TrimFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			return true
		}
		return false
	}) == ""
}
