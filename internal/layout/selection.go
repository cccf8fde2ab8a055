package layout

import (
	"math"
	"strings"
)

// Point is a page-pixel coordinate, the unit set_selection_regions and
// hit testing operate in (spec.md §4.9).
type Point struct {
	X, Y float64
}

// caretStop identifies one addressable line within the layout tree:
// every non-text content node contributes a single stop (line 0); a
// wrapped text node contributes one stop per TextBox. Stops are
// ordered by t.ContentNodesInWalkOrder, then by line, giving the
// total order selection direction is computed from.
type caretStop struct {
	node NodeID
	line int
}

type caret struct {
	caretStop
	char int
}

// SetSelectionRegions implements spec.md §4.9's set_selection_regions:
// hit-test both points against the layout tree, order them by walk
// position (not click order), and mark every TextBox between them --
// clamped to the exact character boundary at each endpoint -- as
// selected.
func SetSelectionRegions(t *Tree, p1, p2 Point) {
	ClearSelection(t)

	c1, ok1 := locate(t, p1)
	c2, ok2 := locate(t, p2)
	if !ok1 || !ok2 {
		return
	}

	stops, index := buildCaretStops(t)
	i1, i2 := index[c1.caretStop], index[c2.caretStop]
	start, end, startI, endI := c1, c2, i1, i2
	if i1 > i2 {
		start, end, startI, endI = c2, c1, i2, i1
	}

	for idx := startI; idx <= endI; idx++ {
		s := stops[idx]
		n := t.Node(s.node)
		if n == nil || n.Kind != TextContent || s.line >= len(n.TextBoxes) {
			continue
		}
		tb := &n.TextBoxes[s.line]
		runeLen := len([]rune(tb.Text))
		selStart, selEnd := 0, runeLen
		if idx == startI {
			selStart = start.char
		}
		if idx == endI {
			selEnd = end.char
		}
		if selStart > selEnd {
			selStart, selEnd = selEnd, selStart
		}
		tb.Selection = &SelectionRange{Start: selStart, End: selEnd}
		tb.SelectionRect = rectFor(tb, selStart, selEnd)
	}
}

// ClearSelection removes every selection annotation from t, the state
// set_selection_regions((nil, nil)) -- or any fresh click -- resets to.
func ClearSelection(t *Tree) {
	for _, n := range t.Nodes {
		for i := range n.TextBoxes {
			n.TextBoxes[i].Selection = nil
			n.TextBoxes[i].SelectionRect = nil
		}
	}
}

// SelectedText concatenates every selected TextBox substring in walk
// order, spec.md §4.9's "get selected text".
func SelectedText(t *Tree) string {
	var sb strings.Builder
	for _, id := range t.ContentNodesInWalkOrder {
		n := t.Node(id)
		if n == nil || n.Kind != TextContent {
			continue
		}
		for _, tb := range n.TextBoxes {
			if tb.Selection == nil {
				continue
			}
			r := []rune(tb.Text)
			s, e := tb.Selection.Start, tb.Selection.End
			if s < 0 {
				s = 0
			}
			if e > len(r) {
				e = len(r)
			}
			if s < e {
				sb.WriteString(string(r[s:e]))
			}
		}
	}
	return sb.String()
}

func buildCaretStops(t *Tree) ([]caretStop, map[caretStop]int) {
	var stops []caretStop
	index := map[caretStop]int{}
	for _, id := range t.ContentNodesInWalkOrder {
		n := t.Node(id)
		if n == nil {
			continue
		}
		lines := 1
		if n.Kind == TextContent {
			lines = len(n.TextBoxes)
			if lines == 0 {
				lines = 1
			}
		}
		for l := 0; l < lines; l++ {
			s := caretStop{node: id, line: l}
			index[s] = len(stops)
			stops = append(stops, s)
		}
	}
	return stops, index
}

// locate performs spec.md §4.9's content-node hit testing: descend the
// layout tree by bounding box, preferring a box that actually contains
// p, falling back to the content node whose box center is closest.
func locate(t *Tree, p Point) (caret, bool) {
	id, ok := descend(t, t.RootID, p)
	if !ok {
		id, ok = nearestContentNode(t, p)
		if !ok {
			return caret{}, false
		}
	}
	n := t.Node(id)
	if n.Kind != TextContent {
		return caret{caretStop: caretStop{node: id, line: 0}}, true
	}
	line := nearestLine(n, p)
	if line < 0 {
		return caret{}, false
	}
	char := charIndexAt(n.TextBoxes[line], p.X)
	return caret{caretStop: caretStop{node: id, line: line}, char: char}, true
}

func descend(t *Tree, id NodeID, p Point) (NodeID, bool) {
	n := t.Node(id)
	if n == nil || !n.Visible {
		return 0, false
	}
	if !boxContains(n.Box, p) {
		return 0, false
	}
	for _, c := range n.Children {
		if found, ok := descend(t, c, p); ok {
			return found, true
		}
	}
	if n.IsContentNode() {
		return id, true
	}
	return 0, false
}

func nearestContentNode(t *Tree, p Point) (NodeID, bool) {
	best := NodeID(0)
	bestDist := math.Inf(1)
	for _, id := range t.ContentNodesInWalkOrder {
		n := t.Node(id)
		if n == nil || !n.Visible {
			continue
		}
		b := n.Box
		cx, cy := b.X+b.W/2, b.Y+b.H/2
		d := (p.X-cx)*(p.X-cx) + (p.Y-cy)*(p.Y-cy)
		if d < bestDist {
			bestDist, best = d, id
		}
	}
	return best, best != 0
}

func nearestLine(n *Node, p Point) int {
	best := -1
	bestDist := math.Inf(1)
	for i, tb := range n.TextBoxes {
		cy := tb.Box.Y + tb.Box.H/2
		d := math.Abs(p.Y - cy)
		if d < bestDist {
			bestDist, best = d, i
		}
	}
	return best
}

func boxContains(b Box, p Point) bool {
	return p.X >= b.X && p.X <= b.X+b.W && p.Y >= b.Y && p.Y <= b.Y+b.H
}

// charIndexAt returns the character boundary (0..len(runes)) within tb
// nearest to the page-pixel x coordinate, via the line's
// CharPositions table.
func charIndexAt(tb TextBox, x float64) int {
	localX := x - tb.Box.X
	n := len(tb.CharPositions)
	if n == 0 {
		return 0
	}
	best := 0
	bestDist := math.Abs(localX)
	for i := 1; i <= n; i++ {
		d := math.Abs(localX - tb.CharPositions[i-1])
		if d < bestDist {
			bestDist, best = d, i
		}
	}
	return best
}

func rectFor(tb *TextBox, start, end int) *Box {
	x0 := boundaryX(tb, start)
	x1 := boundaryX(tb, end)
	return &Box{X: tb.Box.X + x0, Y: tb.Box.Y, W: x1 - x0, H: tb.Box.H}
}

func boundaryX(tb *TextBox, i int) float64 {
	if i <= 0 {
		return 0
	}
	if i-1 < len(tb.CharPositions) {
		return tb.CharPositions[i-1]
	}
	if len(tb.CharPositions) > 0 {
		return tb.CharPositions[len(tb.CharPositions)-1]
	}
	return 0
}
