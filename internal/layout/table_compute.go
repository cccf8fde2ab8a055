package layout

import "github.com/quillweb/quill/internal/platform"

// computeTable implements spec.md §4.8's two-pass table sizing: first
// a sizing pass establishes, per column, a minimum width (content
// wrapped as tight as possible) and a potential width (content laid
// out unwrapped), with multi-column cells spreading any shortfall
// evenly across the columns they span; then columns are allocated
// either their full potential width (table fits within availWidth) or
// a width interpolated between minimum and potential in proportion to
// the slack available. Row heights follow the same two-pass shape:
// single-row cells set their row's height directly, and a spanning
// cell that doesn't fit in the rows it already claims pads the last
// row it spans.
func computeTable(t *Tree, fc platform.FontContext, n *Node, x, y, availWidth float64) Box {
	cols := n.TableCols
	if cols == 0 {
		n.Box = Box{X: x, Y: y}
		return n.Box
	}
	rows := n.TableRows

	colMin := make([]float64, cols)
	colPotential := make([]float64, cols)
	cellMinW := make(map[NodeID]float64, len(n.Children))
	cellPotentialW := make(map[NodeID]float64, len(n.Children))

	const unbounded = 1e7
	for _, cellID := range n.Children {
		cell := t.Node(cellID)
		minBox := computeNode(t, fc, cellID, 0, 0, 1, false, true)
		cellMinW[cellID] = minBox.W
		potBox := computeNode(t, fc, cellID, 0, 0, unbounded, false, true)
		cellPotentialW[cellID] = potBox.W

		spreadInto(colMin, cell.SlotX, cell.ColSpan, cellMinW[cellID])
		spreadInto(colPotential, cell.SlotX, cell.ColSpan, cellPotentialW[cellID])
	}

	totalMin, totalPotential := 0.0, 0.0
	for c := 0; c < cols; c++ {
		totalMin += colMin[c]
		totalPotential += colPotential[c]
	}

	colWidth := make([]float64, cols)
	switch {
	case totalPotential <= availWidth:
		copy(colWidth, colPotential)
	case totalPotential > totalMin:
		frac := (availWidth - totalMin) / (totalPotential - totalMin)
		if frac < 0 {
			frac = 0
		}
		for c := 0; c < cols; c++ {
			colWidth[c] = colMin[c] + (colPotential[c]-colMin[c])*frac
		}
	default:
		copy(colWidth, colMin)
	}

	colX := make([]float64, cols+1)
	colX[0] = x
	for c := 0; c < cols; c++ {
		colX[c+1] = colX[c] + colWidth[c]
	}

	rowHeight := make([]float64, rows)
	cellHeight := make(map[NodeID]float64, len(n.Children))
	for _, cellID := range n.Children {
		cell := t.Node(cellID)
		w := spanWidth(colWidth, cell.SlotX, cell.ColSpan)
		box := computeNode(t, fc, cellID, 0, 0, w, false, true)
		cellHeight[cellID] = box.H
		if cell.RowSpan == 1 && cell.SlotY < rows {
			if box.H > rowHeight[cell.SlotY] {
				rowHeight[cell.SlotY] = box.H
			}
		}
	}
	for _, cellID := range n.Children {
		cell := t.Node(cellID)
		if cell.RowSpan <= 1 {
			continue
		}
		need := cellHeight[cellID]
		have := 0.0
		last := cell.SlotY + cell.RowSpan - 1
		for r := cell.SlotY; r <= last && r < rows; r++ {
			have += rowHeight[r]
		}
		if need > have && last < rows {
			rowHeight[last] += need - have
		}
	}

	rowY := make([]float64, rows+1)
	rowY[0] = y
	for r := 0; r < rows; r++ {
		rowY[r+1] = rowY[r] + rowHeight[r]
	}

	for _, cellID := range n.Children {
		cell := t.Node(cellID)
		cx := colX[cell.SlotX]
		cw := spanWidth(colWidth, cell.SlotX, cell.ColSpan)
		cy := rowY[cell.SlotY]
		ch := 0.0
		last := cell.SlotY + cell.RowSpan - 1
		for r := cell.SlotY; r <= last && r < rows; r++ {
			ch += rowHeight[r]
		}
		computeNode(t, fc, cellID, cx, cy, cw, false, true)
		cell.Box = Box{X: cx, Y: cy, W: cw, H: ch}
	}

	n.Box = Box{X: x, Y: y, W: colX[cols] - colX[0], H: rowY[rows] - rowY[0]}
	return n.Box
}

func spreadInto(col []float64, startCol, span int, width float64) {
	if span <= 0 {
		span = 1
	}
	end := startCol + span
	if end > len(col) {
		end = len(col)
	}
	if span == 1 {
		if startCol < len(col) && width > col[startCol] {
			col[startCol] = width
		}
		return
	}
	current := 0.0
	for c := startCol; c < end; c++ {
		current += col[c]
	}
	if width <= current {
		return
	}
	shortfall := (width - current) / float64(span)
	for c := startCol; c < end; c++ {
		col[c] += shortfall
	}
}

func spanWidth(colWidth []float64, startCol, span int) float64 {
	if span <= 0 {
		span = 1
	}
	end := startCol + span
	if end > len(colWidth) {
		end = len(colWidth)
	}
	w := 0.0
	for c := startCol; c < end; c++ {
		w += colWidth[c]
	}
	return w
}
