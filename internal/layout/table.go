package layout

import (
	"strconv"

	"github.com/quillweb/quill/internal/diag"
	"github.com/quillweb/quill/internal/dom"
	"github.com/quillweb/quill/internal/style"
)

// buildTable implements spec.md §4.8's builder half: read <tr> rows,
// then <td>/<th> cells, scanning forward from the first free slot so
// that colspan/rowspan never anchor two cells on the same slot.
func buildTable(t *Tree, doc *dom.Document, ctx *style.StyleContext, tableDOM *dom.Node, h *diag.Handler) NodeID {
	tableLN := t.alloc(TableContent)
	tableLN.DOMNode = tableDOM.ID

	rows := tableRows(doc, tableDOM)
	occupied := map[[2]int]bool{}
	maxCols := 0
	var cellIDs []NodeID

	for rowY, rowID := range rows {
		row := doc.Node(rowID)
		col := 0
		for _, cellDOMID := range row.Children {
			cellDOM := doc.Node(cellDOMID)
			if cellDOM == nil || cellDOM.Type != dom.ElementNode {
				continue
			}
			if cellDOM.Name != "td" && cellDOM.Name != "th" {
				continue
			}
			for occupied[[2]int{col, rowY}] {
				col++
			}
			colspan := attrInt(cellDOM, "colspan", 1)
			rowspan := attrInt(cellDOM, "rowspan", 1)
			for dy := 0; dy < rowspan; dy++ {
				for dx := 0; dx < colspan; dx++ {
					occupied[[2]int{col + dx, rowY + dy}] = true
				}
			}

			cellLN := t.alloc(TableCellContent)
			cellLN.DOMNode = cellDOM.ID
			cellLN.SlotX, cellLN.SlotY = col, rowY
			cellLN.ColSpan, cellLN.RowSpan = colspan, rowspan

			children, fctx := buildChildGroup(t, doc, ctx, cellDOM.Children, h)
			cellLN.FmtCtx = fctx
			cellLN.Children = children
			setParents(t, cellLN.ID, children)

			cellIDs = append(cellIDs, cellLN.ID)
			if col+colspan > maxCols {
				maxCols = col + colspan
			}
			col += colspan
		}
	}

	tableLN.TableCols = maxCols
	tableLN.TableRows = len(rows)
	tableLN.Children = cellIDs
	setParents(t, tableLN.ID, cellIDs)
	return tableLN.ID
}

// tableRows collects <tr> descendants in source order, transparently
// looking through <thead>/<tbody>/<tfoot> wrappers (spec.md §4.8 names
// rows as the table's structural unit; the wrapper elements carry no
// layout meaning of their own in this pipeline).
func tableRows(doc *dom.Document, table *dom.Node) []dom.NodeID {
	var rows []dom.NodeID
	var walk func(ids []dom.NodeID)
	walk = func(ids []dom.NodeID) {
		for _, id := range ids {
			n := doc.Node(id)
			if n == nil || n.Type != dom.ElementNode {
				continue
			}
			switch n.Name {
			case "tr":
				rows = append(rows, id)
			case "thead", "tbody", "tfoot":
				walk(n.Children)
			}
		}
	}
	walk(table.Children)
	return rows
}

func attrInt(n *dom.Node, name string, def int) int {
	raw, ok := n.Attr(name)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def
	}
	return v
}
