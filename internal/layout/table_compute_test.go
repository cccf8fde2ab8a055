package layout

import (
	"testing"

	"github.com/quillweb/quill/internal/platform"
)

func newTableCell(tr *Tree, text string, font platform.Font, slotX, slotY, colspan, rowspan int) *Node {
	cell := tr.alloc(TableCellContent)
	cell.SlotX, cell.SlotY = slotX, slotY
	cell.ColSpan, cell.RowSpan = colspan, rowspan
	word := newTextNode(tr, text, font, nil)
	word.ParentID = cell.ID
	cell.FmtCtx = Inline
	cell.Children = []NodeID{word.ID}
	return cell
}

// Property 9 from spec.md §8: the sum of computed column widths never
// exceeds the available width (plus floating-point slack).
func TestComputeTableColumnWidthsFitAvailable(t *testing.T) {
	tr := newTree()
	table := tr.alloc(TableContent)
	tr.RootID = table.ID
	font := platform.Font{SizePx: 12}

	c1 := newTableCell(tr, "short", font, 0, 0, 1, 1)
	c2 := newTableCell(tr, "a very much longer cell content string", font, 1, 0, 1, 1)
	table.TableCols = 2
	table.TableRows = 1
	table.Children = []NodeID{c1.ID, c2.ID}

	fc := platform.NewFixedFontContext(1, 10)
	const available = 50.0
	box := computeTable(tr, fc, table, 0, 0, available)

	if box.W > available+0.001 {
		t.Fatalf("table width %v exceeds available %v", box.W, available)
	}
}

func TestComputeTableUsesPotentialWidthWhenItFits(t *testing.T) {
	tr := newTree()
	table := tr.alloc(TableContent)
	tr.RootID = table.ID
	font := platform.Font{SizePx: 12}

	c1 := newTableCell(tr, "ab", font, 0, 0, 1, 1)
	c2 := newTableCell(tr, "cd", font, 1, 0, 1, 1)
	table.TableCols = 2
	table.TableRows = 1
	table.Children = []NodeID{c1.ID, c2.ID}

	fc := platform.NewFixedFontContext(1, 10)
	box := computeTable(tr, fc, table, 0, 0, 1000)

	if box.W != 4 {
		t.Fatalf("table width = %v, want 4 (2 cols x 2px unwrapped content)", box.W)
	}
}

func TestComputeTableColspanOccupiesSummedWidth(t *testing.T) {
	tr := newTree()
	table := tr.alloc(TableContent)
	tr.RootID = table.ID
	font := platform.Font{SizePx: 12}

	spanning := newTableCell(tr, "wide cell content", font, 0, 0, 2, 1)
	table.TableCols = 2
	table.TableRows = 1
	table.Children = []NodeID{spanning.ID}

	fc := platform.NewFixedFontContext(1, 10)
	box := computeTable(tr, fc, table, 0, 0, 1000)

	if spanning.Box.W <= 0 {
		t.Fatalf("expected a positive width for the spanning cell, got %v", spanning.Box.W)
	}
	if spanning.Box.W != box.W {
		t.Fatalf("spanning cell width = %v, want the table's summed width %v", spanning.Box.W, box.W)
	}
}

func TestComputeTableRowspanCellSpansItsRows(t *testing.T) {
	tr := newTree()
	table := tr.alloc(TableContent)
	tr.RootID = table.ID
	font := platform.Font{SizePx: 12}

	tall := newTableCell(tr, "aaaaaaaaaaaaaaaaaaaa", font, 0, 0, 1, 2)
	short := newTableCell(tr, "x", font, 1, 1, 1, 1)
	table.TableCols = 2
	table.TableRows = 2
	table.Children = []NodeID{tall.ID, short.ID}

	fc := platform.NewFixedFontContext(1, 10)
	computeTable(tr, fc, table, 0, 0, 1000)

	if tall.Box.H <= 0 {
		t.Fatalf("expected a positive height for the rowspan cell")
	}
	if short.Box.Y < tall.Box.Y {
		t.Fatalf("expected the short cell's row to start at or after the spanning cell's row")
	}
}
