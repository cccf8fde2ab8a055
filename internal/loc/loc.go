// Package loc provides source-position tracking shared by every lexer,
// parser, and diagnostic in the module.
package loc

import "fmt"

// Pos is a line/column position within a source text. Both are 1-based;
// column resets to 1 after every '\n'.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Less reports whether p sorts strictly before q, lexicographically on
// (Line, Column).
func (p Pos) Less(q Pos) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// LessOrEqual reports (Line, Column) <= (Line, Column).
func (p Pos) LessOrEqual(q Pos) bool {
	return p == q || p.Less(q)
}

// Range is a half-open span of source positions, [Start, End).
type Range struct {
	Start Pos
	End   Pos
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
