package buffer

import "cmp"

// Pos is a 0-based (row, grapheme column) location in the document.
type Pos struct {
	Row         int
	GraphemeCol int
}

// Range spans [Start, End). Operations that accept a Range normalize it first.
type Range struct {
	Start Pos
	End   Pos
}

// TextEdit replaces Range with Text; Text may span lines.
type TextEdit struct {
	Range Range
	Text  string
}

// ComparePos orders positions row-major. It returns -1, 0 or 1.
func ComparePos(a, b Pos) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.GraphemeCol, b.GraphemeCol)
}

// NormalizeRange swaps the ends of r when End precedes Start.
func NormalizeRange(r Range) Range {
	if ComparePos(r.End, r.Start) < 0 {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

func (r Range) IsEmpty() bool { return r.Start == r.End }

// Contains reports Start <= p < End.
func (r Range) Contains(p Pos) bool {
	return ComparePos(p, r.Start) >= 0 && ComparePos(p, r.End) < 0
}

// ClampPos pulls p inside a document of rowCount lines (at least one) whose
// lengths lineLen reports. A nil lineLen treats every line as empty.
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	row := min(max(p.Row, 0), max(rowCount, 1)-1)
	limit := 0
	if lineLen != nil {
		limit = max(lineLen(row), 0)
	}
	return Pos{Row: row, GraphemeCol: min(max(p.GraphemeCol, 0), limit)}
}

// ClampRange applies ClampPos to both ends of r.
func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	r.Start = ClampPos(r.Start, rowCount, lineLen)
	r.End = ClampPos(r.End, rowCount, lineLen)
	return r
}
