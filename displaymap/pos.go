package displaymap

import (
	"fmt"

	"github.com/iw2rmb/foldline/buffer"
)

// BufferPos is a position in the source text: logical row and grapheme column.
type BufferPos = buffer.Pos

// WrapPos is a position after soft wrapping. Row counts wrapped rows from the
// top of the document; Col is relative to the start of that wrapped row.
type WrapPos struct {
	Row int
	Col int
}

// DisplayPos is a position after wrapping and folding.
type DisplayPos struct {
	Row int
	Col int
}

func (p WrapPos) String() string    { return fmt.Sprintf("wrap(%d:%d)", p.Row, p.Col) }
func (p DisplayPos) String() string { return fmt.Sprintf("display(%d:%d)", p.Row, p.Col) }

func compareWrap(a, b WrapPos) int {
	switch {
	case a.Row < b.Row:
		return -1
	case a.Row > b.Row:
		return 1
	case a.Col < b.Col:
		return -1
	case a.Col > b.Col:
		return 1
	}
	return 0
}

// FoldRange is a half-open buffer range [Start, End) collapsed to a marker.
type FoldRange struct {
	Start BufferPos
	End   BufferPos
}

// FoldRows returns a fold covering buffer rows [start, end): from the beginning of
// row start to the beginning of row end.
func FoldRows(start, end int) FoldRange {
	return FoldRange{
		Start: BufferPos{Row: start},
		End:   BufferPos{Row: end},
	}
}

func (r FoldRange) String() string {
	return fmt.Sprintf("[%d:%d, %d:%d)", r.Start.Row, r.Start.GraphemeCol, r.End.Row, r.End.GraphemeCol)
}

// Contains reports whether p lies in [Start, End).
func (r FoldRange) Contains(p BufferPos) bool {
	return buffer.ComparePos(r.Start, p) <= 0 && buffer.ComparePos(p, r.End) < 0
}

func (r FoldRange) overlaps(o FoldRange) bool {
	return buffer.ComparePos(r.Start, o.End) < 0 && buffer.ComparePos(o.Start, r.End) < 0
}

// RowRange is a half-open range of buffer rows.
type RowRange struct {
	Start int
	End   int
}

func (r RowRange) Len() int { return r.End - r.Start }

// Edit describes one text replacement. Old is the replaced range in pre-edit
// coordinates; New is the range the replacement occupies afterwards. Both
// start at the same position.
type Edit struct {
	Old buffer.Range
	New buffer.Range
}

// EditFromApplied converts an edit reported by buffer.Buffer.Apply.
func EditFromApplied(e buffer.AppliedEdit) Edit {
	return Edit{Old: e.RangeBefore, New: e.RangeAfter}
}

func (e Edit) oldRows() RowRange {
	return RowRange{Start: e.Old.Start.Row, End: e.Old.End.Row + 1}
}

func (e Edit) newRowCount() int {
	return e.New.End.Row - e.New.Start.Row + 1
}

func (e Edit) validate() error {
	if buffer.ComparePos(e.Old.Start, e.Old.End) > 0 || buffer.ComparePos(e.New.Start, e.New.End) > 0 {
		return fmt.Errorf("%w: inverted edit range", ErrInvalidRange)
	}
	if e.Old.Start != e.New.Start {
		return fmt.Errorf("%w: edit ranges start at %v and %v", ErrInvalidRange, e.Old.Start, e.New.Start)
	}
	if e.Old.Start.Row < 0 || e.Old.Start.GraphemeCol < 0 {
		return fmt.Errorf("%w: edit starts at %v", ErrOutOfRange, e.Old.Start)
	}
	return nil
}

// Source is the text the display map reads. Columns are grapheme clusters.
// *buffer.Buffer implements it.
type Source interface {
	LineCount() int
	LineLen(row int) int
	LineText(row int) string
}

var _ Source = (*buffer.Buffer)(nil)
