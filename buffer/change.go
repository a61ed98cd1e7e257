package buffer

// AppliedEdit is the record a mutation returns and downstream layers consume.
// RangeBefore is in pre-edit coordinates and RangeAfter in post-edit ones;
// they share Start. When grapheme clusters merge across an edge of the edit,
// both ranges widen to cover the merged clusters and the texts follow.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// RowsBefore counts the lines RangeBefore spans.
func (e AppliedEdit) RowsBefore() int { return rowSpan(e.RangeBefore) }

// RowsAfter counts the lines RangeAfter spans.
func (e AppliedEdit) RowsAfter() int { return rowSpan(e.RangeAfter) }

func rowSpan(r Range) int { return r.End.Row - r.Start.Row + 1 }

// wholeDocumentEdit describes replacing the document before with after, as
// undo and redo do. ok is false when the two are equal.
func wholeDocumentEdit(before, after string) (e AppliedEdit, ok bool) {
	if before == after {
		return e, false
	}
	e = AppliedEdit{
		RangeBefore: documentRange(before),
		RangeAfter:  documentRange(after),
		InsertText:  after,
		DeletedText: before,
	}
	return e, true
}

func documentRange(text string) Range {
	lines := splitLines(text)
	last := len(lines) - 1
	return Range{End: Pos{Row: last, GraphemeCol: len(lines[last])}}
}
