package buffer

import (
	"strings"

	"github.com/iw2rmb/foldline/internal/grapheme"
)

// Apply applies a sequence of text edits in order. Each edit's range is
// interpreted against the buffer state at the time that edit is applied.
//
// Semantics:
// - Edit ranges are clamped into current document bounds.
// - Empty range + non-empty text inserts.
// - Edits that change nothing are skipped and not reported.
//
// The returned slice holds one AppliedEdit per effective edit, in order. The
// version is bumped once if anything changed.
func (b *Buffer) Apply(edits ...TextEdit) []AppliedEdit {
	if len(edits) == 0 {
		return nil
	}

	prev := b.Text()

	var out []AppliedEdit
	for _, e := range edits {
		applied, changed := b.replaceRange(e.Range, e.Text)
		if !changed {
			continue
		}
		out = append(out, applied)
	}

	if len(out) == 0 {
		return nil
	}

	b.version++
	b.recordUndo(prev)
	return out
}

// Insert is shorthand for Apply with an empty range at p.
func (b *Buffer) Insert(p Pos, text string) (AppliedEdit, bool) {
	applied := b.Apply(TextEdit{Range: Range{Start: p, End: p}, Text: text})
	if len(applied) == 0 {
		return AppliedEdit{}, false
	}
	return applied[0], true
}

// Delete is shorthand for Apply with empty replacement text.
func (b *Buffer) Delete(r Range) (AppliedEdit, bool) {
	applied := b.Apply(TextEdit{Range: r})
	if len(applied) == 0 {
		return AppliedEdit{}, false
	}
	return applied[0], true
}

// replaceRange swaps r for text. The new text can merge with clusters on
// either side of the edit (a combining mark after a base letter, a ZWJ between
// two emoji, two regional indicators). When it does, the reported ranges widen
// to cover every cluster that changed, so observers never see columns that no
// longer exist.
func (b *Buffer) replaceRange(r Range, text string) (AppliedEdit, bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.LineLen))
	if r.IsEmpty() && text == "" {
		return AppliedEdit{}, false
	}
	deleted := textForLinesRange(b.lines, r)
	if deleted == text {
		return AppliedEdit{}, false
	}

	first, last := b.lines[r.Start.Row], b.lines[r.End.Row]
	head := grapheme.Join(first[:r.Start.GraphemeCol])
	tail := grapheme.Join(last[r.End.GraphemeCol:])

	ins := strings.Split(text, "\n")
	repl := make([][]string, len(ins))
	merged := false
	for i, part := range ins {
		want := grapheme.Count(part)
		if i == 0 {
			part = head + part
			want += r.Start.GraphemeCol
		}
		if i == len(ins)-1 {
			part += tail
			want += len(last) - r.End.GraphemeCol
		}
		repl[i] = grapheme.Split(part)
		merged = merged || len(repl[i]) != want
	}

	lastRow := r.Start.Row + len(repl) - 1
	applied := AppliedEdit{
		RangeBefore: r,
		RangeAfter: Range{Start: r.Start, End: Pos{
			Row:         lastRow,
			GraphemeCol: len(repl[len(repl)-1]) - len(last[r.End.GraphemeCol:]),
		}},
		InsertText:  text,
		DeletedText: deleted,
	}
	if merged {
		newLast := repl[len(repl)-1]
		pre := commonPrefix(first, repl[0], r.Start.GraphemeCol)
		floor := 0
		if len(repl) == 1 {
			floor = pre
		}
		suf := commonSuffix(last, newLast, len(last)-r.End.GraphemeCol, floor)

		applied.RangeBefore = Range{
			Start: Pos{Row: r.Start.Row, GraphemeCol: pre},
			End:   Pos{Row: r.End.Row, GraphemeCol: len(last) - suf},
		}
		applied.RangeAfter = Range{
			Start: applied.RangeBefore.Start,
			End:   Pos{Row: lastRow, GraphemeCol: len(newLast) - suf},
		}
		applied.DeletedText = textForLinesRange(b.lines, applied.RangeBefore)
	}

	lines := make([][]string, 0, len(b.lines)-(r.End.Row-r.Start.Row)+len(repl)-1)
	lines = append(lines, b.lines[:r.Start.Row]...)
	lines = append(lines, repl...)
	lines = append(lines, b.lines[r.End.Row+1:]...)
	b.lines = lines
	if merged {
		applied.InsertText = textForLinesRange(b.lines, applied.RangeAfter)
	}
	return applied, true
}

// commonPrefix counts leading clusters shared by a and b, up to limit.
func commonPrefix(a, b []string, limit int) int {
	n := 0
	for n < limit && n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// commonSuffix counts trailing clusters shared by a and b, up to limit,
// leaving at least floor clusters of b uncounted.
func commonSuffix(a, b []string, limit, floor int) int {
	n := 0
	for n < limit && n < len(a) && n < len(b)-floor && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}

func textForLinesRange(lines [][]string, r Range) string {
	if r.IsEmpty() {
		return ""
	}

	startRow := r.Start.Row
	endRow := r.End.Row
	startCol := r.Start.GraphemeCol
	endCol := r.End.GraphemeCol

	if startRow == endRow {
		return grapheme.Join(lines[startRow][startCol:endCol])
	}

	var sb strings.Builder
	for row := startRow; row <= endRow; row++ {
		if row > startRow {
			sb.WriteByte('\n')
		}
		partStart := 0
		partEnd := len(lines[row])
		if row == startRow {
			partStart = startCol
		}
		if row == endRow {
			partEnd = endCol
		}
		sb.WriteString(grapheme.Join(lines[row][partStart:partEnd]))
	}
	return sb.String()
}
