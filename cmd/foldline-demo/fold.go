package main

import (
	"strings"

	"github.com/iw2rmb/foldline/buffer"
	"github.com/iw2rmb/foldline/displaymap"
)

// blockRange returns the fold for the indentation block opened by row: from
// the end of row to the first following non-blank line indented no deeper,
// or to the end of the document. The closing line stays visible after the
// marker, so `func f() {` folds to `func f() {⋯}`.
func blockRange(src displaymap.Source, row int) (displaymap.FoldRange, bool) {
	text := src.LineText(row)
	if isBlank(text) {
		return displaymap.FoldRange{}, false
	}
	indent := indentWidth(text)

	end, inner := -1, false
	for r := row + 1; r < src.LineCount(); r++ {
		t := src.LineText(r)
		if isBlank(t) {
			continue
		}
		if indentWidth(t) <= indent {
			end = r
			break
		}
		inner = true
	}
	if !inner {
		return displaymap.FoldRange{}, false
	}

	start := buffer.Pos{Row: row, GraphemeCol: src.LineLen(row)}
	if end < 0 {
		last := src.LineCount() - 1
		return displaymap.FoldRange{Start: start, End: buffer.Pos{Row: last, GraphemeCol: src.LineLen(last)}}, true
	}
	return displaymap.FoldRange{Start: start, End: buffer.Pos{Row: end, GraphemeCol: indentWidth(src.LineText(end))}}, true
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

// indentWidth counts leading blanks. Tabs and spaces are one grapheme each,
// so the count doubles as a column.
func indentWidth(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}
