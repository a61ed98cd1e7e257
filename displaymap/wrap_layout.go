package displaymap

import (
	"github.com/iw2rmb/foldline/internal/grapheme"
)

// Segment is one wrapped row of a buffer line: grapheme columns
// [StartCol, EndCol) occupying Cells terminal cells. The last segment of a
// line also owns the end-of-line position EndCol.
type Segment struct {
	StartCol int
	EndCol   int
	Cells    int
}

func (s Segment) Len() int { return s.EndCol - s.StartCol }

type wrapUnit struct {
	width int

	isWhitespace bool
	isPunct      bool
}

type layoutParams struct {
	width    int
	mode     WrapMode
	tabWidth int
}

// layoutLine splits text into wrap segments. Every line yields at least one
// segment; an empty line yields [0, 0).
func layoutLine(text string, p layoutParams) []Segment {
	units := wrapUnitsFromText(text, p.tabWidth)
	if len(units) == 0 {
		return []Segment{{}}
	}

	if p.width <= 0 || p.mode == WrapNone {
		return []Segment{segmentFromUnitRange(units, 0, len(units))}
	}

	segments := make([]Segment, 0, 1+len(units)/p.width)
	for start := 0; start < len(units); {
		used := 0
		overflow := start
		for overflow < len(units) {
			w := units[overflow].width
			if used > 0 && used+w > p.width {
				break
			}
			used += w
			overflow++
		}

		end := overflow
		if p.mode == WrapWord && overflow < len(units) {
			if br, ok := findWordWrapBreak(units, start, overflow); ok {
				end = br
			} else {
				end = adjustBreakForLeadingPunctuation(units, start, overflow)
			}
		}
		if end <= start {
			end = min(start+1, len(units))
		}

		segments = append(segments, segmentFromUnitRange(units, start, end))
		start = end
	}

	return segments
}

// wrapUnitsFromText measures every grapheme of text. Widths are computed
// against the unwrapped line so tab stops do not move when the wrap width
// changes. Zero-width graphemes still take one cell.
func wrapUnitsFromText(text string, tabWidth int) []wrapUnit {
	clusters := grapheme.Split(text)
	if len(clusters) == 0 {
		return nil
	}

	units := make([]wrapUnit, 0, len(clusters))
	visualCol := 0
	for _, gr := range clusters {
		w := max(grapheme.Width(gr, visualCol, tabWidth), 1)
		isWhitespace := grapheme.IsSpace(gr)
		units = append(units, wrapUnit{
			width:        w,
			isWhitespace: isWhitespace,
			isPunct:      !isWhitespace && grapheme.IsPunct(gr),
		})
		visualCol += w
	}
	return units
}

func segmentFromUnitRange(units []wrapUnit, start, end int) Segment {
	cells := 0
	for _, u := range units[start:end] {
		cells += u.width
	}
	return Segment{StartCol: start, EndCol: end, Cells: cells}
}

// findWordWrapBreak returns the break after the last whitespace run in
// [start, overflow).
func findWordWrapBreak(units []wrapUnit, start, overflow int) (int, bool) {
	if start < 0 {
		start = 0
	}
	if overflow > len(units) {
		overflow = len(units)
	}
	if start >= overflow {
		return 0, false
	}

	lastBreak := -1
	i := start
	for i < overflow {
		if !units[i].isWhitespace {
			i++
			continue
		}
		j := i + 1
		for j < overflow && units[j].isWhitespace {
			j++
		}
		lastBreak = j
		i = j
	}

	if lastBreak <= start {
		return 0, false
	}
	return lastBreak, true
}

// adjustBreakForLeadingPunctuation pulls a grapheme break back by one when
// the next row would otherwise start with punctuation.
func adjustBreakForLeadingPunctuation(units []wrapUnit, start, overflow int) int {
	if overflow >= len(units) || !units[overflow].isPunct {
		return overflow
	}
	if overflow-1 > start {
		return overflow - 1
	}
	return overflow
}
