package buffer

import (
	"strings"

	"github.com/iw2rmb/foldline/internal/grapheme"
)

type Options struct {
	HistoryLimit int // default: 1000
}

// Buffer is the pure document state. Each line is stored as its grapheme
// clusters so column queries are O(1).
type Buffer struct {
	lines   [][]string
	version uint64

	opt  Options
	hist historyState
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

// Version increases by one for every effective mutation.
func (b *Buffer) Version() uint64 { return b.version }

// LineCount returns the number of logical lines. An empty document has one.
func (b *Buffer) LineCount() int { return len(b.lines) }

// LineLen returns the grapheme length of row, or 0 when row is out of range.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// LineText returns the text of row without its line break.
func (b *Buffer) LineText(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

// End returns the position after the last grapheme of the document.
func (b *Buffer) End() Pos {
	last := len(b.lines) - 1
	return Pos{Row: last, GraphemeCol: len(b.lines[last])}
}

// Clamp clamps p into the document.
func (b *Buffer) Clamp(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.LineLen)
}

// Valid reports whether p addresses a grapheme boundary inside the document.
func (b *Buffer) Valid(p Pos) bool {
	return b.Clamp(p) == p
}

// Slice returns the text in r. The range is clamped and normalized first.
func (b *Buffer) Slice(r Range) string {
	return textForLinesRange(b.lines, NormalizeRange(ClampRange(r, len(b.lines), b.LineLen)))
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
