package buffer

import (
	"unicode/utf16"
	"unicode/utf8"
)

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

type NewlineMode uint8

const (
	NewlineAsSingleRune NewlineMode = iota
)

type ConvertPolicy struct {
	ClampMode   OffsetClampMode
	NewlineMode NewlineMode
}

// Unit names the column unit an offset is counted in.
type Unit uint8

const (
	UnitGrapheme Unit = iota
	UnitRune
	UnitByte
	UnitUTF16
)

func (u Unit) String() string {
	switch u {
	case UnitGrapheme:
		return "grapheme"
	case UnitRune:
		return "rune"
	case UnitByte:
		return "byte"
	case UnitUTF16:
		return "utf16"
	default:
		return "unknown"
	}
}

// clusterLen returns the length of one grapheme cluster in u.
func (u Unit) clusterLen(cluster string) int {
	switch u {
	case UnitGrapheme:
		return 1
	case UnitRune:
		return utf8.RuneCountInString(cluster)
	case UnitByte:
		return len(cluster)
	case UnitUTF16:
		n := 0
		for _, r := range cluster {
			n += utf16.RuneLen(r)
		}
		return n
	default:
		return 0
	}
}

func validUnit(u Unit) bool { return u <= UnitUTF16 }

// PointToOffset converts p into a document offset counted in grapheme
// clusters, with each line break counting as one.
func (b *Buffer) PointToOffset(p Pos) (int, bool) {
	return b.OffsetFromPos(p, UnitGrapheme, ConvertPolicy{})
}

// OffsetToPoint is the inverse of PointToOffset.
func (b *Buffer) OffsetToPoint(off int) (Pos, bool) {
	return b.PosFromOffset(off, UnitGrapheme, ConvertPolicy{})
}

// PosFromOffset converts an offset counted in u into a position. Offsets that
// land inside a grapheme cluster are rejected regardless of p.ClampMode.
func (b *Buffer) PosFromOffset(off int, u Unit, p ConvertPolicy) (Pos, bool) {
	if !validNewlineMode(p.NewlineMode) || !validUnit(u) {
		return Pos{}, false
	}

	off, ok := clampOffset(off, b.docLen(u), p.ClampMode)
	if !ok {
		return Pos{}, false
	}
	return b.offsetToPos(off, u)
}

// OffsetFromPos converts pos into an offset counted in u.
func (b *Buffer) OffsetFromPos(pos Pos, u Unit, p ConvertPolicy) (int, bool) {
	if !validNewlineMode(p.NewlineMode) || !validUnit(u) {
		return 0, false
	}

	pos, ok := b.normalizePosForMode(pos, p.ClampMode)
	if !ok {
		return 0, false
	}
	return b.posToOffset(pos, u), true
}

func (b *Buffer) PosFromByteOffset(off int, p ConvertPolicy) (Pos, bool) {
	return b.PosFromOffset(off, UnitByte, p)
}

func (b *Buffer) ByteOffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	return b.OffsetFromPos(pos, UnitByte, p)
}

func (b *Buffer) PosFromRuneOffset(off int, p ConvertPolicy) (Pos, bool) {
	return b.PosFromOffset(off, UnitRune, p)
}

func (b *Buffer) RuneOffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	return b.OffsetFromPos(pos, UnitRune, p)
}

func (b *Buffer) PosFromUTF16Offset(off int, p ConvertPolicy) (Pos, bool) {
	return b.PosFromOffset(off, UnitUTF16, p)
}

func (b *Buffer) UTF16OffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	return b.OffsetFromPos(pos, UnitUTF16, p)
}

// ColumnIn converts a grapheme column on row into a column counted in u.
func (b *Buffer) ColumnIn(pos Pos, u Unit) (int, bool) {
	if !validUnit(u) || !b.Valid(pos) {
		return 0, false
	}
	col := 0
	for _, cluster := range b.lines[pos.Row][:pos.GraphemeCol] {
		col += u.clusterLen(cluster)
	}
	return col, true
}

// ColumnFrom converts a column on row counted in u into a grapheme column.
// Columns inside a cluster are rejected.
func (b *Buffer) ColumnFrom(row, col int, u Unit) (Pos, bool) {
	if !validUnit(u) || row < 0 || row >= len(b.lines) || col < 0 {
		return Pos{}, false
	}
	cur := 0
	for i, cluster := range b.lines[row] {
		if cur == col {
			return Pos{Row: row, GraphemeCol: i}, true
		}
		cur += u.clusterLen(cluster)
		if cur > col {
			return Pos{}, false
		}
	}
	if cur == col {
		return Pos{Row: row, GraphemeCol: len(b.lines[row])}, true
	}
	return Pos{}, false
}

func validNewlineMode(mode NewlineMode) bool {
	return mode == NewlineAsSingleRune
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		if off < 0 {
			return 0, true
		}
		if off > max {
			return max, true
		}
		return off, true
	default:
		return 0, false
	}
}

func (b *Buffer) normalizePosForMode(pos Pos, mode OffsetClampMode) (Pos, bool) {
	switch mode {
	case OffsetError:
		if !b.Valid(pos) {
			return Pos{}, false
		}
		return pos, true
	case OffsetClamp:
		return b.Clamp(pos), true
	default:
		return Pos{}, false
	}
}

func (b *Buffer) docLen(u Unit) int {
	total := 0
	for row, line := range b.lines {
		for _, cluster := range line {
			total += u.clusterLen(cluster)
		}
		if row < len(b.lines)-1 {
			total++
		}
	}
	return total
}

func (b *Buffer) offsetToPos(off int, u Unit) (Pos, bool) {
	cur := 0

	for row, line := range b.lines {
		if off == cur {
			return Pos{Row: row, GraphemeCol: 0}, true
		}

		for col, cluster := range line {
			next := cur + u.clusterLen(cluster)
			if off > cur && off < next {
				return Pos{}, false
			}
			cur = next
			if off == cur {
				return Pos{Row: row, GraphemeCol: col + 1}, true
			}
		}

		if row < len(b.lines)-1 {
			cur++
		}
	}

	return Pos{}, false
}

func (b *Buffer) posToOffset(pos Pos, u Unit) int {
	off := 0

	for row := 0; row < pos.Row; row++ {
		for _, cluster := range b.lines[row] {
			off += u.clusterLen(cluster)
		}
		off++
	}

	for col := 0; col < pos.GraphemeCol; col++ {
		off += u.clusterLen(b.lines[pos.Row][col])
	}

	return off
}
