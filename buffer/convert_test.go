package buffer

import "testing"

// Row 0: "a" plus an emoji: one cluster, two UTF-16 units, four bytes.
// Row 1: "e\u0301x" (the accented e is one cluster of two runes).
const convertDoc = "a\U0001F600\ne\u0301x"

func TestBuffer_PointOffsetRoundTrip(t *testing.T) {
	b := New(convertDoc, Options{})

	cases := []struct {
		p   Pos
		off int
	}{
		{p: Pos{Row: 0, GraphemeCol: 0}, off: 0},
		{p: Pos{Row: 0, GraphemeCol: 2}, off: 2},
		{p: Pos{Row: 1, GraphemeCol: 0}, off: 3},
		{p: Pos{Row: 1, GraphemeCol: 2}, off: 5},
	}
	for _, tc := range cases {
		off, ok := b.PointToOffset(tc.p)
		if !ok || off != tc.off {
			t.Fatalf("PointToOffset(%v)=(%d,%v), want (%d,true)", tc.p, off, ok, tc.off)
		}
		p, ok := b.OffsetToPoint(tc.off)
		if !ok || p != tc.p {
			t.Fatalf("OffsetToPoint(%d)=(%v,%v), want (%v,true)", tc.off, p, ok, tc.p)
		}
	}
}

func TestBuffer_OffsetUnits(t *testing.T) {
	b := New(convertDoc, Options{})
	end := Pos{Row: 1, GraphemeCol: 2}

	cases := []struct {
		u    Unit
		want int
	}{
		{u: UnitGrapheme, want: 5},
		{u: UnitRune, want: 6},
		{u: UnitUTF16, want: 7},
		{u: UnitByte, want: 10},
	}
	for _, tc := range cases {
		t.Run(tc.u.String(), func(t *testing.T) {
			got, ok := b.OffsetFromPos(end, tc.u, ConvertPolicy{})
			if !ok || got != tc.want {
				t.Fatalf("offset=(%d,%v), want (%d,true)", got, ok, tc.want)
			}
			p, ok := b.PosFromOffset(tc.want, tc.u, ConvertPolicy{})
			if !ok || p != end {
				t.Fatalf("pos=(%v,%v), want (%v,true)", p, ok, end)
			}
		})
	}
}

func TestBuffer_OffsetsInsideClusterAreRejected(t *testing.T) {
	b := New(convertDoc, Options{})

	if _, ok := b.PosFromUTF16Offset(2, ConvertPolicy{}); ok {
		t.Fatalf("offset between surrogate halves must be rejected")
	}
	if _, ok := b.PosFromByteOffset(3, ConvertPolicy{}); ok {
		t.Fatalf("offset inside a multi-byte cluster must be rejected")
	}
	if _, ok := b.PosFromRuneOffset(4, ConvertPolicy{}); ok {
		t.Fatalf("offset between base and combining mark must be rejected")
	}
	if _, ok := b.PosFromOffset(0, Unit(99), ConvertPolicy{}); ok {
		t.Fatalf("unknown unit must be rejected")
	}
}

func TestBuffer_ConvertPolicy_Clamp(t *testing.T) {
	b := New(convertDoc, Options{})

	if _, ok := b.PosFromUTF16Offset(100, ConvertPolicy{}); ok {
		t.Fatalf("expected error mode to reject out-of-range offset")
	}
	p, ok := b.PosFromUTF16Offset(100, ConvertPolicy{ClampMode: OffsetClamp})
	if !ok || p != (Pos{Row: 1, GraphemeCol: 2}) {
		t.Fatalf("clamped pos=(%v,%v), want end", p, ok)
	}
	p, ok = b.PosFromUTF16Offset(-3, ConvertPolicy{ClampMode: OffsetClamp})
	if !ok || p != (Pos{}) {
		t.Fatalf("clamped pos=(%v,%v), want origin", p, ok)
	}

	if _, ok := b.UTF16OffsetFromPos(Pos{Row: 0, GraphemeCol: 9}, ConvertPolicy{}); ok {
		t.Fatalf("expected error mode to reject invalid pos")
	}
	off, ok := b.UTF16OffsetFromPos(Pos{Row: 0, GraphemeCol: 9}, ConvertPolicy{ClampMode: OffsetClamp})
	if !ok || off != 3 {
		t.Fatalf("clamped offset=(%d,%v), want (3,true)", off, ok)
	}
}

func TestBuffer_ColumnConversion(t *testing.T) {
	b := New(convertDoc, Options{})

	col, ok := b.ColumnIn(Pos{Row: 0, GraphemeCol: 2}, UnitUTF16)
	if !ok || col != 3 {
		t.Fatalf("ColumnIn=(%d,%v), want (3,true)", col, ok)
	}
	col, ok = b.ColumnIn(Pos{Row: 1, GraphemeCol: 1}, UnitRune)
	if !ok || col != 2 {
		t.Fatalf("ColumnIn=(%d,%v), want (2,true)", col, ok)
	}

	p, ok := b.ColumnFrom(0, 1, UnitUTF16)
	if !ok || p != (Pos{Row: 0, GraphemeCol: 1}) {
		t.Fatalf("ColumnFrom=(%v,%v), want (0:1,true)", p, ok)
	}
	if _, ok := b.ColumnFrom(0, 2, UnitUTF16); ok {
		t.Fatalf("column inside surrogate pair must be rejected")
	}
	if _, ok := b.ColumnFrom(0, 4, UnitUTF16); ok {
		t.Fatalf("column past EOL must be rejected")
	}
	if _, ok := b.ColumnFrom(5, 0, UnitUTF16); ok {
		t.Fatalf("row out of range must be rejected")
	}
}
