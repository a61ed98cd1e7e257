package buffer

import "testing"

func TestBuffer_New_SplitsLinesIntoGraphemes(t *testing.T) {
	b := New("ab\n\ne\u0301x", Options{})

	if got, want := b.LineCount(), 3; got != want {
		t.Fatalf("line count=%d, want %d", got, want)
	}
	lens := []int{2, 0, 2}
	for row, want := range lens {
		if got := b.LineLen(row); got != want {
			t.Fatalf("line %d len=%d, want %d", row, got, want)
		}
	}
	if got, want := b.LineText(2), "e\u0301x"; got != want {
		t.Fatalf("line text=%q, want %q", got, want)
	}
	if got, want := b.Text(), "ab\n\ne\u0301x"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_EmptyDocumentHasOneLine(t *testing.T) {
	b := New("", Options{})
	if got := b.LineCount(); got != 1 {
		t.Fatalf("line count=%d, want 1", got)
	}
	if got, want := b.End(), (Pos{}); got != want {
		t.Fatalf("end=%v, want %v", got, want)
	}
}

func TestBuffer_OutOfRangeLineQueries(t *testing.T) {
	b := New("abc", Options{})
	if got := b.LineLen(5); got != 0 {
		t.Fatalf("line len=%d, want 0", got)
	}
	if got := b.LineText(-1); got != "" {
		t.Fatalf("line text=%q, want empty", got)
	}
	if b.Valid(Pos{Row: 0, GraphemeCol: 4}) {
		t.Fatalf("column past EOL must be invalid")
	}
	if !b.Valid(Pos{Row: 0, GraphemeCol: 3}) {
		t.Fatalf("EOL must be valid")
	}
}

func TestBuffer_Slice(t *testing.T) {
	b := New("hello\nwide 世界\nend", Options{})

	cases := []struct {
		name string
		r    Range
		want string
	}{
		{name: "single-line", r: Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 0, GraphemeCol: 4}}, want: "ell"},
		{name: "multi-line", r: Range{Start: Pos{Row: 0, GraphemeCol: 3}, End: Pos{Row: 1, GraphemeCol: 6}}, want: "lo\nwide 世"},
		{name: "reversed", r: Range{Start: Pos{Row: 2, GraphemeCol: 1}, End: Pos{Row: 1, GraphemeCol: 5}}, want: "世界\ne"},
		{name: "clamped", r: Range{Start: Pos{Row: 2, GraphemeCol: 1}, End: Pos{Row: 9, GraphemeCol: 9}}, want: "nd"},
		{name: "empty", r: Range{Start: Pos{Row: 1, GraphemeCol: 2}, End: Pos{Row: 1, GraphemeCol: 2}}, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Slice(tc.r); got != tc.want {
				t.Fatalf("slice=%q, want %q", got, tc.want)
			}
		})
	}
}
