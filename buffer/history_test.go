package buffer

import "testing"

func TestBuffer_UndoRedo_Basic(t *testing.T) {
	b := New("", Options{})
	if b.CanUndo() {
		t.Fatalf("expected CanUndo=false")
	}
	if b.CanRedo() {
		t.Fatalf("expected CanRedo=false")
	}

	b.Insert(Pos{}, "a\nb")
	if !b.CanUndo() {
		t.Fatalf("expected CanUndo=true")
	}

	v := b.Version()
	applied, ok := b.Undo()
	if !ok {
		t.Fatalf("expected Undo=true")
	}
	if got, want := b.Text(), ""; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
	wantBefore := Range{End: Pos{Row: 1, GraphemeCol: 1}}
	if applied.RangeBefore != wantBefore {
		t.Fatalf("undo range before=%v, want %v", applied.RangeBefore, wantBefore)
	}
	if !b.CanRedo() {
		t.Fatalf("expected CanRedo=true")
	}

	if _, ok := b.Redo(); !ok {
		t.Fatalf("expected Redo=true")
	}
	if got, want := b.Text(), "a\nb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_UndoRedo_EmptyStacks_NoMutation(t *testing.T) {
	b := New("hi", Options{})
	v := b.Version()

	if _, ok := b.Undo(); ok {
		t.Fatalf("expected Undo=false")
	}
	if _, ok := b.Redo(); ok {
		t.Fatalf("expected Redo=false")
	}
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}

func TestBuffer_History_RespectsLimitAndClearsRedo(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	for _, s := range []string{"a", "b", "c"} {
		b.Insert(b.End(), s)
	}

	undos := 0
	for b.CanUndo() {
		b.Undo()
		undos++
	}
	if undos != 2 {
		t.Fatalf("undos=%d, want 2", undos)
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	b.Insert(b.End(), "z")
	if b.CanRedo() {
		t.Fatalf("new edit must clear redo")
	}
}

func TestBuffer_History_DisabledWithNegativeLimit(t *testing.T) {
	b := New("", Options{HistoryLimit: -1})
	b.Insert(Pos{}, "a")
	if b.CanUndo() {
		t.Fatalf("expected history disabled")
	}
}
