package buffer

type historyState struct {
	undo []string
	redo []string
}

func (b *Buffer) recordUndo(prev string) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	b.hist.undo = append(b.hist.undo, prev)
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// Undo restores the previous document text. The returned edit spans the whole
// document so observers can rebuild derived state.
func (b *Buffer) Undo() (AppliedEdit, bool) {
	if len(b.hist.undo) == 0 {
		return AppliedEdit{}, false
	}

	cur := b.Text()
	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, cur)

	b.lines = splitLines(prev)
	b.version++
	applied, _ := wholeDocumentEdit(cur, prev)
	return applied, true
}

func (b *Buffer) Redo() (AppliedEdit, bool) {
	if len(b.hist.redo) == 0 {
		return AppliedEdit{}, false
	}

	cur := b.Text()
	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]

	limit := b.opt.HistoryLimit
	if limit > 0 {
		b.hist.undo = append(b.hist.undo, cur)
		if len(b.hist.undo) > limit {
			b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
		}
	}

	b.lines = splitLines(next)
	b.version++
	applied, _ := wholeDocumentEdit(cur, next)
	return applied, true
}
