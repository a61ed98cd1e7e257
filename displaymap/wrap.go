package displaymap

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
)

// WrapOptions configures a WrapMap.
type WrapOptions struct {
	// Width is the wrap budget in terminal cells. Width <= 0 disables wrapping.
	Width int
	Mode  WrapMode
	// TabWidth defaults to 4.
	TabWidth int

	// OnLayout, when set, is called once for every buffer row laid out.
	OnLayout func(row int)
	Logger   *slog.Logger
}

// WrapMap soft-wraps buffer rows.
//
// Layouts live in an arena indexed by buffer row. A width change drops every
// layout and the next query rebuilds them; an edit lays out only the rows it
// replaced.
type WrapMap struct {
	src Source
	opt WrapOptions
	log *slog.Logger

	rows  [][]Segment
	index rowIndex
	valid bool
}

func NewWrapMap(src Source, opt WrapOptions) *WrapMap {
	if opt.TabWidth <= 0 {
		opt.TabWidth = 4
	}
	if opt.Width < 0 {
		opt.Width = 0
	}
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &WrapMap{src: src, opt: opt, log: log}
}

func (w *WrapMap) Width() int { return w.opt.Width }

func (w *WrapMap) Mode() WrapMode { return w.opt.Mode }

// SetWrapWidth invalidates every layout if width differs from the current one.
func (w *WrapMap) SetWrapWidth(width int) {
	if width < 0 {
		width = 0
	}
	if width == w.opt.Width {
		return
	}
	w.opt.Width = width
	w.valid = false
}

// SetMode invalidates every layout if mode differs from the current one.
func (w *WrapMap) SetMode(mode WrapMode) {
	if mode == w.opt.Mode {
		return
	}
	w.opt.Mode = mode
	w.valid = false
}

// Invalidate drops every layout. Use it when the source was replaced wholesale.
func (w *WrapMap) Invalidate() { w.valid = false }

func (w *WrapMap) params() layoutParams {
	return layoutParams{width: w.opt.Width, mode: w.opt.Mode, tabWidth: w.opt.TabWidth}
}

func (w *WrapMap) layout(row int) []Segment {
	if w.opt.OnLayout != nil {
		w.opt.OnLayout(row)
	}
	return layoutLine(w.src.LineText(row), w.params())
}

func (w *WrapMap) ensure() {
	if w.valid {
		return
	}
	n := w.src.LineCount()
	w.log.Debug("wrap relayout", slog.Int("rows", n), slog.Int("width", w.opt.Width), slog.String("mode", w.opt.Mode.String()))

	w.rows = make([][]Segment, n)
	counts := make([]int, n)
	for row := range n {
		w.rows[row] = w.layout(row)
		counts[row] = len(w.rows[row])
	}
	w.index.build(counts)
	w.valid = true
}

// Edit replaces the layouts of buffer rows old with newRows layouts read from
// the source, which must already reflect the edit. Only the new rows are laid
// out.
func (w *WrapMap) Edit(old RowRange, newRows int) error {
	if old.Start < 0 || old.End < old.Start || newRows < 0 {
		return fmt.Errorf("%w: edit rows [%d, %d) -> %d", ErrInvalidRange, old.Start, old.End, newRows)
	}
	if !w.valid {
		// A full relayout is already pending.
		return nil
	}
	if old.End > len(w.rows) {
		return outOfRange("edit rows [%d, %d) beyond %d rows", old.Start, old.End, len(w.rows))
	}
	if got, want := len(w.rows)-old.Len()+newRows, w.src.LineCount(); got != want {
		w.valid = false
		return fmt.Errorf("%w: edit leaves %d rows, source has %d", ErrInvalidRange, got, want)
	}

	fresh := make([][]Segment, newRows)
	for i := range fresh {
		fresh[i] = w.layout(old.Start + i)
	}

	if newRows == old.Len() {
		for i, segs := range fresh {
			w.rows[old.Start+i] = segs
			w.index.set(old.Start+i, len(segs))
		}
		return nil
	}

	// Row indices shift, so the Fenwick tree is rebuilt. That is one pass
	// over per-row counts; no row outside the edit is laid out again.
	w.rows = slices.Replace(w.rows, old.Start, old.End, fresh...)
	counts := make([]int, len(w.rows))
	for i, segs := range w.rows {
		counts[i] = len(segs)
	}
	w.index.build(counts)
	return nil
}

// EditLine relayouts a single row whose text is already known.
func (w *WrapMap) EditLine(row int, text string) error {
	w.ensure()
	if row < 0 || row >= len(w.rows) {
		return outOfRange("row %d of %d", row, len(w.rows))
	}
	if w.opt.OnLayout != nil {
		w.opt.OnLayout(row)
	}
	segs := layoutLine(text, w.params())
	w.rows[row] = segs
	w.index.set(row, len(segs))
	return nil
}

// BufferRows returns the number of buffer rows laid out.
func (w *WrapMap) BufferRows() int {
	w.ensure()
	return len(w.rows)
}

// Rows returns the total number of wrapped rows.
func (w *WrapMap) Rows() int {
	w.ensure()
	return w.index.total()
}

// RowCount returns how many wrapped rows buffer row occupies. It is at least 1.
func (w *WrapMap) RowCount(row int) (int, error) {
	w.ensure()
	if row < 0 || row >= len(w.rows) {
		return 0, outOfRange("row %d of %d", row, len(w.rows))
	}
	return len(w.rows[row]), nil
}

// FirstRow returns the wrapped row where buffer row starts.
func (w *WrapMap) FirstRow(row int) (int, error) {
	w.ensure()
	if row < 0 || row >= len(w.rows) {
		return 0, outOfRange("row %d of %d", row, len(w.rows))
	}
	return w.index.prefix(row), nil
}

// Segments returns a copy of the segments of buffer row.
func (w *WrapMap) Segments(row int) ([]Segment, error) {
	w.ensure()
	if row < 0 || row >= len(w.rows) {
		return nil, outOfRange("row %d of %d", row, len(w.rows))
	}
	return append([]Segment(nil), w.rows[row]...), nil
}

// Segment returns the buffer row and segment shown on wrapped row wrapRow.
func (w *WrapMap) Segment(wrapRow int) (int, Segment, error) {
	w.ensure()
	if wrapRow < 0 || wrapRow >= w.index.total() {
		return 0, Segment{}, outOfRange("wrap row %d of %d", wrapRow, w.index.total())
	}
	row := w.index.find(wrapRow)
	return row, w.rows[row][wrapRow-w.index.prefix(row)], nil
}

// ToWrap maps a buffer position to its wrapped position. A column on a
// segment boundary belongs to the later segment.
func (w *WrapMap) ToWrap(p BufferPos) (WrapPos, error) {
	w.ensure()
	if p.Row < 0 || p.Row >= len(w.rows) {
		return WrapPos{}, outOfRange("%v: row beyond %d rows", p, len(w.rows))
	}
	segs := w.rows[p.Row]
	if p.GraphemeCol < 0 || p.GraphemeCol > segs[len(segs)-1].EndCol {
		return WrapPos{}, outOfRange("%v: column beyond line length %d", p, segs[len(segs)-1].EndCol)
	}

	i := sort.Search(len(segs), func(i int) bool { return segs[i].StartCol > p.GraphemeCol }) - 1
	return WrapPos{
		Row: w.index.prefix(p.Row) + i,
		Col: p.GraphemeCol - segs[i].StartCol,
	}, nil
}

// FromWrap maps a wrapped position back to the buffer. Col may address the
// end of its segment.
func (w *WrapMap) FromWrap(p WrapPos) (BufferPos, error) {
	row, seg, err := w.Segment(p.Row)
	if err != nil {
		return BufferPos{}, err
	}
	if p.Col < 0 || p.Col > seg.Len() {
		return BufferPos{}, outOfRange("%v: column beyond segment length %d", p, seg.Len())
	}
	return BufferPos{Row: row, GraphemeCol: seg.StartCol + p.Col}, nil
}
