package displaymap

import (
	"fmt"
	"sort"

	"github.com/iw2rmb/foldline/buffer"
)

// markerWidth is the number of display columns a fold marker occupies.
const markerWidth = 1

// wrapSpace is the part of WrapMap a FoldMap reads.
type wrapSpace interface {
	ToWrap(BufferPos) (WrapPos, error)
	FromWrap(WrapPos) (BufferPos, error)
	Rows() int
}

type foldEntry struct {
	r FoldRange

	// Derived from the wrap layer; valid while the entry index < dirtyFrom.
	wStart       WrapPos
	wEnd         WrapPos
	hiddenBefore int // wrap rows hidden by earlier folds
	displayRow   int
	markerCol    int
}

func (f *foldEntry) hidden() int { return f.wEnd.Row - f.wStart.Row }

// FoldMap collapses fold ranges of a wrapped document.
//
// Folds are kept sorted by start and never overlap: Fold rejects any range
// intersecting an existing fold. Ranges that only touch (a.End == b.Start)
// are allowed and render as adjacent markers.
//
// A fold hides the wrapped rows between its start and its end: text after
// the fold end continues on the fold's start row, right after the marker.
type FoldMap struct {
	wrap  wrapSpace
	folds []foldEntry

	// dirtyFrom is the first entry whose derived fields are stale.
	dirtyFrom int
}

func NewFoldMap(wrap wrapSpace) *FoldMap {
	return &FoldMap{wrap: wrap}
}

// Len returns the number of folds.
func (m *FoldMap) Len() int { return len(m.folds) }

// Folds returns the folds in document order.
func (m *FoldMap) Folds() []FoldRange {
	out := make([]FoldRange, len(m.folds))
	for i, f := range m.folds {
		out[i] = f.r
	}
	return out
}

func (m *FoldMap) invalidate(from int) {
	if from < m.dirtyFrom {
		m.dirtyFrom = max(from, 0)
	}
}

// Fold inserts r. It fails with *OverlapError when r intersects an existing
// fold, ErrInvalidRange when r is empty or inverted, and ErrOutOfRange when
// either end lies outside the buffer.
func (m *FoldMap) Fold(r FoldRange) error {
	if buffer.ComparePos(r.Start, r.End) >= 0 {
		return fmt.Errorf("%w: fold %v is empty", ErrInvalidRange, r)
	}
	if _, err := m.wrap.ToWrap(r.Start); err != nil {
		return fmt.Errorf("fold %v start: %w", r, err)
	}
	if _, err := m.wrap.ToWrap(r.End); err != nil {
		return fmt.Errorf("fold %v end: %w", r, err)
	}

	i := m.searchStart(r.Start)
	if i > 0 && m.folds[i-1].r.overlaps(r) {
		return &OverlapError{Fold: r, Existing: m.folds[i-1].r}
	}
	if i < len(m.folds) && m.folds[i].r.overlaps(r) {
		return &OverlapError{Fold: r, Existing: m.folds[i].r}
	}

	m.folds = append(m.folds, foldEntry{})
	copy(m.folds[i+1:], m.folds[i:])
	m.folds[i] = foldEntry{r: r}
	m.invalidate(i)
	return nil
}

// Unfold removes the fold equal to r, or returns ErrNotFound.
func (m *FoldMap) Unfold(r FoldRange) error {
	i := m.searchStart(r.Start)
	if i >= len(m.folds) || m.folds[i].r != r {
		return fmt.Errorf("%w: %v", ErrNotFound, r)
	}
	m.remove(i)
	return nil
}

// UnfoldAt removes the fold containing p and returns it.
func (m *FoldMap) UnfoldAt(p BufferPos) (FoldRange, error) {
	i, ok := m.containing(p)
	if !ok {
		return FoldRange{}, fmt.Errorf("%w: no fold at %v", ErrNotFound, p)
	}
	r := m.folds[i].r
	m.remove(i)
	return r, nil
}

func (m *FoldMap) remove(i int) {
	m.folds = append(m.folds[:i], m.folds[i+1:]...)
	if m.dirtyFrom > len(m.folds) {
		m.dirtyFrom = len(m.folds)
	}
	m.invalidate(i)
}

// IsFolded reports whether p lies inside a fold.
func (m *FoldMap) IsFolded(p BufferPos) bool {
	_, ok := m.containing(p)
	return ok
}

// FoldAt returns the fold containing p.
func (m *FoldMap) FoldAt(p BufferPos) (FoldRange, bool) {
	i, ok := m.containing(p)
	if !ok {
		return FoldRange{}, false
	}
	return m.folds[i].r, true
}

// searchStart returns the index of the first fold starting at or after p.
func (m *FoldMap) searchStart(p BufferPos) int {
	return sort.Search(len(m.folds), func(i int) bool {
		return buffer.ComparePos(m.folds[i].r.Start, p) >= 0
	})
}

func (m *FoldMap) containing(p BufferPos) (int, bool) {
	i := sort.Search(len(m.folds), func(i int) bool {
		return buffer.ComparePos(m.folds[i].r.Start, p) > 0
	}) - 1
	if i < 0 || !m.folds[i].r.Contains(p) {
		return 0, false
	}
	return i, true
}

// refresh recomputes derived fields from dirtyFrom onward.
func (m *FoldMap) refresh() error {
	for i := m.dirtyFrom; i < len(m.folds); i++ {
		f := &m.folds[i]
		var err error
		if f.wStart, err = m.wrap.ToWrap(f.r.Start); err != nil {
			return fmt.Errorf("fold %v start: %w", f.r, err)
		}
		if f.wEnd, err = m.wrap.ToWrap(f.r.End); err != nil {
			return fmt.Errorf("fold %v end: %w", f.r, err)
		}

		f.hiddenBefore = 0
		f.markerCol = f.wStart.Col
		if i > 0 {
			prev := &m.folds[i-1]
			f.hiddenBefore = prev.hiddenBefore + prev.hidden()
			if prev.wEnd.Row == f.wStart.Row {
				f.markerCol = prev.markerCol + markerWidth + (f.wStart.Col - prev.wEnd.Col)
			}
		}
		f.displayRow = f.wStart.Row - f.hiddenBefore
		m.dirtyFrom = i + 1
	}
	m.dirtyFrom = len(m.folds)
	return nil
}

func (m *FoldMap) hiddenTotal() int {
	if len(m.folds) == 0 {
		return 0
	}
	last := &m.folds[len(m.folds)-1]
	return last.hiddenBefore + last.hidden()
}

// Rows returns the number of display rows.
func (m *FoldMap) Rows() (int, error) {
	if err := m.refresh(); err != nil {
		return 0, err
	}
	return m.wrap.Rows() - m.hiddenTotal(), nil
}

// ToDisplay maps a wrapped position to the display. Positions inside a fold
// clamp to the fold's marker.
func (m *FoldMap) ToDisplay(p WrapPos) (DisplayPos, error) {
	if _, err := m.wrap.FromWrap(p); err != nil {
		return DisplayPos{}, err
	}
	if err := m.refresh(); err != nil {
		return DisplayPos{}, err
	}

	i := sort.Search(len(m.folds), func(i int) bool {
		return compareWrap(m.folds[i].wStart, p) > 0
	}) - 1
	if i < 0 {
		return DisplayPos{Row: p.Row, Col: p.Col}, nil
	}

	f := &m.folds[i]
	if compareWrap(p, f.wEnd) < 0 {
		return DisplayPos{Row: f.displayRow, Col: f.markerCol}, nil
	}

	out := DisplayPos{Row: p.Row - f.hiddenBefore - f.hidden(), Col: p.Col}
	if p.Row == f.wEnd.Row {
		out.Col = f.markerCol + markerWidth + (p.Col - f.wEnd.Col)
	}
	return out, nil
}

// FromDisplay maps a display position back to the wrap layer. A column on a
// fold marker maps to the fold start.
func (m *FoldMap) FromDisplay(p DisplayPos) (WrapPos, error) {
	wp, err := m.fromDisplay(p)
	if err != nil {
		return WrapPos{}, err
	}
	if _, err := m.wrap.FromWrap(wp); err != nil {
		return WrapPos{}, outOfRange("%v: beyond end of display row", p)
	}
	return wp, nil
}

func (m *FoldMap) fromDisplay(p DisplayPos) (WrapPos, error) {
	rows, err := m.Rows()
	if err != nil {
		return WrapPos{}, err
	}
	if p.Row < 0 || p.Row >= rows || p.Col < 0 {
		return WrapPos{}, outOfRange("%v of %d display rows", p, rows)
	}

	j := m.lastFoldOnOrBefore(p.Row)
	if j < 0 {
		return WrapPos{Row: p.Row, Col: p.Col}, nil
	}
	if m.folds[j].displayRow < p.Row {
		f := &m.folds[j]
		return WrapPos{Row: p.Row + f.hiddenBefore + f.hidden(), Col: p.Col}, nil
	}

	j0 := m.firstFoldOnRow(j)
	for k := j0; k <= j; k++ {
		f := &m.folds[k]
		if p.Col < f.markerCol {
			if k == j0 {
				return WrapPos{Row: f.wStart.Row, Col: p.Col}, nil
			}
			prev := &m.folds[k-1]
			return WrapPos{Row: prev.wEnd.Row, Col: prev.wEnd.Col + p.Col - (prev.markerCol + markerWidth)}, nil
		}
		if p.Col < f.markerCol+markerWidth {
			return f.wStart, nil
		}
	}
	last := &m.folds[j]
	return WrapPos{Row: last.wEnd.Row, Col: last.wEnd.Col + p.Col - (last.markerCol + markerWidth)}, nil
}

// lastFoldOnOrBefore returns the last fold whose marker row is <= row, or -1.
// refresh must have run.
func (m *FoldMap) lastFoldOnOrBefore(row int) int {
	return sort.Search(len(m.folds), func(i int) bool {
		return m.folds[i].displayRow > row
	}) - 1
}

// firstFoldOnRow walks back from fold j to the first fold sharing its display
// row.
func (m *FoldMap) firstFoldOnRow(j int) int {
	for j > 0 && m.folds[j-1].displayRow == m.folds[j].displayRow {
		j--
	}
	return j
}

// applyEdit re-anchors folds after a buffer edit. Folds the edit emptied, or
// whose ends no longer satisfy valid, are removed and returned.
func (m *FoldMap) applyEdit(e Edit, valid func(BufferPos) bool) []FoldRange {
	k := sort.Search(len(m.folds), func(i int) bool {
		return m.folds[i].r.End.Row >= e.Old.Start.Row
	})
	if k == len(m.folds) {
		return nil
	}

	var dropped []FoldRange
	kept := m.folds[:k]
	for _, f := range m.folds[k:] {
		r := FoldRange{
			Start: translatePos(f.r.Start, e, true),
			End:   translatePos(f.r.End, e, false),
		}
		if buffer.ComparePos(r.Start, r.End) >= 0 || !valid(r.Start) || !valid(r.End) {
			dropped = append(dropped, f.r)
			continue
		}
		kept = append(kept, foldEntry{r: r})
	}
	m.folds = kept
	m.dirtyFrom = min(m.dirtyFrom, len(m.folds))
	m.invalidate(k)
	return dropped
}

// retain keeps the folds whose ends satisfy valid and returns the others.
func (m *FoldMap) retain(valid func(BufferPos) bool) []FoldRange {
	var dropped []FoldRange
	kept := m.folds[:0]
	for _, f := range m.folds {
		if !valid(f.r.Start) || !valid(f.r.End) {
			dropped = append(dropped, f.r)
			continue
		}
		kept = append(kept, f)
	}
	m.folds = kept
	m.invalidate(0)
	return dropped
}

// translatePos moves p across edit e. Text inserted exactly at a fold start
// lands inside the fold's start edge (the fold moves right); text inserted
// exactly at a fold end stays outside. Positions inside the replaced range
// snap to the edge of the replacement that keeps the fold smallest.
func translatePos(p BufferPos, e Edit, isStart bool) BufferPos {
	c := buffer.ComparePos(p, e.Old.Start)
	if c < 0 {
		return p
	}
	if c == 0 && e.Old.IsEmpty() && !isStart {
		return p
	}
	if buffer.ComparePos(p, e.Old.End) >= 0 {
		if p.Row == e.Old.End.Row {
			return BufferPos{
				Row:         e.New.End.Row,
				GraphemeCol: e.New.End.GraphemeCol + p.GraphemeCol - e.Old.End.GraphemeCol,
			}
		}
		return BufferPos{Row: p.Row + e.New.End.Row - e.Old.End.Row, GraphemeCol: p.GraphemeCol}
	}
	if isStart {
		return e.New.End
	}
	return e.New.Start
}
