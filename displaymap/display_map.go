package displaymap

import (
	"fmt"
	"log/slog"
)

// Options configures a DisplayMap.
type Options struct {
	// WrapWidth is the wrap budget in terminal cells; <= 0 disables wrapping.
	WrapWidth int
	Mode      WrapMode
	TabWidth  int

	// OnLayout is called once per buffer row the wrap layer lays out.
	OnLayout func(row int)
	Logger   *slog.Logger
}

// DisplayMap composes a WrapMap and a FoldMap over a Source. It owns both
// layers; nothing else mutates them.
type DisplayMap struct {
	src   Source
	wrap  *WrapMap
	folds *FoldMap
	log   *slog.Logger
}

func New(src Source, opt Options) *DisplayMap {
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	wrap := NewWrapMap(src, WrapOptions{
		Width:    opt.WrapWidth,
		Mode:     opt.Mode,
		TabWidth: opt.TabWidth,
		OnLayout: opt.OnLayout,
		Logger:   log,
	})
	return &DisplayMap{
		src:   src,
		wrap:  wrap,
		folds: NewFoldMap(wrap),
		log:   log,
	}
}

// Wrap exposes the wrap layer for read-only queries.
func (d *DisplayMap) Wrap() *WrapMap { return d.wrap }

func (d *DisplayMap) SetWrapWidth(width int) {
	if max(width, 0) == d.wrap.Width() {
		return
	}
	d.wrap.SetWrapWidth(width)
	d.folds.invalidate(0)
}

func (d *DisplayMap) SetMode(mode WrapMode) {
	if mode == d.wrap.Mode() {
		return
	}
	d.wrap.SetMode(mode)
	d.folds.invalidate(0)
}

// ToDisplay maps a buffer position to the display. Positions inside a fold
// map to the fold marker.
func (d *DisplayMap) ToDisplay(p BufferPos) (DisplayPos, error) {
	wp, err := d.wrap.ToWrap(p)
	if err != nil {
		return DisplayPos{}, err
	}
	return d.folds.ToDisplay(wp)
}

// ToBuffer maps a display position to the buffer. A marker column maps to
// the fold start.
func (d *DisplayMap) ToBuffer(p DisplayPos) (BufferPos, error) {
	wp, err := d.folds.FromDisplay(p)
	if err != nil {
		return BufferPos{}, err
	}
	return d.wrap.FromWrap(wp)
}

// NotifyEdit must be called after every mutation of the source. The wrap
// layer is updated before folds are re-anchored because fold caches are
// expressed in wrapped rows. An edit that disagrees with the source resets
// both layers and returns ErrInvalidRange.
func (d *DisplayMap) NotifyEdit(e Edit) error {
	if err := e.validate(); err != nil {
		return err
	}
	if err := d.wrap.Edit(e.oldRows(), e.newRowCount()); err != nil {
		d.Reset()
		return fmt.Errorf("notify edit %v: %w", e.Old, err)
	}
	for _, r := range d.folds.applyEdit(e, d.inSource) {
		d.log.Debug("fold removed by edit", slog.String("fold", r.String()))
	}
	return nil
}

// Reset drops all derived state after the source was replaced wholesale.
// Folds that no longer fit the source are removed. Layout happens on the
// next query.
func (d *DisplayMap) Reset() {
	d.wrap.Invalidate()
	for _, r := range d.folds.retain(d.inSource) {
		d.log.Debug("fold removed by reset", slog.String("fold", r.String()))
	}
	d.folds.invalidate(0)
}

// inSource reports whether p addresses a grapheme boundary of the source.
func (d *DisplayMap) inSource(p BufferPos) bool {
	if p.Row < 0 || p.Row >= d.src.LineCount() {
		return false
	}
	return p.GraphemeCol >= 0 && p.GraphemeCol <= d.src.LineLen(p.Row)
}

func (d *DisplayMap) Fold(r FoldRange) error { return d.folds.Fold(r) }

func (d *DisplayMap) Unfold(r FoldRange) error { return d.folds.Unfold(r) }

// ToggleFold removes the fold containing r.Start, or folds r when there is none.
func (d *DisplayMap) ToggleFold(r FoldRange) error {
	if _, ok := d.folds.FoldAt(r.Start); ok {
		_, err := d.folds.UnfoldAt(r.Start)
		return err
	}
	return d.folds.Fold(r)
}

func (d *DisplayMap) UnfoldAt(p BufferPos) (FoldRange, error) { return d.folds.UnfoldAt(p) }

func (d *DisplayMap) IsFolded(p BufferPos) bool { return d.folds.IsFolded(p) }

func (d *DisplayMap) FoldAt(p BufferPos) (FoldRange, bool) { return d.folds.FoldAt(p) }

func (d *DisplayMap) Folds() []FoldRange { return d.folds.Folds() }

// WrapRowCount returns how many wrapped rows buffer row occupies.
func (d *DisplayMap) WrapRowCount(row int) (int, error) { return d.wrap.RowCount(row) }

// Rows returns the number of display rows.
func (d *DisplayMap) Rows() (int, error) { return d.folds.Rows() }
