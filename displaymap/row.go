package displaymap

// PieceKind distinguishes the parts of a display row.
type PieceKind int

const (
	PieceText PieceKind = iota
	PieceFold
)

// Piece is a run of a display row. Text pieces cover buffer columns
// [StartCol, EndCol) of Row; fold pieces are the marker of Fold.
type Piece struct {
	Kind       PieceKind
	DisplayCol int

	Row      int
	StartCol int
	EndCol   int

	Fold FoldRange
}

// Width returns the display columns the piece occupies.
func (p Piece) Width() int {
	if p.Kind == PieceFold {
		return markerWidth
	}
	return p.EndCol - p.StartCol
}

// Row returns the pieces making up display row, left to right. Empty text
// runs are omitted, so an empty buffer line yields no pieces.
func (d *DisplayMap) Row(row int) ([]Piece, error) {
	first, err := d.ToBuffer(DisplayPos{Row: row})
	if err != nil {
		return nil, err
	}
	fm := d.folds
	wp, err := d.wrap.ToWrap(first)
	if err != nil {
		return nil, err
	}
	bufRow, seg, err := d.wrap.Segment(wp.Row)
	if err != nil {
		return nil, err
	}

	var pieces []Piece
	col := 0
	addText := func(r, start, end int) {
		if end <= start {
			return
		}
		pieces = append(pieces, Piece{Kind: PieceText, DisplayCol: col, Row: r, StartCol: start, EndCol: end})
		col += end - start
	}

	j := fm.lastFoldOnOrBefore(row)
	if j < 0 || fm.folds[j].displayRow < row {
		addText(bufRow, seg.StartCol, seg.EndCol)
		return pieces, nil
	}

	j0 := fm.firstFoldOnRow(j)
	cur := BufferPos{Row: bufRow, GraphemeCol: seg.StartCol}
	for k := j0; k <= j; k++ {
		f := fm.folds[k].r
		addText(cur.Row, cur.GraphemeCol, f.Start.GraphemeCol)
		pieces = append(pieces, Piece{Kind: PieceFold, DisplayCol: col, Row: f.Start.Row, StartCol: f.Start.GraphemeCol, EndCol: f.Start.GraphemeCol, Fold: f})
		col += markerWidth
		cur = f.End
	}

	tailRow, tailSeg, err := d.wrap.Segment(fm.folds[j].wEnd.Row)
	if err != nil {
		return nil, err
	}
	addText(tailRow, cur.GraphemeCol, tailSeg.EndCol)
	return pieces, nil
}
