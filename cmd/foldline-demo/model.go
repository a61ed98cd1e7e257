package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/foldline/buffer"
	"github.com/iw2rmb/foldline/displaymap"
	"github.com/iw2rmb/foldline/internal/grapheme"
)

type config struct {
	Text string

	// Width is the wrap width in cells; 0 follows the terminal width.
	Width    int
	Mode     displaymap.WrapMode
	TabWidth int

	Logger *slog.Logger
}

// model drives a buffer through a display map. The cursor lives in buffer
// coordinates; vertical movement goes through display rows so it follows
// wrapping and folding.
type model struct {
	buf *buffer.Buffer
	dm  *displaymap.DisplayMap

	cursor buffer.Pos
	top    int

	height     int
	fixedWidth bool
	tabWidth   int

	keys  keyMap
	style style
	log   *slog.Logger

	status string
	err    error
}

func newModel(cfg config) model {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = grapheme.DefaultTabWidth
	}

	buf := buffer.New(cfg.Text, buffer.Options{})
	dm := displaymap.New(buf, displaymap.Options{
		WrapWidth: cfg.Width,
		Mode:      cfg.Mode,
		TabWidth:  cfg.TabWidth,
		Logger:    log,
	})
	return model{
		buf:        buf,
		dm:         dm,
		fixedWidth: cfg.Width > 0,
		tabWidth:   cfg.TabWidth,
		keys:       defaultKeyMap(),
		style:      defaultStyle(),
		log:        log,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		if !m.fixedWidth {
			m.dm.SetWrapWidth(msg.Width)
		}
	case tea.KeyMsg:
		m.status, m.err = "", nil
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
	}
	m.scrollToCursor()
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveLeft()
	case key.Matches(msg, m.keys.Right):
		m.moveRight()
	case key.Matches(msg, m.keys.Up):
		m.moveVertical(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveVertical(1)
	case key.Matches(msg, m.keys.Home):
		m.setCursor(buffer.Pos{Row: m.cursor.Row})
	case key.Matches(msg, m.keys.End):
		m.setCursor(buffer.Pos{Row: m.cursor.Row, GraphemeCol: m.buf.LineLen(m.cursor.Row)})
	case key.Matches(msg, m.keys.Backspace):
		m.deleteBackward()
	case key.Matches(msg, m.keys.Delete):
		m.deleteForward()
	case key.Matches(msg, m.keys.Enter):
		m.apply(m.buf.Insert(m.cursor, "\n"))
	case key.Matches(msg, m.keys.Tab):
		m.apply(m.buf.Insert(m.cursor, "\t"))
	case key.Matches(msg, m.keys.ToggleFold):
		m.toggleFold()
	case key.Matches(msg, m.keys.CycleWrap):
		mode := (m.dm.Wrap().Mode() + 1) % 3
		m.dm.SetMode(mode)
		m.status = "wrap: " + mode.String()
	case key.Matches(msg, m.keys.Undo):
		m.restore(m.buf.Undo())
	case key.Matches(msg, m.keys.Redo):
		m.restore(m.buf.Redo())
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		m.apply(m.buf.Insert(m.cursor, string(msg.Runes)))
	}
}

// apply forwards an effective buffer edit to the display map.
func (m *model) apply(e buffer.AppliedEdit, ok bool) {
	if !ok {
		return
	}
	if err := m.dm.NotifyEdit(displaymap.EditFromApplied(e)); err != nil {
		m.log.Error("notify edit", slog.Any("err", err))
		m.err = err
		m.dm.Reset()
	}
	m.setCursor(e.RangeAfter.End)
}

// restore resyncs after a whole-document replacement (undo/redo).
func (m *model) restore(_ buffer.AppliedEdit, ok bool) {
	if !ok {
		return
	}
	m.dm.Reset()
	m.setCursor(m.buf.Clamp(m.cursor))
}

// setCursor moves the cursor to p, snapping positions hidden by a fold to
// the fold start.
func (m *model) setCursor(p buffer.Pos) {
	p = m.buf.Clamp(p)
	if f, ok := m.dm.FoldAt(p); ok {
		p = f.Start
	}
	m.cursor = p
}

func (m *model) moveLeft() {
	p := m.cursor
	switch {
	case p.GraphemeCol > 0:
		p.GraphemeCol--
	case p.Row > 0:
		p = buffer.Pos{Row: p.Row - 1, GraphemeCol: m.buf.LineLen(p.Row - 1)}
	}
	m.setCursor(p)
}

func (m *model) moveRight() {
	p := m.cursor
	if f, ok := m.dm.FoldAt(p); ok {
		m.cursor = f.End
		return
	}
	switch {
	case p.GraphemeCol < m.buf.LineLen(p.Row):
		p.GraphemeCol++
	case p.Row < m.buf.LineCount()-1:
		p = buffer.Pos{Row: p.Row + 1}
	}
	m.setCursor(p)
}

// moveVertical moves by display rows, keeping the display column where the
// target row is wide enough.
func (m *model) moveVertical(delta int) {
	dp, err := m.dm.ToDisplay(m.cursor)
	if err != nil {
		m.err = err
		return
	}
	rows, err := m.dm.Rows()
	if err != nil {
		m.err = err
		return
	}
	target := dp.Row + delta
	if target < 0 || target >= rows {
		return
	}

	col := min(dp.Col, m.rowWidth(target))
	for ; col >= 0; col-- {
		p, err := m.dm.ToBuffer(displaymap.DisplayPos{Row: target, Col: col})
		if err != nil {
			continue
		}
		// The end of a non-final wrap segment belongs to the next row.
		if back, err := m.dm.ToDisplay(p); err == nil && back.Row == target {
			m.cursor = p
			return
		}
	}
}

func (m *model) deleteBackward() {
	p := m.cursor
	var r buffer.Range
	switch {
	case p.GraphemeCol > 0:
		r = buffer.Range{Start: buffer.Pos{Row: p.Row, GraphemeCol: p.GraphemeCol - 1}, End: p}
	case p.Row > 0:
		r = buffer.Range{Start: buffer.Pos{Row: p.Row - 1, GraphemeCol: m.buf.LineLen(p.Row - 1)}, End: p}
	default:
		return
	}
	m.apply(m.buf.Delete(r))
}

func (m *model) deleteForward() {
	p := m.cursor
	var r buffer.Range
	switch {
	case p.GraphemeCol < m.buf.LineLen(p.Row):
		r = buffer.Range{Start: p, End: buffer.Pos{Row: p.Row, GraphemeCol: p.GraphemeCol + 1}}
	case p.Row < m.buf.LineCount()-1:
		r = buffer.Range{Start: p, End: buffer.Pos{Row: p.Row + 1}}
	default:
		return
	}
	m.apply(m.buf.Delete(r))
}

func (m *model) toggleFold() {
	if f, err := m.dm.UnfoldAt(m.cursor); err == nil {
		m.status = "unfolded " + f.String()
		return
	}

	r, ok := blockRange(m.buf, m.cursor.Row)
	if !ok {
		m.status = "nothing to fold"
		return
	}
	if err := m.dm.Fold(r); err != nil {
		m.err = err
		return
	}
	m.cursor = r.Start
	m.status = "folded " + r.String()
}

func (m *model) scrollToCursor() {
	dp, err := m.dm.ToDisplay(m.cursor)
	if err != nil {
		return
	}
	h := m.viewHeight()
	if dp.Row < m.top {
		m.top = dp.Row
	}
	if dp.Row >= m.top+h {
		m.top = dp.Row - h + 1
	}
}

func (m model) viewHeight() int {
	return max(m.height-1, 1)
}

// rowWidth returns the number of display columns on row.
func (m model) rowWidth(row int) int {
	pieces, err := m.dm.Row(row)
	if err != nil {
		return 0
	}
	w := 0
	for _, p := range pieces {
		w += p.Width()
	}
	return w
}

func (m model) View() string {
	rows, err := m.dm.Rows()
	if err != nil {
		return m.style.Error.Render(err.Error())
	}
	cur, _ := m.dm.ToDisplay(m.cursor)

	h := m.viewHeight()
	if m.height == 0 {
		h = rows
	}

	var sb strings.Builder
	for row := m.top; row < min(rows, m.top+h); row++ {
		sb.WriteString(m.renderRow(row, cur))
		sb.WriteByte('\n')
	}
	sb.WriteString(m.statusLine(cur))
	return sb.String()
}

func (m model) renderRow(row int, cur displaymap.DisplayPos) string {
	pieces, err := m.dm.Row(row)
	if err != nil {
		return m.style.Error.Render(err.Error())
	}

	var sb strings.Builder
	col, cells := 0, 0
	for _, p := range pieces {
		switch p.Kind {
		case displaymap.PieceFold:
			st := m.style.Fold
			if cur.Row == row && cur.Col == col {
				st = m.style.Cursor
			}
			sb.WriteString(st.Render(foldMarker))
			col++
			cells++
		case displaymap.PieceText:
			text := grapheme.Slice(m.buf.LineText(p.Row), p.StartCol, p.EndCol)
			for _, g := range grapheme.Split(text) {
				w := grapheme.Width(g, cells, m.tabWidth)
				if g == "\t" {
					g = strings.Repeat(" ", w)
				}
				st := m.style.Text
				if cur.Row == row && cur.Col == col {
					st = m.style.Cursor
				}
				sb.WriteString(st.Render(g))
				col++
				cells += w
			}
		}
	}
	if cur.Row == row && cur.Col >= col {
		sb.WriteString(m.style.Cursor.Render(" "))
	}
	return sb.String()
}

func (m model) statusLine(cur displaymap.DisplayPos) string {
	info := fmt.Sprintf("buf %d:%d  %s  wrap %s/%d  folds %d",
		m.cursor.Row, m.cursor.GraphemeCol, cur, m.dm.Wrap().Mode(), m.dm.Wrap().Width(), len(m.dm.Folds()))
	if m.err != nil {
		return m.style.Status.Render(info+"  ") + m.style.Error.Render(m.err.Error())
	}
	if m.status != "" {
		info += "  " + m.status
	}
	return m.style.Status.Render(info + "  ctrl+f fold, ctrl+w wrap, ctrl+q quit")
}
