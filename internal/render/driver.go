package render

import (
	"fmt"

	"github.com/verte-zerg/typedrill/internal/layout"
	"github.com/verte-zerg/typedrill/internal/model"
	"github.com/verte-zerg/typedrill/internal/session"
)

// missedSpace is shown in place of a separator that was mistyped.
const missedSpace = '•'

// StatusRows is the number of rows reserved below the text: one blank row
// and two status lines.
const StatusRows = 3

// Surface is a cell-addressable display.
type Surface interface {
	SetCell(row, col int, ch rune, attr Attr)
	ShowCursor(row, col int)
	HideCursor()
}

// View is the session state the driver reads.
type View interface {
	Len() int
	TypedLength() int
	State(i int) session.CharState
	Rune(i int) rune
	IsComplete() bool
}

// Cell is one painted character.
type Cell struct {
	Row   int
	Col   int
	Ch    rune
	Style Style
}

// CellFor computes how index i of v is painted.
func CellFor(v View, spec layout.Spec, i int) Cell {
	row, col := spec.Cell(i)
	cell := Cell{Row: row, Col: col, Ch: v.Rune(i), Style: StyleUntyped}
	typed := v.TypedLength()
	switch {
	case i < typed:
		switch v.State(i) {
		case session.Correct:
			cell.Style = StyleCorrect
		case session.Incorrect:
			cell.Style = StyleIncorrect
			if cell.Ch == ' ' {
				cell.Ch = missedSpace
			}
		}
	case i == typed && !v.IsComplete():
		cell.Style = StyleCursor
	}
	return cell
}

// Driver paints a View onto a Surface through a layout and style table.
type Driver struct {
	spec    layout.Spec
	styles  StyleTable
	surface Surface

	// cursor is the index painted with StyleCursor by the last paint, or -1.
	cursor      int
	statusWidth int
	statusLines int
}

// NewDriver returns a driver for spec drawing onto surface.
func NewDriver(spec layout.Spec, styles StyleTable, surface Surface) *Driver {
	return &Driver{spec: spec, styles: styles, surface: surface, cursor: -1}
}

// Spec returns the layout the driver paints with.
func (d *Driver) Spec() layout.Spec {
	return d.spec
}

// Paint repaints every index of v and moves the cursor.
func (d *Driver) Paint(v View) {
	for i := 0; i < v.Len(); i++ {
		d.paintIndex(v, i)
	}
	d.moveCursor(v)
}

// Repaint updates only the changed index and the old and new cursor cells.
// A negative changed index repaints the cursor cells alone.
func (d *Driver) Repaint(v View, changed int) {
	if changed >= 0 && changed < v.Len() {
		d.paintIndex(v, changed)
	}
	if d.cursor >= 0 && d.cursor < v.Len() {
		d.paintIndex(v, d.cursor)
	}
	if t := v.TypedLength(); t < v.Len() {
		d.paintIndex(v, t)
	}
	d.moveCursor(v)
}

// Status paints lines in the rows below the text, clearing earlier status text.
func (d *Driver) Status(v View, lines ...string) {
	top := d.statusRow(v)
	attr := d.styles.Lookup(StyleStatus)
	width := d.statusWidth
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	for r := 0; r < max(len(lines), d.statusLines); r++ {
		var text []rune
		if r < len(lines) {
			text = []rune(lines[r])
		}
		for c := 0; c < width; c++ {
			ch := ' '
			if c < len(text) {
				ch = text[c]
			}
			d.surface.SetCell(top+r, d.spec.OriginCol+c, ch, attr)
		}
	}
	d.statusWidth = width
	d.statusLines = len(lines)
}

func (d *Driver) statusRow(v View) int {
	return d.spec.OriginRow + d.spec.Rows(v.Len()) + 1
}

func (d *Driver) paintIndex(v View, i int) {
	cell := CellFor(v, d.spec, i)
	d.surface.SetCell(cell.Row, cell.Col, cell.Ch, d.styles.Lookup(cell.Style))
}

func (d *Driver) moveCursor(v View) {
	if v.IsComplete() {
		d.cursor = -1
		d.surface.HideCursor()
		return
	}
	d.cursor = v.TypedLength()
	row, col := d.spec.Cell(d.cursor)
	d.surface.ShowCursor(row, col)
}

// FormatMetrics renders metrics for display with one decimal place.
func FormatMetrics(m model.Metrics) string {
	return fmt.Sprintf("%.1f WPM · %.1f%% accuracy · %.1fs", m.WordsPerMinute, m.AccuracyPercent, m.ElapsedSeconds)
}
