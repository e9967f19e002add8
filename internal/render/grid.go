package render

import "strings"

// GridCell is one cell stored by a Grid.
type GridCell struct {
	Ch   rune
	Attr Attr
}

// Grid is an in-memory Surface. Writes outside its bounds are ignored.
type Grid struct {
	rows, cols int
	cells      []GridCell

	cursorRow, cursorCol int
	cursorVisible        bool
}

// NewGrid returns a rows x cols grid filled with blank cells.
func NewGrid(rows, cols int) *Grid {
	rows = max(rows, 0)
	cols = max(cols, 0)
	g := &Grid{rows: rows, cols: cols, cells: make([]GridCell, rows*cols)}
	for i := range g.cells {
		g.cells[i].Ch = ' '
	}
	return g
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// SetCell implements Surface.
func (g *Grid) SetCell(row, col int, ch rune, attr Attr) {
	if !g.inBounds(row, col) {
		return
	}
	g.cells[row*g.cols+col] = GridCell{Ch: ch, Attr: attr}
}

// ShowCursor implements Surface.
func (g *Grid) ShowCursor(row, col int) {
	g.cursorRow, g.cursorCol, g.cursorVisible = row, col, true
}

// HideCursor implements Surface.
func (g *Grid) HideCursor() {
	g.cursorVisible = false
}

// Cell returns the cell at row, col, or a blank cell when out of bounds.
func (g *Grid) Cell(row, col int) GridCell {
	if !g.inBounds(row, col) {
		return GridCell{Ch: ' '}
	}
	return g.cells[row*g.cols+col]
}

// Cursor returns the cursor position and whether it is visible.
func (g *Grid) Cursor() (row, col int, visible bool) {
	return g.cursorRow, g.cursorCol, g.cursorVisible
}

// Line returns the characters of row with trailing blanks removed.
func (g *Grid) Line(row int) string {
	if row < 0 || row >= g.rows {
		return ""
	}
	var b strings.Builder
	for _, c := range g.cells[row*g.cols : (row+1)*g.cols] {
		b.WriteRune(c.Ch)
	}
	return strings.TrimRight(b.String(), " ")
}

// Equal reports whether both grids hold the same cells and cursor.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	if g.cursorVisible != other.cursorVisible {
		return false
	}
	if g.cursorVisible && (g.cursorRow != other.cursorRow || g.cursorCol != other.cursorCol) {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}
