// Package layout maps a linear text position onto a fixed-width viewport.
//
// Text is one logical line wrapped at a fixed column count, not word-wrapped,
// so every index has a screen coordinate computable in O(1).
package layout

import (
	"errors"
	"fmt"
	"strings"
)

// contentRatio is the share of terminal columns used when no width is set.
const contentRatio = 0.70

// ErrEmptyText is returned when there are no words to join.
var ErrEmptyText = errors.New("target text is empty")

// Spec is the viewport a round is drawn into.
type Spec struct {
	Width     int
	OriginRow int
	OriginCol int
}

// Position returns the row and column of index relative to the origin.
// A width below 1 is treated as 1.
func Position(index, width int) (row, col int) {
	if width < 1 {
		width = 1
	}
	return index / width, index % width
}

// RowsNeeded returns how many rows n characters occupy at width.
func RowsNeeded(n, width int) int {
	if n <= 0 {
		return 0
	}
	if width < 1 {
		width = 1
	}
	return (n + width - 1) / width
}

// Cell returns the absolute screen coordinate for index.
func (s Spec) Cell(index int) (row, col int) {
	row, col = Position(index, s.Width)
	return s.OriginRow + row, s.OriginCol + col
}

// Rows returns the number of rows n characters occupy in this viewport.
func (s Spec) Rows(n int) int {
	return RowsNeeded(n, s.Width)
}

// Validate checks the spec describes a usable viewport.
func (s Spec) Validate() error {
	if s.Width < 1 {
		return fmt.Errorf("viewport width must be >= 1, got %d", s.Width)
	}
	if s.OriginRow < 0 || s.OriginCol < 0 {
		return fmt.Errorf("viewport origin must be non-negative, got (%d, %d)", s.OriginRow, s.OriginCol)
	}
	return nil
}

// Fit builds a spec for n characters on a cols x rows terminal. A width of 0
// selects a share of the terminal columns. reserved rows are kept free below
// the text. Nil origins are centered.
func Fit(cols, rows, width, n, reserved int, originRow, originCol *int) (Spec, error) {
	if cols < 1 || rows < 1 {
		return Spec{}, fmt.Errorf("terminal size %dx%d is too small", cols, rows)
	}
	if width <= 0 {
		width = int(float64(cols) * contentRatio)
		if width < 1 {
			width = 1
		}
	}
	if width > cols {
		return Spec{}, fmt.Errorf("viewport width %d exceeds terminal width %d", width, cols)
	}
	height := RowsNeeded(n, width) + reserved
	if height > rows {
		return Spec{}, fmt.Errorf("text needs %d rows but terminal has %d", height, rows)
	}

	spec := Spec{Width: width}
	if originCol != nil {
		spec.OriginCol = *originCol
	} else {
		spec.OriginCol = (cols - width) / 2
	}
	if originRow != nil {
		spec.OriginRow = *originRow
	} else {
		spec.OriginRow = (rows - height) / 2
	}
	if spec.OriginCol+width > cols {
		return Spec{}, fmt.Errorf("viewport column %d+%d exceeds terminal width %d", spec.OriginCol, width, cols)
	}
	if spec.OriginRow+height > rows {
		return Spec{}, fmt.Errorf("viewport row %d+%d exceeds terminal height %d", spec.OriginRow, height, rows)
	}
	return spec, spec.Validate()
}

// JoinWords builds the target text from sampled words with single spaces.
func JoinWords(words []string) (string, error) {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		kept = append(kept, w)
	}
	if len(kept) == 0 {
		return "", ErrEmptyText
	}
	return strings.Join(kept, " "), nil
}
