package layout

import (
	"errors"
	"testing"
)

func TestPositionWrapsAtWidth(t *testing.T) {
	cases := []struct {
		index, width int
		row, col     int
	}{
		{0, 5, 0, 0},
		{4, 5, 0, 4},
		{5, 5, 1, 0},
		{6, 5, 1, 1},
		{3, 1, 3, 0},
		{2, 0, 2, 0},
	}
	for _, tc := range cases {
		row, col := Position(tc.index, tc.width)
		if row != tc.row || col != tc.col {
			t.Fatalf("Position(%d, %d) = (%d, %d), want (%d, %d)", tc.index, tc.width, row, col, tc.row, tc.col)
		}
	}
}

func TestPositionInjective(t *testing.T) {
	for width := 1; width <= 12; width++ {
		seen := map[[2]int]int{}
		for i := 0; i < 60; i++ {
			row, col := Position(i, width)
			key := [2]int{row, col}
			if prev, ok := seen[key]; ok {
				t.Fatalf("width %d: index %d and %d share cell %v", width, prev, i, key)
			}
			seen[key] = i
			if col >= width {
				t.Fatalf("width %d: index %d col %d outside viewport", width, i, col)
			}
		}
	}
}

func TestRowsNeededMonotonic(t *testing.T) {
	for width := 1; width <= 12; width++ {
		if got := RowsNeeded(0, width); got != 0 {
			t.Fatalf("RowsNeeded(0, %d) = %d, want 0", width, got)
		}
		for n := 1; n <= 60; n++ {
			prev := RowsNeeded(n-1, width)
			cur := RowsNeeded(n, width)
			if cur != prev && cur != prev+1 {
				t.Fatalf("RowsNeeded(%d, %d) = %d jumped from %d", n, width, cur, prev)
			}
			lastRow, _ := Position(n-1, width)
			if cur != lastRow+1 {
				t.Fatalf("RowsNeeded(%d, %d) = %d, last index on row %d", n, width, cur, lastRow)
			}
		}
	}
}

func TestSpecCellAddsOrigin(t *testing.T) {
	spec := Spec{Width: 5, OriginRow: 2, OriginCol: 10}
	row, col := spec.Cell(6)
	if row != 3 || col != 11 {
		t.Fatalf("expected (3, 11), got (%d, %d)", row, col)
	}
	if spec.Rows(7) != 2 {
		t.Fatalf("expected 2 rows, got %d", spec.Rows(7))
	}
}

func TestSpecValidate(t *testing.T) {
	if err := (Spec{Width: 0}).Validate(); err == nil {
		t.Fatalf("expected zero width to be rejected")
	}
	if err := (Spec{Width: 3, OriginRow: -1}).Validate(); err == nil {
		t.Fatalf("expected negative origin to be rejected")
	}
	if err := (Spec{Width: 3}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFitCentersAutoWidth(t *testing.T) {
	spec, err := Fit(100, 20, 0, 140, 3, nil, nil)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if spec.Width != 70 {
		t.Fatalf("expected width 70, got %d", spec.Width)
	}
	if spec.OriginCol != 15 {
		t.Fatalf("expected origin col 15, got %d", spec.OriginCol)
	}
	// 2 text rows + 3 reserved = 5, centered in 20.
	if spec.OriginRow != 7 {
		t.Fatalf("expected origin row 7, got %d", spec.OriginRow)
	}
}

func TestFitExplicitOrigin(t *testing.T) {
	row, col := 1, 2
	spec, err := Fit(40, 10, 20, 30, 2, &row, &col)
	if err != nil {
		t.Fatalf("fit: %v", err)
	}
	if spec.OriginRow != 1 || spec.OriginCol != 2 || spec.Width != 20 {
		t.Fatalf("unexpected spec: %+v", spec)
	}
}

func TestFitRejectsOverflow(t *testing.T) {
	if _, err := Fit(10, 3, 5, 20, 1, nil, nil); err == nil {
		t.Fatalf("expected text taller than terminal to be rejected")
	}
	if _, err := Fit(10, 10, 11, 5, 0, nil, nil); err == nil {
		t.Fatalf("expected width wider than terminal to be rejected")
	}
	col := 8
	if _, err := Fit(10, 10, 5, 5, 0, nil, &col); err == nil {
		t.Fatalf("expected origin pushing past the edge to be rejected")
	}
}

func TestJoinWords(t *testing.T) {
	text, err := JoinWords([]string{"cat", "", "dog"})
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if text != "cat dog" {
		t.Fatalf("expected %q, got %q", "cat dog", text)
	}
	if _, err := JoinWords(nil); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
}
