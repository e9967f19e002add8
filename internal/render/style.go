// Package render turns typing-session state into styled cell updates.
package render

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/verte-zerg/typedrill/internal/model"
)

// Style is an abstract role for a painted cell.
type Style int

const (
	StyleUntyped Style = iota
	StyleCorrect
	StyleIncorrect
	StyleCursor
	StyleStatus
)

// Attr is a concrete display attribute. Colours are "#rrggbb" or empty for
// the terminal default.
type Attr struct {
	Foreground string
	Background string
	Bold       bool
	Underline  bool
	Reverse    bool
}

// StyleTable maps every Style to the Attr it is painted with.
type StyleTable map[Style]Attr

// DefaultTheme returns the built-in colour scheme.
func DefaultTheme() model.Theme {
	return model.Theme{
		Untyped:   "#8C8C8C",
		Correct:   "#5FAF5F",
		Incorrect: "#FF4D4F",
		Cursor:    "#C89A3A",
		Status:    "#6E6E6E",
	}
}

// NewStyleTable validates theme colours and builds the style table.
// The cursor cell is drawn dark on the cursor colour.
func NewStyleTable(theme model.Theme) (StyleTable, error) {
	untyped, err := normalizeHex("untyped", theme.Untyped)
	if err != nil {
		return nil, err
	}
	correct, err := normalizeHex("correct", theme.Correct)
	if err != nil {
		return nil, err
	}
	incorrect, err := normalizeHex("incorrect", theme.Incorrect)
	if err != nil {
		return nil, err
	}
	cursor, err := normalizeHex("cursor", theme.Cursor)
	if err != nil {
		return nil, err
	}
	status, err := normalizeHex("status", theme.Status)
	if err != nil {
		return nil, err
	}
	return StyleTable{
		StyleUntyped:   {Foreground: untyped},
		StyleCorrect:   {Foreground: correct},
		StyleIncorrect: {Foreground: incorrect, Underline: true},
		StyleCursor:    {Foreground: "#000000", Background: cursor, Underline: true},
		StyleStatus:    {Foreground: status},
	}, nil
}

// Lookup returns the Attr for s, or the zero Attr when unmapped.
func (t StyleTable) Lookup(s Style) Attr {
	return t[s]
}

func normalizeHex(role, value string) (string, error) {
	if value == "" {
		return "", nil
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return "", fmt.Errorf("invalid %s colour %q: %w", role, value, err)
	}
	return c.Hex(), nil
}
