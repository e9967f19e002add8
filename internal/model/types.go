// Package model defines shared data structures.
package model

// Config defines round settings after config-file overlay and validation.
type Config struct {
	Lang         string
	Words        int
	WordListPath string
	CapsPct      float64
	PunctPct     float64
	PunctSet     string

	Backend   string
	Width     int
	OriginRow *int
	OriginCol *int

	Theme Theme
}

// Theme maps each display role to a hex colour string ("#rrggbb").
type Theme struct {
	Untyped   string
	Correct   string
	Incorrect string
	Cursor    string
	Status    string
}

// KeyKind classifies a key event for the input loop.
type KeyKind int

const (
	// KeyNone is any key the round does not react to.
	KeyNone KeyKind = iota
	KeyRune
	KeyBackspace
	KeyEnter
	KeyEscape
)

// KeyEvent is a backend-neutral keystroke.
type KeyEvent struct {
	Kind KeyKind
	Rune rune
}

// Typeable reports whether r is printable ASCII, the only input a round accepts.
func Typeable(r rune) bool {
	return r >= 0x20 && r <= 0x7e
}

// RuneKey returns a KeyRune event for r.
func RuneKey(r rune) KeyEvent {
	return KeyEvent{Kind: KeyRune, Rune: r}
}

// Metrics summarizes a round. Values are never rounded.
type Metrics struct {
	ElapsedSeconds  float64
	AccuracyPercent float64
	WordsPerMinute  float64
}

// CharAggregate aggregates classifications for one target character.
type CharAggregate struct {
	Char      string
	Correct   int
	Incorrect int
}
