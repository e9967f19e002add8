// Package session implements the per-character typing state machine.
package session

import (
	"errors"
	"time"
)

// ErrEmptyText is returned when a session is built from an empty target.
var ErrEmptyText = errors.New("session target text is empty")

// CharState is the classification of one target character.
type CharState int

const (
	Untyped CharState = iota
	Correct
	Incorrect
)

func (s CharState) String() string {
	switch s {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "untyped"
	}
}

// Outcome describes the effect of a single TypeChar call.
type Outcome struct {
	// Index is the classified position, or -1 when nothing changed.
	Index   int
	State   CharState
	Changed bool
	// Complete reports whether the whole target has been typed.
	Complete bool
}

// Session holds the target text and the classification of every typed index.
// States at index >= TypedLength are always Untyped; states below it never are.
type Session struct {
	target    []rune
	states    []CharState
	typed     int
	startedAt time.Time
	started   bool
	finished  bool
	clock     func() time.Time
}

// New creates a session for target. A nil clock uses time.Now.
func New(target string, clock func() time.Time) (*Session, error) {
	runes := []rune(target)
	if len(runes) == 0 {
		return nil, ErrEmptyText
	}
	if clock == nil {
		clock = time.Now
	}
	return &Session{
		target: runes,
		states: make([]CharState, len(runes)),
		clock:  clock,
	}, nil
}

// TypeChar classifies r against the next target character.
func (s *Session) TypeChar(r rune) Outcome {
	if s.finished {
		return Outcome{Index: -1, Complete: s.IsComplete()}
	}
	if s.IsComplete() {
		return Outcome{Index: -1, Complete: true}
	}
	if !s.started {
		s.started = true
		s.startedAt = s.clock()
	}
	idx := s.typed
	state := Incorrect
	if r == s.target[idx] {
		state = Correct
	}
	s.states[idx] = state
	s.typed++
	return Outcome{
		Index:    idx,
		State:    state,
		Changed:  true,
		Complete: s.IsComplete(),
	}
}

// Backspace resets the most recently typed character. It returns the
// affected index, or false when there was nothing to undo.
func (s *Session) Backspace() (int, bool) {
	if s.finished || s.typed == 0 {
		return -1, false
	}
	s.typed--
	s.states[s.typed] = Untyped
	return s.typed, true
}

// IsComplete reports whether every target character has been typed.
func (s *Session) IsComplete() bool {
	return s.typed == len(s.target)
}

// Finish freezes the session. Further TypeChar and Backspace calls are no-ops.
func (s *Session) Finish() {
	s.finished = true
}

// Finished reports whether Finish has been called.
func (s *Session) Finished() bool {
	return s.finished
}

// Len returns the number of target characters.
func (s *Session) Len() int {
	return len(s.target)
}

// TypedLength returns the cursor position.
func (s *Session) TypedLength() int {
	return s.typed
}

// State returns the classification at i; out-of-range indices are Untyped.
func (s *Session) State(i int) CharState {
	if i < 0 || i >= len(s.states) {
		return Untyped
	}
	return s.states[i]
}

// Rune returns the target character at i, or 0 when out of range.
func (s *Session) Rune(i int) rune {
	if i < 0 || i >= len(s.target) {
		return 0
	}
	return s.target[i]
}

// Text returns the target text.
func (s *Session) Text() string {
	return string(s.target)
}

// StartedAt returns the time of the first keystroke.
func (s *Session) StartedAt() (time.Time, bool) {
	return s.startedAt, s.started
}

// CorrectCount counts Correct states in the typed prefix.
func (s *Session) CorrectCount() int {
	n := 0
	for _, st := range s.states[:s.typed] {
		if st == Correct {
			n++
		}
	}
	return n
}
