// Package stats contains round metrics and the post-round report.
package stats

import (
	"time"

	"github.com/verte-zerg/typedrill/internal/model"
	"github.com/verte-zerg/typedrill/internal/session"
)

// Progress is the read-only view of a typing session used for metrics.
type Progress interface {
	Len() int
	TypedLength() int
	State(i int) session.CharState
	Rune(i int) rune
	StartedAt() (time.Time, bool)
}

// Compute derives metrics for p as of now.
//
// WPM counts separators in the typed prefix plus one, so a trailing partial
// word counts as a whole word.
func Compute(p Progress, now time.Time) model.Metrics {
	var m model.Metrics
	if startedAt, ok := p.StartedAt(); ok {
		m.ElapsedSeconds = now.Sub(startedAt).Seconds()
	}

	typed := p.TypedLength()
	if typed > 0 {
		correct := 0
		for i := 0; i < typed; i++ {
			if p.State(i) == session.Correct {
				correct++
			}
		}
		m.AccuracyPercent = 100 * float64(correct) / float64(typed)
	}

	if m.ElapsedSeconds > 0 {
		m.WordsPerMinute = float64(WordsTyped(p)) * 60 / m.ElapsedSeconds
	}
	return m
}

// WordsTyped counts separators in the typed prefix plus one.
func WordsTyped(p Progress) int {
	words := 1
	for i := 0; i < p.TypedLength(); i++ {
		if p.Rune(i) == ' ' {
			words++
		}
	}
	return words
}
