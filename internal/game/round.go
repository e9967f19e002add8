// Package game runs one typing round: it routes key events to the session,
// keeps the display in step and produces the final metrics.
package game

import (
	"fmt"
	"time"

	"github.com/verte-zerg/typedrill/internal/model"
	"github.com/verte-zerg/typedrill/internal/render"
	"github.com/verte-zerg/typedrill/internal/session"
	"github.com/verte-zerg/typedrill/internal/stats"
)

// State is the phase of a round.
type State int

const (
	Idle State = iota
	Active
	Reporting
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Reporting:
		return "reporting"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const (
	hintLine   = "esc quit · enter submit"
	reportHint = "press any key to exit"
)

// Result is the outcome of a round. Metrics are set only when the round
// reached Reporting.
type Result struct {
	Metrics   model.Metrics
	Completed bool
	Aborted   bool
}

// Round is the input state machine for a single round.
type Round struct {
	sess   *session.Session
	driver *render.Driver
	clock  func() time.Time

	state  State
	result Result
}

// NewRound returns an idle round. A nil clock uses time.Now.
func NewRound(sess *session.Session, driver *render.Driver, clock func() time.Time) *Round {
	if clock == nil {
		clock = time.Now
	}
	return &Round{sess: sess, driver: driver, clock: clock}
}

// Start paints the target text and the idle status line.
func (r *Round) Start() {
	r.driver.Paint(r.sess)
	r.progress()
}

// State returns the current phase.
func (r *Round) State() State {
	return r.state
}

// Result returns the outcome recorded so far.
func (r *Round) Result() Result {
	return r.result
}

// Session returns the session the round drives.
func (r *Round) Session() *session.Session {
	return r.sess
}

// Handle applies ev and reports whether the surface changed.
func (r *Round) Handle(ev model.KeyEvent) bool {
	switch r.state {
	case Terminated:
		return false
	case Reporting:
		r.state = Terminated
		return false
	}

	switch ev.Kind {
	case model.KeyRune:
		out := r.sess.TypeChar(ev.Rune)
		if !out.Changed {
			return false
		}
		r.state = Active
		r.driver.Repaint(r.sess, out.Index)
		if out.Complete {
			r.report(true)
		} else {
			r.progress()
		}
		return true
	case model.KeyBackspace:
		idx, ok := r.sess.Backspace()
		if !ok {
			return false
		}
		if r.sess.TypedLength() == 0 {
			r.state = Idle
		}
		r.driver.Repaint(r.sess, idx)
		r.progress()
		return true
	case model.KeyEnter:
		if r.state != Active {
			return false
		}
		r.report(false)
		return true
	case model.KeyEscape:
		r.state = Terminated
		r.result = Result{Aborted: true}
		return false
	default:
		return false
	}
}

func (r *Round) report(completed bool) {
	now := r.clock()
	r.sess.Finish()
	m := stats.Compute(r.sess, now)
	r.result = Result{Metrics: m, Completed: completed}
	r.state = Reporting
	r.driver.Status(r.sess, render.FormatMetrics(m), reportHint)
}

func (r *Round) progress() {
	pct := r.sess.TypedLength() * 100 / r.sess.Len()
	r.driver.Status(r.sess, fmt.Sprintf("Progress %d%%", pct), hintLine)
}
