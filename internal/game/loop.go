package game

import (
	"fmt"

	"github.com/verte-zerg/typedrill/internal/model"
)

// KeySource blocks until the next key event.
type KeySource interface {
	ReadKey() (model.KeyEvent, error)
}

// Run drives r from src until the round terminates. flush, when set, is
// called after the initial paint and after every change.
func Run(src KeySource, r *Round, flush func()) (Result, error) {
	if flush == nil {
		flush = func() {}
	}
	r.Start()
	flush()
	for r.State() != Terminated {
		ev, err := src.ReadKey()
		if err != nil {
			return r.Result(), fmt.Errorf("failed to read key: %w", err)
		}
		if r.Handle(ev) {
			flush()
		}
	}
	return r.Result(), nil
}
