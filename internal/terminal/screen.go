// Package terminal owns the raw-mode terminal for the duration of a round.
package terminal

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/verte-zerg/typedrill/internal/model"
	"github.com/verte-zerg/typedrill/internal/render"
)

// ErrClosed is returned by ReadKey once the screen has been released.
var ErrClosed = errors.New("terminal screen closed")

// Screen is a tcell screen exposing the key and cell operations a round needs.
type Screen struct {
	screen   tcell.Screen
	styles   map[render.Attr]tcell.Style
	released bool
}

// Acquire initializes the terminal, entering raw mode.
func Acquire() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return New(screen)
}

// New initializes screen and wraps it. Tests pass a simulation screen.
func New(screen tcell.Screen) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	return &Screen{screen: screen, styles: map[render.Attr]tcell.Style{}}, nil
}

// Release restores the terminal. It is safe to call more than once.
func (s *Screen) Release() {
	if s.released {
		return
	}
	s.released = true
	s.screen.Fini()
}

// Size returns the screen dimensions in columns and rows.
func (s *Screen) Size() (cols, rows int) {
	return s.screen.Size()
}

// ReadKey blocks until a key event arrives. Non-key events are consumed;
// a resize resynchronizes the display without relayout.
func (s *Screen) ReadKey() (model.KeyEvent, error) {
	for {
		if s.released {
			return model.KeyEvent{}, ErrClosed
		}
		ev := s.screen.PollEvent()
		switch e := ev.(type) {
		case nil:
			return model.KeyEvent{}, ErrClosed
		case *tcell.EventKey:
			return convertKey(e), nil
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// SetCell implements render.Surface.
func (s *Screen) SetCell(row, col int, ch rune, attr render.Attr) {
	s.screen.SetContent(col, row, ch, nil, s.style(attr))
}

// ShowCursor implements render.Surface.
func (s *Screen) ShowCursor(row, col int) {
	s.screen.ShowCursor(col, row)
}

// HideCursor implements render.Surface.
func (s *Screen) HideCursor() {
	s.screen.HideCursor()
}

// Show flushes pending cell updates to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) style(attr render.Attr) tcell.Style {
	if st, ok := s.styles[attr]; ok {
		return st
	}
	st := convertAttr(attr)
	s.styles[attr] = st
	return st
}

func convertAttr(attr render.Attr) tcell.Style {
	st := tcell.StyleDefault
	if attr.Foreground != "" {
		st = st.Foreground(tcell.GetColor(attr.Foreground))
	}
	if attr.Background != "" {
		st = st.Background(tcell.GetColor(attr.Background))
	}
	return st.Bold(attr.Bold).Underline(attr.Underline).Reverse(attr.Reverse)
}

func convertKey(e *tcell.EventKey) model.KeyEvent {
	switch e.Key() {
	case tcell.KeyRune:
		r := e.Rune()
		if e.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 || !model.Typeable(r) {
			return model.KeyEvent{Kind: model.KeyNone}
		}
		return model.RuneKey(r)
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return model.KeyEvent{Kind: model.KeyBackspace}
	case tcell.KeyEnter:
		return model.KeyEvent{Kind: model.KeyEnter}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return model.KeyEvent{Kind: model.KeyEscape}
	default:
		return model.KeyEvent{Kind: model.KeyNone}
	}
}
