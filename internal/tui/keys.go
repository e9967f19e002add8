package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typedrill/internal/model"
)

type keyMap struct {
	Erase  key.Binding
	Submit key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Erase:  key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("backspace", "erase")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Erase, k.Submit, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// translateKey maps a Bubble Tea key message to round events. Pasted input
// arrives as several runes and yields one event per rune; runes outside
// printable ASCII are dropped.
func translateKey(msg tea.KeyMsg, keys keyMap) []model.KeyEvent {
	switch {
	case key.Matches(msg, keys.Quit):
		return []model.KeyEvent{{Kind: model.KeyEscape}}
	case key.Matches(msg, keys.Erase):
		return []model.KeyEvent{{Kind: model.KeyBackspace}}
	case key.Matches(msg, keys.Submit):
		return []model.KeyEvent{{Kind: model.KeyEnter}}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []model.KeyEvent{model.RuneKey(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return []model.KeyEvent{{Kind: model.KeyNone}}
		}
		events := make([]model.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if model.Typeable(r) {
				events = append(events, model.RuneKey(r))
			}
		}
		return events
	default:
		return []model.KeyEvent{{Kind: model.KeyNone}}
	}
}
