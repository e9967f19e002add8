// Package tui provides the Bubble Tea frontend for a typing round.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typedrill/internal/game"
	"github.com/verte-zerg/typedrill/internal/model"
	"github.com/verte-zerg/typedrill/internal/render"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))

// Model implements tea.Model on top of a game.Round painting into a Grid.
type Model struct {
	round *game.Round
	grid  *render.Grid

	keys   keyMap
	help   help.Model
	styles map[render.Attr]lipgloss.Style

	width int
}

// NewModel starts round and wraps it. The round's driver must paint into grid.
func NewModel(round *game.Round, grid *render.Grid) *Model {
	h := help.New()
	h.Styles.ShortKey = footerStyle
	h.Styles.ShortDesc = footerStyle
	h.Styles.ShortSeparator = footerStyle
	m := &Model{
		round:  round,
		grid:   grid,
		keys:   defaultKeyMap(),
		help:   h,
		styles: map[render.Attr]lipgloss.Style{},
	}
	round.Start()
	return m
}

// Result returns the round outcome.
func (m *Model) Result() game.Result {
	return m.round.Result()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		events := translateKey(msg, m.keys)
		if len(events) == 0 {
			events = []model.KeyEvent{{Kind: model.KeyNone}}
		}
		for _, ev := range events {
			m.round.Handle(ev)
			if m.round.State() == game.Terminated {
				return m, tea.Quit
			}
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	for row := 0; row < m.grid.Rows(); row++ {
		b.WriteString(m.renderRow(row))
		b.WriteByte('\n')
	}
	footer := m.help.View(m.keys)
	if m.width > 0 {
		footer = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footer)
	}
	b.WriteString(footer)
	return b.String()
}

// renderRow styles runs of cells sharing an Attr together.
func (m *Model) renderRow(row int) string {
	var b strings.Builder
	var run []rune
	var runAttr render.Attr
	flush := func() {
		if len(run) == 0 {
			return
		}
		b.WriteString(m.style(runAttr).Render(string(run)))
		run = run[:0]
	}
	for col := 0; col < m.grid.Cols(); col++ {
		cell := m.grid.Cell(row, col)
		if len(run) > 0 && cell.Attr != runAttr {
			flush()
		}
		runAttr = cell.Attr
		run = append(run, cell.Ch)
	}
	flush()
	return b.String()
}

func (m *Model) style(attr render.Attr) lipgloss.Style {
	if st, ok := m.styles[attr]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if attr.Foreground != "" {
		st = st.Foreground(lipgloss.Color(attr.Foreground))
	}
	if attr.Background != "" {
		st = st.Background(lipgloss.Color(attr.Background))
	}
	st = st.Bold(attr.Bold).Underline(attr.Underline).Reverse(attr.Reverse)
	m.styles[attr] = st
	return st
}
