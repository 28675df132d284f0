// Package tui implements the terminal frontend: a bubbletea program that
// drives the puzzle animation off tick messages and renders the sticker
// net with lipgloss.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ederwin/spincube"
)

// tickInterval is the terminal frame cadence. 30 fps is plenty for a
// character-cell animation readout.
const tickInterval = time.Second / 30

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	turnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	cellStyles = map[spincube.Color]lipgloss.Style{
		spincube.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("235")),
		spincube.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("235")),
		spincube.Green:  lipgloss.NewStyle().Background(lipgloss.Color("35")).Foreground(lipgloss.Color("255")),
		spincube.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
		spincube.Red:    lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("255")),
		spincube.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("235")),
	}
)

// Messages
type tickMsg time.Time

// Model is the bubbletea model for the terminal frontend.
type Model struct {
	puzzle *spincube.Puzzle

	last     time.Time
	pending  spincube.Move
	lastTurn string
	onTurn   func(spincube.Move)

	width    int
	height   int
	quitting bool
}

// NewModel creates the terminal frontend for a puzzle. onTurn, if
// non-nil, is called once per finalized turn.
func NewModel(p *spincube.Puzzle, onTurn func(spincube.Move)) *Model {
	return &Model{puzzle: p, onTurn: onTurn}
}

// Run starts the bubbletea program and blocks until it exits.
func (m *Model) Run() error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		if m.last.IsZero() {
			m.last = now
		}
		dt := float32(now.Sub(m.last).Seconds())
		m.last = now
		if m.puzzle.Advance(dt) {
			m.lastTurn = m.pending.Notation()
			if m.onTurn != nil {
				m.onTurn(m.pending)
			}
			m.pending = spincube.Move{}
		}
		return m, m.tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "backspace":
		m.puzzle.Reset()
		m.pending = spincube.Move{}
		m.lastTurn = ""
		return m, nil
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if move, ok := spincube.MoveForKey(msg.Runes[0]); ok {
			// Input while a turn is animating is dropped by the core.
			if err := m.puzzle.Input(move); err == nil {
				m.pending = move
			}
		}
	}
	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("spincube"))
	b.WriteString("\n\n")
	b.WriteString(m.renderNet())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("f/b/u/d/l/r/m/e/s turn, shift reverses | backspace reset | q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderNet draws the six outer faces as a flat cross:
//
//	    U
//	L F R B
//	    D
func (m *Model) renderNet() string {
	net := m.puzzle.Net()
	pad := strings.Repeat(" ", 7)

	var b strings.Builder
	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		b.WriteString(m.renderRow(net[spincube.FaceU], row))
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, f := range []spincube.Face{spincube.FaceL, spincube.FaceF, spincube.FaceR, spincube.FaceB} {
			b.WriteString(m.renderRow(net[f], row))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		b.WriteString(m.renderRow(net[spincube.FaceD], row))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderRow(cells [9]spincube.Color, row int) string {
	parts := make([]string, 3)
	for col := 0; col < 3; col++ {
		c := cells[row*3+col]
		parts[col] = cellStyles[c].Render(" " + c.String())
	}
	return strings.Join(parts, "")
}

func (m *Model) renderStatus() string {
	if face, ok := m.puzzle.ActiveFace(); ok {
		return turnStyle.Render(fmt.Sprintf("turning %s…", face))
	}

	parts := []string{}
	if m.lastTurn != "" {
		parts = append(parts, "last: "+m.lastTurn)
	}
	if n := m.puzzle.History().Len(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d turns", n))
		if tps := m.puzzle.History().TPS(); tps > 0 {
			parts = append(parts, fmt.Sprintf("%.2f tps", tps))
		}
	}
	if m.puzzle.IsSolved() {
		parts = append(parts, solvedStyle.Render("solved"))
	}
	if len(parts) == 0 {
		return statusStyle.Render("ready")
	}
	return statusStyle.Render(strings.Join(parts, "  |  "))
}
