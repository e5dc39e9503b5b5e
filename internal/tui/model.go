// Package tui provides the Bubble Tea guessing interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordguess/internal/game"
)

const maxHistory = 10

type historyRow struct {
	guess string
	runes []styledRune
}

// Model implements the Bubble Tea guessing UI on top of a game session.
type Model struct {
	session *game.Session
	input   textinput.Model
	cell    int

	history []historyRow

	width  int
	height int
}

var (
	matchedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	maskedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	guessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	abortStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a guessing TUI model for sess.
func NewModel(sess *game.Session) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "your guess"
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	input.Focus()
	return &Model{
		session: sess,
		input:   input,
		cell:    cellWidth(sess.Secret(), sess.MaskRune()),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.session.Abort()
			return m, tea.Quit
		}
		if m.session.Finished() {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter {
			m.submit(m.input.Value())
			m.input.Reset()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	content := m.renderBody()
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return content + "\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) submit(line string) {
	step := m.session.Guess(line)
	if step.Outcome != game.Guessing {
		return
	}
	m.history = append(m.history, historyRow{
		guess: line,
		runes: buildRevealRunes(m.session.Secret(), line, m.session.MaskRune()),
	})
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

func (m *Model) renderBody() string {
	lines := []string{titleStyle.Render(game.Banner), ""}
	hidden := buildRevealRunes(m.session.Secret(), "", m.session.MaskRune())
	lines = append(lines, renderCells(hidden, m.cell), "")
	for _, row := range m.history {
		lines = append(lines, renderCells(row.runes, m.cell)+"  "+guessStyle.Render(row.guess))
	}
	if len(m.history) > 0 {
		lines = append(lines, "")
	}
	switch m.session.Outcome() {
	case game.Correct:
		lines = append(lines, correctStyle.Render(m.session.FinalMessage()))
	case game.Aborted:
		lines = append(lines, abortStyle.Render(m.session.FinalMessage()))
	default:
		lines = append(lines, m.input.View())
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	segments := []string{fmt.Sprintf("Attempts %d", m.session.Attempts())}
	if n := len(m.history); n > 0 {
		last := m.history[n-1].runes
		segments = append(segments, fmt.Sprintf("Last %d/%d", matchedCount(last), len(last)))
	}
	if m.session.Finished() {
		segments = append(segments, "any key to exit")
	} else {
		segments = append(segments, game.AbortPrefix+" to give up")
	}
	return footerStyle.Render(strings.Join(segments, " · "))
}
