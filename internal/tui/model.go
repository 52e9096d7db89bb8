// Package tui provides an interactive terminal frontend for the
// summarizer: paste text, pick a summary length, read the result.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Summarizer is the TUI-facing subset of the engine.
type Summarizer interface {
	Summarize(text string, n int) string
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	engine    Summarizer
	input     textarea.Model
	viewport  viewport.Model
	sentences int
	status    string
	ready     bool
}

// New creates a new TUI model instance.
func New(engine Summarizer, sentences int) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste text, then press ctrl+s to summarize"
	ta.Focus()
	ta.CharLimit = 0
	vp := viewport.New(0, 0)
	if sentences <= 0 {
		sentences = 3
	}
	return Model{
		engine:    engine,
		input:     ta,
		viewport:  vp,
		sentences: sentences,
		status:    "Ready. ctrl+s summarize, ctrl+up/down length, ctrl+c quit.",
	}
}

// Init initializes the model (textarea cursor blink).
func (m Model) Init() tea.Cmd { return textarea.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ih := inputBoxStyle.GetFrameSize()
		_, oh := outputBoxStyle.GetFrameSize()
		totalHeaderLines := 1
		totalFooterLines := 1
		available := msg.Height - totalHeaderLines - totalFooterLines - ih - oh - 1
		if available < 6 {
			available = 6
		}
		m.input.SetWidth(max(20, msg.Width-2))
		m.input.SetHeight(available / 2)
		m.viewport.Width = max(20, msg.Width-2)
		m.viewport.Height = available - available/2
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "ctrl+s":
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				m.status = "Nothing to summarize."
				return m, nil
			}
			summary := m.engine.Summarize(text, m.sentences)
			m.viewport.SetContent(summary)
			m.status = fmt.Sprintf("Summarized to %d sentence(s).", m.sentences)
			return m, nil
		case "ctrl+up":
			m.sentences++
			m.status = fmt.Sprintf("Summary length: %d sentence(s).", m.sentences)
			return m, nil
		case "ctrl+down":
			if m.sentences > 1 {
				m.sentences--
			}
			m.status = fmt.Sprintf("Summary length: %d sentence(s).", m.sentences)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("sumrank (%d sentence summary)", m.sentences))
	input := inputBoxStyle.Render(m.input.View())
	output := outputBoxStyle.Render(m.viewport.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + input + "\n" + output + "\n" + status
}

var (
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	outputBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
