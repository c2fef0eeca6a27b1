package taplog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Reference:
// https://github.com/charmbracelet/bubbletea/blob/master/examples/chat/main.go

type (
	ToggleFocusMsg struct{}

	// Entry is one logged event, a tapped note or a session join, local or
	// remote.
	Entry struct {
		DisplayName string
		Note        string
		Label       string
		FromSelf    bool
	}
)

type model struct {
	viewport    viewport.Model
	entries     []string
	focused     bool
	selfStyle   lipgloss.Style
	remoteStyle lipgloss.Style
}

func New() model {
	vp := viewport.New(30, 5)
	vp.SetContent(`Tap a key, or play the mapped qwerty keys.`)

	return model{
		viewport:    vp,
		entries:     []string{},
		selfStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		remoteStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var vpCmd tea.Cmd

	// Scrolling keys only act on the log while it has focus.
	if m.focused {
		m.viewport, vpCmd = m.viewport.Update(msg)
	}

	switch msg := msg.(type) {
	case ToggleFocusMsg:
		m.focused = !m.focused

	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width - 4

	case Entry:
		m.entries = append(m.entries, m.renderEntry(msg))
		m.viewport.SetContent(strings.Join(m.entries, "\n"))
		m.viewport.GotoBottom()
	}

	return m, vpCmd
}

func (m model) renderEntry(e Entry) string {
	name := e.DisplayName
	style := m.remoteStyle
	if e.FromSelf {
		name = "You"
		style = m.selfStyle
	}
	line := fmt.Sprintf("%s: %s", name, e.Note)
	if e.Label != "" {
		line = fmt.Sprintf("%s (%s)", line, e.Label)
	}
	return style.Render(line)
}

func (m model) View() string {
	return m.viewport.View() + "\n"
}
