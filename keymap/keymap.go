package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Application bindings only use chords and navigation keys; bare letters,
// digits and their shifted forms are reserved for playing notes.
type Mapping struct {
	CycleFocus     key.Binding
	GoBack         key.Binding
	Quit           key.Binding
	ToggleSpelling key.Binding
	ToggleNames    key.Binding
	ScrollLeft     key.Binding
	ScrollRight    key.Binding
	Center         key.Binding
}

var DefaultMapping = Mapping{
	CycleFocus: key.NewBinding(
		key.WithKeys(tea.KeyTab.String()),
		key.WithHelp("tab", "cycle focus"),
	),
	GoBack: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "go back"),
	),
	Quit: key.NewBinding(
		key.WithKeys(tea.KeyCtrlC.String()),
		key.WithHelp("ctrl+c", "quit"),
	),
	ToggleSpelling: key.NewBinding(
		key.WithKeys(tea.KeyCtrlF.String()),
		key.WithHelp("ctrl+f", "toggle flat names"),
	),
	ToggleNames: key.NewBinding(
		key.WithKeys(tea.KeyCtrlN.String()),
		key.WithHelp("ctrl+n", "toggle note names"),
	),
	ScrollLeft: key.NewBinding(
		key.WithKeys(tea.KeyLeft.String()),
		key.WithHelp("←", "scroll left"),
	),
	ScrollRight: key.NewBinding(
		key.WithKeys(tea.KeyRight.String()),
		key.WithHelp("→", "scroll right"),
	),
	Center: key.NewBinding(
		key.WithKeys(tea.KeyHome.String()),
		key.WithHelp("home", "center on middle C"),
	),
}
