// Package rangeui is the opening view: a table of preset note ranges for the
// strip. Selecting one switches the app to the piano view.
package rangeui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/rapidmidiex/pianotui/note"
	"github.com/rapidmidiex/pianotui/styles"
)

var (
	docStyle = styles.DocStyle
)

type Preset struct {
	Name string
	From note.Position
	To   note.Position
}

// Presets cover the span of the physical key table; anything wider could not
// be played from the keyboard anyway.
var presets = []Preset{
	{Name: "One octave", From: note.Position{Letter: 'C', Octave: 4}, To: note.Position{Letter: 'B', Octave: 4}},
	{Name: "Two octaves", From: note.Position{Letter: 'C', Octave: 3}, To: note.Position{Letter: 'B', Octave: 4}},
	{Name: "Bass", From: note.Position{Letter: 'C', Octave: 2}, To: note.Position{Letter: 'B', Octave: 3}},
	{Name: "Full strip", From: note.Position{Letter: 'C', Octave: 2}, To: note.Position{Letter: 'A', Octave: 5, Accidental: note.Sharp}},
}

type RangeSelected struct {
	Name  string
	Range note.Range
}

type Model struct {
	presetTable table.Model
}

func New() Model {
	return Model{
		presetTable: makePresetTable(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.presetTable.SetWidth(msg.Width - 10)
	case tea.KeyMsg:
		switch msg.String() {
		case tea.KeyEnter.String():
			preset := presets[m.presetTable.Cursor()]
			cmds = append(cmds, rangeSelect(preset))
		}
	}
	newTable, tCmd := m.presetTable.Update(msg)
	m.presetTable = newTable

	cmds = append(cmds, tCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	physicalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	doc := strings.Builder{}

	doc.WriteString(styles.BaseStyle.Width(styles.Width).Render(m.presetTable.View()))
	doc.WriteString("\n" + styles.HelpMenu.Render("↑/↓ select range • enter play"))

	if physicalWidth > 0 {
		docStyle = styles.DocStyle.MaxWidth(physicalWidth)
	}

	return docStyle.Render(doc.String())
}

func makePresetTable() table.Model {
	columns := []table.Column{
		{Title: "Range", Width: 15},
		{Title: "From", Width: 8},
		{Title: "To", Width: 8},
		{Title: "Keys", Width: 6},
	}

	rows := make([]table.Row, 0)

	for _, p := range presets {
		size := note.NewRange(p.From, p.To)
		row := table.Row{p.Name, p.From.Name(), p.To.Name(), fmt.Sprintf("%d", len(size.All()))}
		rows = append(rows, row)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(7),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func rangeSelect(p Preset) tea.Cmd {
	return func() tea.Msg {
		return RangeSelected{
			Name:  p.Name,
			Range: note.NewRange(p.From, p.To),
		}
	}
}
