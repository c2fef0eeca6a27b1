// Package stripui renders the scrollable piano strip and feeds raw input
// back through the grouping, scroll and press engines.
package stripui

import (
	"math"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/rapidmidiex/pianotui/autoscroll"
	"github.com/rapidmidiex/pianotui/holdstats"
	"github.com/rapidmidiex/pianotui/keybed"
	"github.com/rapidmidiex/pianotui/keymap"
	"github.com/rapidmidiex/pianotui/note"
	"github.com/rapidmidiex/pianotui/press"
	"github.com/rapidmidiex/pianotui/qwerty"
	"github.com/rapidmidiex/pianotui/styles"
)

var (
	docStyle = styles.DocStyle

	keyBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "-",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}
)

const (
	// Mirrored by hitTest; the strip is drawn inside docStyle's padding.
	padTop  = 1
	padLeft = 2

	// Bordered key box: name line, blank line, key-binding line.
	keyBoxHeight = 5

	minKeyWidth = 6
)

type (
	// NoteTappedMsg announces a local tap, spelled per the active
	// configuration. It fires exactly once per press gesture.
	NoteTappedMsg struct {
		Note  note.Position
		Label string
	}

	// RemotePressMsg flashes a key played by another client.
	RemotePressMsg struct {
		Name string
		On   bool
	}

	// ScrollToMsg re-targets the auto-scroll.
	ScrollToMsg struct {
		Note note.Position
	}

	ToggleFocusMsg struct{}

	autoReleaseMsg struct {
		name string
	}
)

// Options is the host-settable configuration. Every zero value maps to a
// defined default; nothing here can fail.
type Options struct {
	Range              note.Range
	Highlighted        []note.Position
	NaturalColor       lipgloss.TerminalColor
	AccidentalColor    lipgloss.TerminalColor
	PressedColor       lipgloss.TerminalColor
	HighlightColor     lipgloss.TerminalColor
	AnimateHighlighted bool
	UseAlternative     bool
	HideNoteNames      bool
	HideScrollbar      bool
	// Per-key width in cells. Zero derives a width so the whole range fills
	// the viewport.
	KeyWidth float64
	// Note to center on. Nil centers on middle C.
	ScrollTo *note.Position
	// Host callback, invoked with the tapped note identity.
	OnNoteTapped func(note.Position)
}

type Model struct {
	opts Options

	// Layout cache; rebuilt only when the range or spelling flag changes.
	groups   []keybed.Group
	naturals []note.Position
	// Accidental overlay hanging off the right edge of each natural,
	// keyed by the natural's name.
	accAfter map[string]note.Position
	// Accidental before the first natural, when the range opens on one.
	leadingAcc  *note.Position
	highlighted map[string]bool

	keys   *press.State
	target note.Position

	scroll        float64
	viewportWidth float64
	keyWidth      float64

	focused   bool
	mouseHeld string
	holds     []time.Duration

	naturalStyle    lipgloss.Style
	accidentalStyle lipgloss.Style
	pressedStyle    lipgloss.Style
	highlightStyle  lipgloss.Style
}

func New(opts Options) Model {
	if opts.NaturalColor == nil {
		opts.NaturalColor = styles.NaturalKey
	}
	if opts.HighlightColor == nil {
		opts.HighlightColor = styles.HighlightKey
	}
	if opts.AccidentalColor == nil {
		opts.AccidentalColor = styles.AccidentalKey
	}
	if opts.PressedColor == nil {
		opts.PressedColor = styles.PressedKey
	}

	target := note.MiddleC()
	if opts.ScrollTo != nil {
		target = *opts.ScrollTo
	}

	base := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Border(keyBorder, true).
		Padding(0, 1)

	m := Model{
		opts:    opts,
		keys:    press.New(),
		target:  target,
		focused: true,

		naturalStyle: base.Copy().
			BorderForeground(opts.NaturalColor),
		accidentalStyle: base.Copy().
			Background(opts.AccidentalColor).
			Foreground(styles.White).
			BorderForeground(opts.AccidentalColor),
		pressedStyle: base.Copy().
			Background(opts.PressedColor).
			BorderForeground(opts.PressedColor).
			Bold(true),
		highlightStyle: base.Copy().
			Background(opts.HighlightColor).
			BorderForeground(opts.HighlightColor).
			Blink(opts.AnimateHighlighted),
	}
	m.rebuild()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// rebuild recomputes the group cache and name lookups. Runs when the range
// or the spelling preference changes, never per frame.
func (m *Model) rebuild() {
	all := m.opts.Range.All()
	m.groups = keybed.Partition(all, m.opts.UseAlternative)
	m.naturals = nil
	for _, g := range m.groups {
		m.naturals = append(m.naturals, g.Naturals()...)
	}

	m.accAfter = make(map[string]note.Position)
	m.leadingAcc = nil
	prevNatural := ""
	for _, g := range m.groups {
		for _, p := range g {
			if !p.IsAccidental() {
				prevNatural = p.Name()
				continue
			}
			if prevNatural == "" {
				acc := p
				m.leadingAcc = &acc
				continue
			}
			m.accAfter[prevNatural] = p
		}
	}

	m.highlighted = make(map[string]bool)
	for _, p := range m.opts.Highlighted {
		m.highlighted[m.displayName(p)] = true
	}
}

// displayPos normalizes a position to the active spelling preference.
func (m Model) displayPos(p note.Position) note.Position {
	wantFlat := m.opts.UseAlternative
	if (wantFlat && p.Accidental == note.Sharp) || (!wantFlat && p.Accidental == note.Flat) {
		if alt, ok := p.Alternative(); ok {
			return alt
		}
	}
	return p
}

func (m Model) displayName(p note.Position) string {
	return m.displayPos(p).Name()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = float64(msg.Width)
		m.keyWidth = autoscroll.KeyWidth(m.opts.KeyWidth, m.viewportWidth, len(m.naturals))
		// A resize keeps the target centered.
		m.scroll = m.clampScroll(autoscroll.Offset(m.target, m.naturals, m.keyWidth, m.viewportWidth))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keymap.DefaultMapping.ToggleSpelling):
			m.opts.UseAlternative = !m.opts.UseAlternative
			m.rebuild()
		case key.Matches(msg, keymap.DefaultMapping.ToggleNames):
			m.opts.HideNoteNames = !m.opts.HideNoteNames
		case key.Matches(msg, keymap.DefaultMapping.ScrollLeft):
			m.scroll = m.clampScroll(m.scroll - m.keyWidth)
		case key.Matches(msg, keymap.DefaultMapping.ScrollRight):
			m.scroll = m.clampScroll(m.scroll + m.keyWidth)
		case key.Matches(msg, keymap.DefaultMapping.Center):
			m.target = note.MiddleC()
			m.scroll = m.clampScroll(autoscroll.Offset(m.target, m.naturals, m.keyWidth, m.viewportWidth))
		default:
			if !m.focused {
				break
			}
			p, ok := qwerty.NoteFor(msg.String())
			if !ok {
				// Unmapped key: silent ignore.
				break
			}
			// Terminal key events have no key-up, so keyboard presses take
			// the fixed-delay release path.
			cmds = append(cmds, m.pressKey(p, msg.String(), true)...)
		}

	case tea.MouseMsg:
		switch msg.Type {
		case tea.MouseLeft:
			p, ok := m.hitTest(msg.X, msg.Y)
			if !ok {
				break
			}
			name := m.displayName(p)
			if m.mouseHeld != "" && m.mouseHeld != name {
				// Glissando: dragged onto another key while holding.
				cmds = append(cmds, m.releaseHeld()...)
			}
			m.mouseHeld = name
			cmds = append(cmds, m.pressKey(p, "", false)...)
		case tea.MouseRelease:
			cmds = append(cmds, m.releaseHeld()...)
		case tea.MouseWheelUp:
			m.scroll = m.clampScroll(m.scroll - m.keyWidth)
		case tea.MouseWheelDown:
			m.scroll = m.clampScroll(m.scroll + m.keyWidth)
		}

	case autoReleaseMsg:
		// Unconditional; a re-press inside the flash window was ignored and
		// still ends here, at the original deadline.
		m.keys.Release(msg.name)

	case RemotePressMsg:
		// Remote clients send their own spelling; match it to ours so the
		// flash lands on a rendered key.
		name := msg.Name
		if p, err := note.Parse(msg.Name); err == nil {
			name = m.displayName(p)
		}
		if msg.On {
			if m.keys.Press(name) {
				cmds = append(cmds, releaseLater(name))
			}
		} else {
			m.keys.Release(name)
		}

	case ScrollToMsg:
		m.target = msg.Note
		m.scroll = m.clampScroll(autoscroll.Offset(m.target, m.naturals, m.keyWidth, m.viewportWidth))

	case ToggleFocusMsg:
		m.focused = !m.focused
	}

	return m, tea.Batch(cmds...)
}

// pressKey runs one press gesture: idempotent state transition, host
// callback, tapped message, and (for sources without a release signal) the
// deferred release.
func (m Model) pressKey(p note.Position, label string, timed bool) []tea.Cmd {
	p = m.displayPos(p)
	if !m.keys.Press(p.Name()) {
		// Already held: key-repeat or re-entrant press.
		return nil
	}
	if m.opts.OnNoteTapped != nil {
		m.opts.OnNoteTapped(p)
	}
	cmds := []tea.Cmd{noteTapped(p, label)}
	if timed {
		cmds = append(cmds, releaseLater(p.Name()))
	}
	return cmds
}

// releaseHeld ends the tracked pointer gesture and folds the hold time into
// the stats.
func (m *Model) releaseHeld() []tea.Cmd {
	if m.mouseHeld == "" {
		return nil
	}
	name := m.mouseHeld
	m.mouseHeld = ""
	held, ok := m.keys.Release(name)
	if !ok {
		return nil
	}
	m.holds = append(m.holds, held)
	return []tea.Cmd{holdstats.CalcStats(held, m.holds)}
}

func (m Model) clampScroll(offset float64) float64 {
	max := float64(len(m.naturals))*m.keyWidth - m.viewportWidth
	if max < 0 {
		max = 0
	}
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}

func noteTapped(p note.Position, label string) tea.Cmd {
	return func() tea.Msg {
		return NoteTappedMsg{Note: p, Label: label}
	}
}

func releaseLater(name string) tea.Cmd {
	return tea.Tick(press.FlashDuration, func(time.Time) tea.Msg {
		return autoReleaseMsg{name: name}
	})
}

func (m Model) View() string {
	if len(m.naturals) == 0 {
		return docStyle.Render("No keys in range.")
	}

	viewportWidth := m.viewportWidth
	if viewportWidth <= 0 {
		if physicalWidth, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && physicalWidth > 0 {
			viewportWidth = float64(physicalWidth)
		}
	}

	keyWidth := m.keyWidth
	if keyWidth <= 0 {
		keyWidth = autoscroll.KeyWidth(m.opts.KeyWidth, viewportWidth, len(m.naturals))
	}
	cellW := int(math.Round(keyWidth))
	if cellW < minKeyWidth {
		cellW = minKeyWidth
	}

	// The scroll surface quantizes the engine offset to whole keys.
	visible := (int(viewportWidth) - autoscroll.AutoMargin) / cellW
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.keyWidth > 0 {
		start = int(math.Round(m.scroll / m.keyWidth))
	}
	if start > len(m.naturals)-visible {
		start = len(m.naturals) - visible
	}
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(m.naturals) {
		end = len(m.naturals)
	}

	// Accidental overlays sit half a key to the right of their natural.
	accBlocks := []string{m.leadingPad(cellW, start == 0)}
	natBlocks := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		p := m.naturals[i]
		natBlocks = append(natBlocks, m.renderKey(p, cellW, false))
		if acc, ok := m.accAfter[p.Name()]; ok {
			accBlocks = append(accBlocks, lipgloss.PlaceHorizontal(cellW, lipgloss.Center, m.renderKey(acc, cellW-2, true)))
		} else {
			accBlocks = append(accBlocks, strings.Repeat(" ", cellW))
		}
	}

	doc := strings.Builder{}
	doc.WriteString(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, accBlocks...),
		lipgloss.JoinHorizontal(lipgloss.Top, natBlocks...),
	))
	if !m.opts.HideScrollbar {
		doc.WriteString("\n" + m.renderScrollbar(start, end, (end-start)*cellW))
	}
	return docStyle.Render(doc.String())
}

// leadingPad fills the half-key slot left of the first natural. It holds the
// leading accidental's box when the range opens on one and the strip is
// scrolled to the start. The box is drawn at the slot's exact width and
// height so the overlay row stays aligned with the naturals beneath it;
// text that cannot fit the narrow box is dropped rather than wrapped.
func (m Model) leadingPad(cellW int, atStart bool) string {
	w := cellW / 2
	if m.leadingAcc == nil || !atStart {
		return strings.Repeat(" ", w)
	}

	name := m.leadingAcc.Name()
	style := m.accidentalStyle
	switch {
	case m.keys.Pressed(name):
		style = m.pressedStyle
	case m.highlighted[name]:
		style = m.highlightStyle
	}

	label := ""
	if l, ok := qwerty.Label(*m.leadingAcc); ok {
		label = "(" + l + ")"
	}
	content := w - 2
	top := name
	if m.opts.HideNoteNames || lipgloss.Width(top) > content {
		top = ""
	}
	if lipgloss.Width(label) > content {
		label = ""
	}
	return style.Copy().Padding(0).Width(content).Render(top + "\n\n" + label)
}

// renderKey draws one bordered key box: name, blank line, qwerty binding.
func (m Model) renderKey(p note.Position, width int, accidental bool) string {
	name := p.Name()

	label := ""
	if l, ok := qwerty.Label(p); ok {
		label = "(" + l + ")"
	}
	top := name
	if m.opts.HideNoteNames {
		top = ""
	}

	style := m.naturalStyle
	if accidental {
		style = m.accidentalStyle
	}
	switch {
	case m.keys.Pressed(name):
		style = m.pressedStyle
	case m.highlighted[name]:
		style = m.highlightStyle
	}
	return style.Width(width - 2).Render(top + "\n\n" + label)
}

func (m Model) renderScrollbar(start, end, width int) string {
	total := len(m.naturals)
	if total == 0 || width <= 0 {
		return ""
	}
	barStart := start * width / total
	barEnd := end * width / total
	if barEnd <= barStart {
		barEnd = barStart + 1
	}
	if barEnd > width {
		barEnd = width
	}
	return strings.Repeat("─", barStart) +
		strings.Repeat("█", barEnd-barStart) +
		strings.Repeat("─", width-barEnd)
}

// hitTest translates a terminal cell coordinate into the key under it,
// mirroring View's layout: accidental row on top, natural row below, both
// inside the document padding.
func (m Model) hitTest(x, y int) (note.Position, bool) {
	if len(m.naturals) == 0 {
		return note.Position{}, false
	}

	keyWidth := m.keyWidth
	cellW := int(math.Round(keyWidth))
	if cellW < minKeyWidth {
		cellW = minKeyWidth
	}
	visible := (int(m.viewportWidth) - autoscroll.AutoMargin) / cellW
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.keyWidth > 0 {
		start = int(math.Round(m.scroll / m.keyWidth))
	}
	if start > len(m.naturals)-visible {
		start = len(m.naturals) - visible
	}
	if start < 0 {
		start = 0
	}

	col := x - padLeft
	if col < 0 {
		return note.Position{}, false
	}

	switch {
	// Accidental row.
	case y >= padTop && y < padTop+keyBoxHeight:
		bcol := col - cellW/2
		if bcol < 0 {
			if m.leadingAcc != nil && start == 0 {
				return *m.leadingAcc, true
			}
			return note.Position{}, false
		}
		idx := start + bcol/cellW
		if idx >= len(m.naturals) {
			return note.Position{}, false
		}
		acc, ok := m.accAfter[m.naturals[idx].Name()]
		return acc, ok

	// Natural row.
	case y >= padTop+keyBoxHeight && y < padTop+2*keyBoxHeight:
		idx := start + col/cellW
		if idx >= len(m.naturals) {
			return note.Position{}, false
		}
		return m.naturals[idx], true
	}
	return note.Position{}, false
}
