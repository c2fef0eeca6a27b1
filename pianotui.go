package pianotui

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/rapidmidiex/pianotui/emit"
	"github.com/rapidmidiex/pianotui/holdstats"
	"github.com/rapidmidiex/pianotui/keymap"
	"github.com/rapidmidiex/pianotui/note"
	"github.com/rapidmidiex/pianotui/pianoerr"
	"github.com/rapidmidiex/pianotui/rangeui"
	"github.com/rapidmidiex/pianotui/stripui"
	"github.com/rapidmidiex/pianotui/styles"
	"github.com/rapidmidiex/pianotui/taplog"
)

type (
	appView int

	// Config carries the flag-settable options through to the models. Every
	// zero value has a working default.
	Config struct {
		// Jam server host URL; empty plays offline.
		ServerHostURL string
		UserName      string
		// Range endpoints, ex: "C2", "F♯5". Both set skips the preset picker;
		// both empty opens it. Setting only one is an error.
		From string
		To   string
		// Explicit per-key width in cells; zero auto-fits the range.
		KeyWidth float64
		// Prefer flat spellings for accidentals.
		Flats bool
		// Hide per-key note names.
		HideNames bool
	}

	mainModel struct {
		curView appView
		picker  tea.Model
		strip   tea.Model
		tapLog  tea.Model

		cfg        Config
		wsEndpoint string
		userID     uuid.UUID
		emitter    *emit.Emitter
		sessName   string

		lastNote  string
		holdStats holdstats.CalcMsg
		curError  string

		windowSize tea.WindowSizeMsg
	}
)

const (
	rangeView appView = iota
	stripView
)

func NewModel(cfg Config) (mainModel, error) {
	wsEndpoint := ""
	if cfg.ServerHostURL != "" {
		wsHostURL, err := url.Parse(cfg.ServerHostURL)
		if err != nil {
			return mainModel{}, err
		}
		wsHostURL.Scheme = "ws"
		wsEndpoint = wsHostURL.String() + "/api/v1/jam"
	}
	if cfg.UserName == "" {
		cfg.UserName = "anon"
	}

	m := mainModel{
		curView:    rangeView,
		picker:     rangeui.New(),
		tapLog:     taplog.New(),
		cfg:        cfg,
		wsEndpoint: wsEndpoint,
		userID:     uuid.New(),
	}

	if cfg.From != "" || cfg.To != "" {
		if cfg.From == "" || cfg.To == "" {
			return mainModel{}, fmt.Errorf("range: need both endpoints, got from=%q to=%q", cfg.From, cfg.To)
		}
		from, err := note.Parse(cfg.From)
		if err != nil {
			return mainModel{}, err
		}
		to, err := note.Parse(cfg.To)
		if err != nil {
			return mainModel{}, err
		}
		rng := note.NewRange(from, to)
		m.sessName = fmt.Sprintf("%s to %s", rng.From.Name(), rng.To.Name())
		m.strip = stripui.New(stripui.Options{
			Range:          rng,
			UseAlternative: cfg.Flats,
			HideNoteNames:  cfg.HideNames,
			KeyWidth:       cfg.KeyWidth,
		})
		m.curView = stripView
	}
	return m, nil
}

func (m mainModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.picker.Init(),
		m.tapLog.Init(),
	}
	// A flag-set range bypasses the picker, so dial here instead of on
	// selection.
	if m.curView == stripView && m.wsEndpoint != "" {
		cmds = append(cmds, emit.Dial(m.wsEndpoint))
	}
	return tea.Batch(cmds...)
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case pianoerr.ErrMsg:
		m.curError = msg.Error()

	case tea.WindowSizeMsg:
		// Remember the size so a strip created later gets its geometry.
		m.windowSize = msg

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keymap.DefaultMapping.Quit):
			if m.emitter != nil {
				return m, tea.Sequence(m.emitter.Leave(), tea.Quit)
			}
			return m, tea.Quit
		case key.Matches(msg, keymap.DefaultMapping.GoBack):
			m.curView = rangeView
		case key.Matches(msg, keymap.DefaultMapping.CycleFocus):
			if m.curView != stripView {
				break
			}
			m.strip, cmd = passTo(m.strip, stripui.ToggleFocusMsg{})
			cmds = append(cmds, cmd)
			m.tapLog, cmd = passTo(m.tapLog, taplog.ToggleFocusMsg{})
			cmds = append(cmds, cmd)
		}

	case rangeui.RangeSelected:
		m.sessName = msg.Name
		m.strip = stripui.New(stripui.Options{
			Range:          msg.Range,
			UseAlternative: m.cfg.Flats,
			HideNoteNames:  m.cfg.HideNames,
			KeyWidth:       m.cfg.KeyWidth,
		})
		m.curView = stripView
		cmds = append(cmds, sized(m.windowSize))
		if m.wsEndpoint != "" {
			cmds = append(cmds, emit.Dial(m.wsEndpoint))
		}

	case emit.ConnectedMsg:
		m.emitter = emit.New(msg.WS, m.userID)
		cmds = append(cmds, m.emitter.Announce(m.cfg.UserName), m.emitter.Listen())

	case emit.JoinedMsg:
		m.tapLog, cmd = passTo(m.tapLog, taplog.Entry{
			DisplayName: msg.UserName,
			Note:        "joined the session",
		})
		cmds = append(cmds, cmd)
		// Start listening again
		if m.emitter != nil {
			cmds = append(cmds, m.emitter.Listen())
		}

	case emit.RemoteNoteMsg:
		m.strip, cmd = passTo(m.strip, stripui.RemotePressMsg{Name: msg.Name, On: msg.On})
		cmds = append(cmds, cmd)
		if msg.On {
			m.tapLog, cmd = passTo(m.tapLog, taplog.Entry{
				DisplayName: "jam",
				Note:        msg.Name,
				Label:       msg.Label,
			})
			cmds = append(cmds, cmd)
		}
		// Start listening again
		cmds = append(cmds, m.emitter.Listen())

	case stripui.NoteTappedMsg:
		m.lastNote = msg.Note.Name()
		m.tapLog, cmd = passTo(m.tapLog, taplog.Entry{
			Note:     msg.Note.Name(),
			Label:    msg.Label,
			FromSelf: true,
		})
		cmds = append(cmds, cmd)
		if m.emitter != nil {
			cmds = append(cmds, m.emitter.SendNote(msg.Note.Name(), msg.Label, true))
		}

	case holdstats.CalcMsg:
		m.holdStats = msg
	}

	// Call sub-model Updates
	switch m.curView {
	case rangeView:
		m.picker, cmd = m.picker.Update(msg)
		cmds = append(cmds, cmd)
	case stripView:
		m.strip, cmd = m.strip.Update(msg)
		cmds = append(cmds, cmd)
		m.tapLog, cmd = m.tapLog.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m mainModel) View() string {
	switch m.curView {
	case stripView:
		return m.strip.View() + "\n" + m.tapLog.View() + "\n" + m.statusBar()
	default:
		return m.picker.View()
	}
}

func (m mainModel) statusBar() string {
	status := styles.StatusStyle.Render("PIANO")

	text := fmt.Sprintf(" %s", m.sessName)
	if m.lastNote != "" {
		text = fmt.Sprintf("%s • last %s", text, m.lastNote)
	}
	if m.emitter != nil {
		text += " • jam"
	}
	if m.curError != "" {
		text += " • " + styles.RenderError(m.curError)
	}

	hold := ""
	if m.holdStats.Count > 0 {
		hold = styles.HoldStyle.Render(fmt.Sprintf("hold %v avg",
			m.holdStats.Avg.Round(time.Millisecond)))
	}

	return styles.StatusBarStyle.Render(status + styles.StatusText.Render(text) + hold)
}

// passTo forwards a message to a sub-model outside the focused-view switch.
func passTo(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	return model.Update(msg)
}

// sized replays the last known window size, so a freshly created sub-model
// can compute its geometry before the next real resize.
func sized(msg tea.WindowSizeMsg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

func Run(cfg Config) {
	m, err := NewModel(cfg)
	if err != nil {
		bail(err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		bail(err)
	}
}

func bail(err error) {
	if err != nil {
		fmt.Printf("Uh oh, there was an error: %v\n", err)
		os.Exit(1)
	}
}
