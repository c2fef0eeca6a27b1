package stripui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/rapidmidiex/pianotui/note"
	"github.com/rapidmidiex/pianotui/stripui"
)

func oneOctave() note.Range {
	return note.NewRange(
		note.Position{Letter: 'C', Octave: 4},
		note.Position{Letter: 'B', Octave: 4},
	)
}

// drain runs every command returned by an Update, feeding nothing back.
// Deferred release ticks block for their flash duration before yielding.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drain(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyboardTapFiresCallbackOnce(t *testing.T) {
	var tapped []note.Position
	m := tea.Model(stripui.New(stripui.Options{
		Range:    oneOctave(),
		KeyWidth: 40,
		OnNoteTapped: func(p note.Position) {
			tapped = append(tapped, p)
		},
	}))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 300, Height: 40})

	// "g" maps to F4 in the fixed table.
	m, cmd := m.Update(keyMsg("g"))

	require.Len(t, tapped, 1)
	require.Equal(t, "F4", tapped[0].Name())

	// Key-repeat while held: no second callback.
	m, repeatCmd := m.Update(keyMsg("g"))
	require.Len(t, tapped, 1)
	require.Nil(t, repeatCmd)

	var gotTap *stripui.NoteTappedMsg
	for _, msg := range drain(cmd) {
		switch msg := msg.(type) {
		case stripui.NoteTappedMsg:
			tap := msg
			gotTap = &tap
		default:
			// The deferred release fires after the flash window; feeding it
			// back ends the gesture.
			m, _ = m.Update(msg)
		}
	}
	require.NotNil(t, gotTap)
	require.Equal(t, "F4", gotTap.Note.Name())
	require.Equal(t, "g", gotTap.Label)

	// Released: a fresh press is a new gesture.
	_, _ = m.Update(keyMsg("g"))
	require.Len(t, tapped, 2)
}

func TestUnmappedKeyIsSilent(t *testing.T) {
	fired := false
	m := tea.Model(stripui.New(stripui.Options{
		Range:        oneOctave(),
		OnNoteTapped: func(note.Position) { fired = true },
	}))

	_, cmd := m.Update(keyMsg("?"))
	require.False(t, fired)
	require.Nil(t, cmd)
}

func TestAlternativeSpellingCallbackIdentity(t *testing.T) {
	var tapped []note.Position
	m := tea.Model(stripui.New(stripui.Options{
		Range:          oneOctave(),
		UseAlternative: true,
		OnNoteTapped: func(p note.Position) {
			tapped = append(tapped, p)
		},
	}))

	// "S" is C♯4's key; with flats preferred the identity is D♭4.
	_, _ = m.Update(keyMsg("S"))
	require.Len(t, tapped, 1)
	require.Equal(t, "D♭4", tapped[0].Name())
}

func TestMouseTapAndTrackedRelease(t *testing.T) {
	var tapped []note.Position
	m := tea.Model(stripui.New(stripui.Options{
		Range:    oneOctave(),
		KeyWidth: 10,
		OnNoteTapped: func(p note.Position) {
			tapped = append(tapped, p)
		},
	}))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})

	// Natural row starts below the accidental overlays; x lands on the first
	// visible key.
	down := tea.MouseMsg{X: 4, Y: 7, Type: tea.MouseLeft}
	m, _ = m.Update(down)
	require.Len(t, tapped, 1)
	require.Equal(t, "C4", tapped[0].Name())

	// Held pointer re-fires on motion; the gesture stays one press.
	m, cmd := m.Update(down)
	require.Len(t, tapped, 1)
	require.Nil(t, cmd)

	_, _ = m.Update(tea.MouseMsg{X: 4, Y: 7, Type: tea.MouseRelease})
}

func TestEmptyRangeRendersPlaceholder(t *testing.T) {
	m := stripui.New(stripui.Options{})
	require.Contains(t, m.View(), "No keys in range")
}
