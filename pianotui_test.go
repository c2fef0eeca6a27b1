package pianotui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rapidmidiex/pianotui/emit"
)

func TestExplicitRangeSkipsPicker(t *testing.T) {
	m, err := NewModel(Config{From: "c#3", To: "C5"})
	require.NoError(t, err)

	require.Equal(t, stripView, m.curView)
	require.NotNil(t, m.strip)
	require.Equal(t, "C♯3 to C5", m.sessName)
}

func TestExplicitRangeNeedsBothEndpoints(t *testing.T) {
	_, err := NewModel(Config{From: "C3"})
	require.Error(t, err)

	_, err = NewModel(Config{To: "C5"})
	require.Error(t, err)

	_, err = NewModel(Config{From: "C3", To: "X9"})
	require.Error(t, err)
}

func TestNoRangeOpensPicker(t *testing.T) {
	m, err := NewModel(Config{})
	require.NoError(t, err)
	require.Equal(t, rangeView, m.curView)
	require.Nil(t, m.strip)
}

func TestJoinIsLogged(t *testing.T) {
	m, err := NewModel(Config{})
	require.NoError(t, err)

	updated, _ := m.Update(emit.JoinedMsg{UserName: "ada"})

	log := updated.(mainModel).tapLog.View()
	require.Contains(t, log, "ada")
	require.Contains(t, log, "joined the session")
}
