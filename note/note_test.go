package note_test

import (
	"testing"

	"github.com/rapidmidiex/pianotui/note"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	require.Equal(t, "C4", note.Position{Letter: 'C', Octave: 4}.Name())
	require.Equal(t, "C♯4", note.Position{Letter: 'C', Octave: 4, Accidental: note.Sharp}.Name())
	require.Equal(t, "D♭4", note.Position{Letter: 'D', Octave: 4, Accidental: note.Flat}.Name())
	require.Equal(t, "A♯5", note.Position{Letter: 'A', Octave: 5, Accidental: note.Sharp}.Name())
}

func TestMIDINumbers(t *testing.T) {
	require.Equal(t, 60, note.MiddleC().MIDI())
	require.Equal(t, 61, note.Position{Letter: 'C', Octave: 4, Accidental: note.Sharp}.MIDI())
	// Enharmonic spellings land on the same key number without being equal.
	dFlat := note.Position{Letter: 'D', Octave: 4, Accidental: note.Flat}
	require.Equal(t, 61, dFlat.MIDI())
	require.NotEqual(t, note.Position{Letter: 'C', Octave: 4, Accidental: note.Sharp}, dFlat)

	require.Equal(t, note.MiddleC(), note.FromMIDI(60))
	require.Equal(t, "F♯2", note.FromMIDI(42).Name())
}

func TestAlternative(t *testing.T) {
	alt, ok := note.Position{Letter: 'C', Octave: 4, Accidental: note.Sharp}.Alternative()
	require.True(t, ok)
	require.Equal(t, "D♭4", alt.Name())

	back, ok := alt.Alternative()
	require.True(t, ok)
	require.Equal(t, "C♯4", back.Name())

	alt, ok = note.Position{Letter: 'A', Octave: 3, Accidental: note.Sharp}.Alternative()
	require.True(t, ok)
	require.Equal(t, "B♭3", alt.Name())

	// Naturals have no alternative.
	_, ok = note.MiddleC().Alternative()
	require.False(t, ok)
}

func TestParse(t *testing.T) {
	for in, want := range map[string]string{
		"C4":  "C4",
		"c4":  "C4",
		"F♯3": "F♯3",
		"F#3": "F♯3",
		"B♭2": "B♭2",
		"Bb2": "B♭2",
		"bb2": "B♭2",
		"A0":  "A0",
	} {
		p, err := note.Parse(in)
		require.NoError(t, err, in)
		require.Equal(t, want, p.Name(), in)
	}

	for _, in := range []string{"", "C", "H4", "C♯", "Cx4", "4C"} {
		_, err := note.Parse(in)
		require.Error(t, err, in)
	}
}

func TestRangeSequences(t *testing.T) {
	r := note.NewRange(
		note.Position{Letter: 'C', Octave: 4},
		note.Position{Letter: 'B', Octave: 4},
	)

	all := r.All()
	require.Len(t, all, 12)
	require.Equal(t, "C4", all[0].Name())
	require.Equal(t, "C♯4", all[1].Name())
	require.Equal(t, "B4", all[11].Name())

	naturals := r.Naturals()
	wantNaturals := []string{"C4", "D4", "E4", "F4", "G4", "A4", "B4"}
	require.Len(t, naturals, len(wantNaturals))
	for i, want := range wantNaturals {
		require.Equal(t, want, naturals[i].Name())
	}
}

func TestRangeSwapsDescendingEndpoints(t *testing.T) {
	r := note.NewRange(
		note.Position{Letter: 'B', Octave: 4},
		note.Position{Letter: 'C', Octave: 4},
	)
	require.Equal(t, "C4", r.From.Name())
	require.Equal(t, "B4", r.To.Name())
}

func TestZeroRangeIsEmpty(t *testing.T) {
	var r note.Range
	require.True(t, r.IsZero())
	require.Empty(t, r.All())
	require.Empty(t, r.Naturals())
}
