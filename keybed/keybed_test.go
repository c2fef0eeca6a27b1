package keybed_test

import (
	"testing"

	"github.com/rapidmidiex/pianotui/keybed"
	"github.com/rapidmidiex/pianotui/note"
	"github.com/stretchr/testify/require"
)

func octave(oct int) note.Range {
	return note.NewRange(
		note.Position{Letter: 'C', Octave: oct},
		note.Position{Letter: 'B', Octave: oct},
	)
}

func names(g keybed.Group) []string {
	out := make([]string, len(g))
	for i, p := range g {
		out[i] = p.Name()
	}
	return out
}

func TestPartitionOneOctave(t *testing.T) {
	groups := keybed.Partition(octave(4).All(), false)

	// C–E and F–B clusters, split at the E–F gap.
	require.Len(t, groups, 2)
	require.Equal(t, []string{"C4", "C♯4", "D4", "D♯4", "E4"}, names(groups[0]))
	require.Equal(t, []string{"F4", "F♯4", "G4", "G♯4", "A4", "A♯4", "B4"}, names(groups[1]))
}

func TestPartitionIsLossless(t *testing.T) {
	r := note.NewRange(
		note.Position{Letter: 'C', Octave: 2},
		note.Position{Letter: 'A', Octave: 5, Accidental: note.Sharp},
	)
	all := r.All()

	groups := keybed.Partition(all, false)

	flat := make([]note.Position, 0, len(all))
	for _, g := range groups {
		flat = append(flat, g...)
	}
	require.Equal(t, all, flat)
}

func TestPartitionBoundaryProperty(t *testing.T) {
	all := note.NewRange(
		note.Position{Letter: 'C', Octave: 3},
		note.Position{Letter: 'B', Octave: 4},
	).All()

	groups := keybed.Partition(all, false)

	// A group starts exactly where two naturals are adjacent in the input.
	starts := make(map[string]bool)
	for _, g := range groups[1:] {
		starts[g[0].Name()] = true
	}
	for i := 1; i < len(all); i++ {
		isBoundary := !all[i].IsAccidental() && !all[i-1].IsAccidental()
		require.Equal(t, isBoundary, starts[all[i].Name()], "position %s", all[i].Name())
	}
}

func TestAlternativeSpellingKeepsBoundaries(t *testing.T) {
	all := octave(4).All()

	sharps := keybed.Partition(all, false)
	flats := keybed.Partition(all, true)

	require.Len(t, flats, len(sharps))
	for i := range sharps {
		require.Len(t, flats[i], len(sharps[i]))
	}
	// Naming changed, ordering did not.
	require.Equal(t, "D♭4", flats[0][1].Name())
	require.Equal(t, "C♯4", sharps[0][1].Name())
}

func TestGroupNaturals(t *testing.T) {
	groups := keybed.Partition(octave(4).All(), false)

	require.Equal(t, []string{"C4", "D4", "E4"}, names(groups[0].Naturals()))
	require.Equal(t, []string{"F4", "G4", "A4", "B4"}, names(groups[1].Naturals()))

	// Concatenated group naturals reproduce the range's natural sequence.
	var flat []note.Position
	for _, g := range groups {
		flat = append(flat, g.Naturals()...)
	}
	require.Equal(t, octave(4).Naturals(), flat)
}

func TestPartitionEdgeCases(t *testing.T) {
	require.Empty(t, keybed.Partition(nil, false))

	single := []note.Position{{Letter: 'C', Octave: 4}}
	groups := keybed.Partition(single, false)
	require.Len(t, groups, 1)
	require.Equal(t, []string{"C4"}, names(groups[0]))

	// An accidental with no preceding natural stays in the first group.
	leading := note.NewRange(
		note.Position{Letter: 'C', Octave: 4, Accidental: note.Sharp},
		note.Position{Letter: 'E', Octave: 4},
	).All()
	groups = keybed.Partition(leading, false)
	require.Len(t, groups, 1)
	require.Equal(t, []string{"C♯4", "D4", "D♯4", "E4"}, names(groups[0]))
}
