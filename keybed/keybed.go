// Package keybed partitions an ordered note sequence into renderable groups
// of stacked accidentals over a short run of naturals.
package keybed

import "github.com/rapidmidiex/pianotui/note"

// Group is a contiguous slice of the full position sequence, rendered as one
// stacked unit. A new group starts wherever two naturals sit side by side
// with no black key between them (E–F and B–C on a real keyboard).
type Group []note.Position

// Partition splits the full ordered sequence into groups. The concatenation
// of the result reproduces the input order exactly. With useAlternative set,
// every position that has an enharmonic alternative is remapped to it first;
// this changes naming only, never ordering or group boundaries.
func Partition(all []note.Position, useAlternative bool) []Group {
	if len(all) == 0 {
		return nil
	}

	positions := make([]note.Position, len(all))
	for i, p := range all {
		if useAlternative {
			if alt, ok := p.Alternative(); ok {
				p = alt
			}
		}
		positions[i] = p
	}

	groups := make([]Group, 0, len(positions)/2)
	start := 0
	for i := 1; i < len(positions); i++ {
		if !positions[i].IsAccidental() && !positions[i-1].IsAccidental() {
			groups = append(groups, Group(positions[start:i:i]))
			start = i
		}
	}
	return append(groups, Group(positions[start:]))
}

// Naturals returns the natural positions within the group.
func (g Group) Naturals() []note.Position {
	naturals := make([]note.Position, 0, len(g))
	for _, p := range g {
		if !p.IsAccidental() {
			naturals = append(naturals, p)
		}
	}
	return naturals
}
