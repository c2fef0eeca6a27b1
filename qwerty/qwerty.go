// Package qwerty is the fixed mapping between note names and physical
// keyboard keys. The table covers C2–A♯5; notes outside it simply cannot be
// triggered from the keyboard, which is a silent no-op rather than an error.
package qwerty

import "github.com/rapidmidiex/pianotui/note"

// One keyboard row per octave, laddered bottom-left to top-right so bass
// sits under the left hand. Each octave starts on the second key of its row
// and a sharp is the shifted form of the natural key before it.
var octaveRows = []struct {
	octave int
	labels []string
}{
	{2, []string{"2", "@", "3", "#", "4", "5", "%", "6", "^", "7", "&", "8"}},
	{3, []string{"x", "X", "c", "C", "v", "b", "B", "n", "N", "m", "M", ","}},
	{4, []string{"s", "S", "d", "D", "f", "g", "G", "h", "H", "j", "J", "k"}},
	{5, []string{"w", "W", "e", "E", "r", "t", "T", "y", "Y", "u", "U"}},
}

var (
	labelByName map[string]string
	noteByLabel map[string]note.Position
)

func init() {
	labelByName = make(map[string]string)
	noteByLabel = make(map[string]note.Position)

	for _, row := range octaveRows {
		c := note.Position{Letter: 'C', Octave: row.octave}
		for i, label := range row.labels {
			p := note.FromMIDI(c.MIDI() + i)
			labelByName[p.Name()] = label
			noteByLabel[label] = p
		}
	}
}

// Label returns the physical key for a note. Flat spellings are normalized
// through their sharp alternative before lookup. The second return is false
// for notes outside the mapped range.
func Label(p note.Position) (string, bool) {
	if p.Accidental == note.Flat {
		if alt, ok := p.Alternative(); ok {
			p = alt
		}
	}
	label, ok := labelByName[p.Name()]
	return label, ok
}

// NoteFor reverse-translates a raw input key into its note. The second
// return is false when the key is not in the table.
func NoteFor(label string) (note.Position, bool) {
	p, ok := noteByLabel[label]
	return p, ok
}

// Size is the number of mapped keys.
func Size() int { return len(noteByLabel) }
