// Package note models piano key positions and contiguous note ranges.
// Ordering and octave math follow MIDI numbering with C4 = 60.
package note

import (
	"fmt"
	"strconv"
	"unicode"
)

type (
	// Accidental is the chromatic alteration applied to a note letter.
	Accidental int

	// Position identifies a single key on the strip. Two positions are the
	// same key only when letter, octave and accidental all match; a note and
	// its enharmonic alternative are NOT equal.
	Position struct {
		// Letter name, 'A' through 'G'.
		Letter rune
		// Scientific octave number. Octave 4 contains middle C.
		Octave int

		Accidental Accidental
	}

	// Range is an ordered, contiguous, ascending run of positions.
	Range struct {
		From Position
		To   Position
	}
)

const (
	None Accidental = iota
	Sharp
	Flat
)

// Semitone offset of each letter within an octave, relative to C.
var letterSemis = map[rune]int{
	'C': 0,
	'D': 2,
	'E': 4,
	'F': 5,
	'G': 7,
	'A': 9,
	'B': 11,
}

// Sharp-first spelling of each semitone within an octave.
var semiNames = []struct {
	letter     rune
	accidental Accidental
}{
	{'C', None},
	{'C', Sharp},
	{'D', None},
	{'D', Sharp},
	{'E', None},
	{'F', None},
	{'F', Sharp},
	{'G', None},
	{'G', Sharp},
	{'A', None},
	{'A', Sharp},
	{'B', None},
}

// MiddleC is the default centering target.
func MiddleC() Position {
	return Position{Letter: 'C', Octave: 4}
}

// FromMIDI builds the sharp-spelled position for a MIDI note number.
func FromMIDI(n int) Position {
	s := semiNames[((n%12)+12)%12]
	return Position{
		Letter:     s.letter,
		Octave:     n/12 - 1,
		Accidental: s.accidental,
	}
}

// MIDI returns the note number for the position, C4 = 60.
func (p Position) MIDI() int {
	n := (p.Octave+1)*12 + letterSemis[p.Letter]
	switch p.Accidental {
	case Sharp:
		n++
	case Flat:
		n--
	}
	return n
}

// Name is the canonical display name, ex: "C4", "C♯4", "D♭4".
func (p Position) Name() string {
	glyph := ""
	switch p.Accidental {
	case Sharp:
		glyph = "♯"
	case Flat:
		glyph = "♭"
	}
	return fmt.Sprintf("%c%s%d", p.Letter, glyph, p.Octave)
}

func (p Position) String() string { return p.Name() }

// IsAccidental denotes a sharp/flat ie. "black" key.
func (p Position) IsAccidental() bool {
	return p.Accidental != None
}

// Natural strips the accidental, keeping the letter and octave.
func (p Position) Natural() Position {
	p.Accidental = None
	return p
}

// Alternative returns the enharmonic spelling of the same physical key,
// ex: C♯4 ↔ D♭4. Natural notes have no alternative.
func (p Position) Alternative() (Position, bool) {
	switch p.Accidental {
	case Sharp:
		switch p.Letter {
		case 'C', 'D', 'F', 'G':
			return Position{Letter: p.Letter + 1, Octave: p.Octave, Accidental: Flat}, true
		case 'A':
			return Position{Letter: 'B', Octave: p.Octave, Accidental: Flat}, true
		}
	case Flat:
		switch p.Letter {
		case 'D', 'E', 'G', 'A':
			return Position{Letter: p.Letter - 1, Octave: p.Octave, Accidental: Sharp}, true
		case 'B':
			return Position{Letter: 'A', Octave: p.Octave, Accidental: Sharp}, true
		}
	}
	return Position{}, false
}

// Parse reads a note name, ex: "C4", "F♯3", "B♭2". ASCII "#" and "b" are
// accepted in place of the accidental glyphs, the letter in either case.
func Parse(s string) (Position, error) {
	runes := []rune(s)
	if len(runes) < 2 {
		return Position{}, fmt.Errorf("parse %q: want letter, optional accidental, octave", s)
	}

	letter := unicode.ToUpper(runes[0])
	if _, ok := letterSemis[letter]; !ok {
		return Position{}, fmt.Errorf("parse %q: no note letter %q", s, string(runes[0]))
	}

	accidental := None
	rest := runes[1:]
	switch rest[0] {
	case '♯', '#':
		accidental = Sharp
		rest = rest[1:]
	case '♭', 'b':
		accidental = Flat
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(string(rest))
	if err != nil {
		return Position{}, fmt.Errorf("parse %q: bad octave: %w", s, err)
	}
	return Position{Letter: letter, Octave: octave, Accidental: accidental}, nil
}

// NewRange builds a range between two positions, swapping the endpoints if
// given in descending order.
func NewRange(from, to Position) Range {
	if from.MIDI() > to.MIDI() {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// IsZero reports whether the range has not been set.
func (r Range) IsZero() bool {
	return r.From.Letter == 0 || r.To.Letter == 0
}

// All returns the full ordered position sequence, naturals interleaved with
// sharp-spelled accidentals per piano layout.
func (r Range) All() []Position {
	if r.IsZero() || r.From.MIDI() > r.To.MIDI() {
		return nil
	}
	positions := make([]Position, 0, r.To.MIDI()-r.From.MIDI()+1)
	for n := r.From.MIDI(); n <= r.To.MIDI(); n++ {
		positions = append(positions, FromMIDI(n))
	}
	return positions
}

// Naturals returns the natural-only subsequence. Accidental keys are drawn
// as overlays, so width and scroll math run on this sequence.
func (r Range) Naturals() []Position {
	all := r.All()
	naturals := make([]Position, 0, len(all))
	for _, p := range all {
		if !p.IsAccidental() {
			naturals = append(naturals, p)
		}
	}
	return naturals
}
