package theory

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidNote = errors.New("invalid note")

type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

const letterNames = "CDEFGAB"

var letterSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

func (l Letter) String() string {
	return string(letterNames[l])
}

// Note is a spelled pitch class. Alter counts semitones away from the
// natural letter, so Bb is {B, -1} and F## is {F, 2}.
type Note struct {
	Letter Letter
	Alter  int
}

func (n Note) PitchClass() int {
	return mod12(letterSemitones[n.Letter] + n.Alter)
}

func (n Note) String() string {
	var accidental string
	if n.Alter > 0 {
		accidental = strings.Repeat("#", n.Alter)
	} else if n.Alter < 0 {
		accidental = strings.Repeat("b", -n.Alter)
	}
	return n.Letter.String() + accidental
}

// ParseNote reads a note name like "C", "f#", "Bb" or "E-". Both "b" and "-"
// are flats once the letter has been consumed.
func ParseNote(s string) (Note, error) {
	if s == "" {
		return Note{}, errors.Wrap(ErrInvalidNote, "empty note name")
	}

	idx := strings.IndexByte(letterNames, strings.ToUpper(s[:1])[0])
	if idx < 0 {
		return Note{}, errors.Wrapf(ErrInvalidNote, "bad letter in %q", s)
	}

	n := Note{Letter: Letter(idx)}
	for _, r := range s[1:] {
		switch r {
		case '#':
			n.Alter++
		case 'b', '-':
			n.Alter--
		default:
			return Note{}, errors.Wrapf(ErrInvalidNote, "bad accidental %q in %q", r, s)
		}
	}
	if n.Alter > 2 || n.Alter < -2 {
		return Note{}, errors.Wrapf(ErrInvalidNote, "too many accidentals in %q", s)
	}
	return n, nil
}

// Pitch is a note placed in an octave, C4 being middle C.
type Pitch struct {
	Note
	Octave int
}

func (p Pitch) MIDI() int {
	return (p.Octave+1)*12 + letterSemitones[p.Letter] + p.Alter
}

func (p Pitch) String() string {
	return fmt.Sprintf("%v%d", p.Note, p.Octave)
}

// InOctave returns the same note moved to octave.
func (p Pitch) InOctave(octave int) Pitch {
	p.Octave = octave
	return p
}

var flatSpellings = [12]Note{
	{C, 0}, {D, -1}, {D, 0}, {E, -1}, {E, 0}, {F, 0},
	{G, -1}, {G, 0}, {A, -1}, {A, 0}, {B, -1}, {B, 0},
}

// PitchFromMIDI spells a MIDI note number with flats.
func PitchFromMIDI(num int) Pitch {
	return Pitch{Note: flatSpellings[mod12(num)], Octave: num/12 - 1}
}

func mod12(n int) int {
	return ((n % 12) + 12) % 12
}
