package theory

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

var (
	ErrInvalidKey  = errors.New("invalid key")
	ErrInvalidMode = errors.New("key mode must be major or minor")
)

type Mode int

const (
	// zero value is deliberately not a usable mode
	ModeUnknown Mode = iota
	Major
	Minor
)

func (m Mode) String() string {
	switch m {
	case Major:
		return "major"
	case Minor:
		return "minor"
	default:
		return "unknown"
	}
}

// ScaleOctave is where ScalePitches puts the tonic.
const ScaleOctave = 4

var (
	majorSteps = [7]int{0, 2, 4, 5, 7, 9, 11}
	minorSteps = [7]int{0, 2, 3, 5, 7, 8, 10}
)

type Key struct {
	Tonic Note
	Mode  Mode
}

func NewKey(tonic Note, mode Mode) (Key, error) {
	k := Key{Tonic: tonic, Mode: mode}
	if err := k.Validate(); err != nil {
		return Key{}, err
	}
	return k, nil
}

func (k Key) Validate() error {
	if k.Mode != Major && k.Mode != Minor {
		return errors.Wrapf(ErrInvalidMode, "got mode %d", int(k.Mode))
	}
	return nil
}

// String renders "C major" or "a minor".
func (k Key) String() string {
	name := k.Tonic.String()
	if k.Mode == Minor {
		name = strings.ToLower(name[:1]) + name[1:]
	}
	return name + " " + k.Mode.String()
}

// Name is the short form accepted by ParseKey: "C" or "Am".
func (k Key) Name() string {
	if k.Mode == Minor {
		return k.Tonic.String() + "m"
	}
	return k.Tonic.String()
}

func (k Key) steps() [7]int {
	if k.Mode == Minor {
		return minorSteps
	}
	return majorSteps
}

// ScalePitches spells the seven scale tones ascending from the tonic in
// ScaleOctave. The octave copy of the tonic is not included.
func (k Key) ScalePitches() ([]Pitch, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}

	steps := k.steps()
	tonicPC := k.Tonic.PitchClass()
	res := make([]Pitch, 0, len(steps))
	for i, step := range steps {
		letterIdx := int(k.Tonic.Letter) + i
		letter := Letter(letterIdx % 7)
		alter := mod12(tonicPC+step-letterSemitones[letter])
		if alter > 6 {
			alter -= 12
		}
		res = append(res, Pitch{
			Note:   Note{Letter: letter, Alter: alter},
			Octave: ScaleOctave + letterIdx/7,
		})
	}
	return res, nil
}

// ParseKey accepts "C", "F#", "Bb", "Am", "C#m", "Ebmin", "Cmaj",
// "C major" and "a minor". A bare lowercase tonic such as "c" means minor.
func ParseKey(s string) (Key, error) {
	fields := strings.Fields(s)
	var tonic string
	mode := ModeUnknown

	switch len(fields) {
	case 1:
		tonic = fields[0]
		lower := strings.ToLower(tonic)
		switch {
		case len(tonic) > 3 && strings.HasSuffix(lower, "maj"):
			tonic, mode = tonic[:len(tonic)-3], Major
		case len(tonic) > 3 && strings.HasSuffix(lower, "min"):
			tonic, mode = tonic[:len(tonic)-3], Minor
		case len(tonic) > 1 && strings.HasSuffix(tonic, "m"):
			tonic, mode = tonic[:len(tonic)-1], Minor
		}
	case 2:
		tonic = fields[0]
		switch strings.ToLower(fields[1]) {
		case "major", "maj":
			mode = Major
		case "minor", "min":
			mode = Minor
		default:
			return Key{}, errors.Wrapf(ErrInvalidKey, "unknown mode %q", fields[1])
		}
	default:
		return Key{}, errors.Wrapf(ErrInvalidKey, "cannot parse %q", s)
	}

	note, err := ParseNote(tonic)
	if err != nil {
		return Key{}, errors.Wrapf(ErrInvalidKey, "cannot parse %q: %v", s, err)
	}
	if mode == ModeUnknown {
		mode = Major
		if unicode.IsLower(rune(tonic[0])) {
			mode = Minor
		}
	}
	return Key{Tonic: note, Mode: mode}, nil
}
