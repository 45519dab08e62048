package theory

import (
	"strings"

	"github.com/jsphweid/randprog/util"
	"github.com/pkg/errors"
)

var ErrUnknownChord = errors.New("unknown chord")

type Quality int

const (
	QualityUnknown Quality = iota
	QualityMajor
	QualityMinor
	QualityDiminished
	QualityAugmented
)

func (q Quality) String() string {
	switch q {
	case QualityMajor:
		return "major"
	case QualityMinor:
		return "minor"
	case QualityDiminished:
		return "diminished"
	case QualityAugmented:
		return "augmented"
	default:
		return "unknown"
	}
}

// semitones above the root of the third and fifth
var triadShapes = map[[2]int]Quality{
	{4, 7}: QualityMajor,
	{3, 7}: QualityMinor,
	{3, 6}: QualityDiminished,
	{4, 8}: QualityAugmented,
}

// TriadQuality classifies a root-position triad given as root, third, fifth.
func TriadQuality(triad []Pitch) (Quality, error) {
	if len(triad) != 3 {
		return QualityUnknown, errors.Wrapf(ErrUnknownChord, "triad needs 3 pitches, got %d", len(triad))
	}
	root := triad[0].PitchClass()
	shape := [2]int{
		mod12(triad[1].PitchClass() - root),
		mod12(triad[2].PitchClass() - root),
	}
	q, ok := triadShapes[shape]
	if !ok {
		return QualityUnknown, errors.Wrapf(ErrUnknownChord, "no triad with intervals %v", shape)
	}
	return q, nil
}

var numerals = [7]string{"I", "II", "III", "IV", "V", "VI", "VII"}

// Reference intervals an unaltered numeral is measured against. In minor
// the sixth and seventh are taken from the raised forms, so the natural
// minor submediant and subtonic always come out as bVI and bVII.
var (
	majorReference = majorSteps
	minorReference = [7]int{0, 2, 3, 5, 7, 9, 11}
)

// RomanNumeralFor labels a root-position triad relative to k.
func RomanNumeralFor(triad []Pitch, k Key) (string, error) {
	if err := k.Validate(); err != nil {
		return "", err
	}
	quality, err := TriadQuality(triad)
	if err != nil {
		return "", err
	}

	root := triad[0]
	degree := ((int(root.Letter)-int(k.Tonic.Letter))%7 + 7) % 7
	reference := majorReference
	if k.Mode == Minor {
		reference = minorReference
	}

	offset := mod12(root.PitchClass() - k.Tonic.PitchClass() - reference[degree])
	if offset > 6 {
		offset -= 12
	}

	var figure strings.Builder
	if offset < 0 {
		figure.WriteString(strings.Repeat("b", -offset))
	} else {
		figure.WriteString(strings.Repeat("#", offset))
	}

	switch quality {
	case QualityMajor:
		figure.WriteString(numerals[degree])
	case QualityAugmented:
		figure.WriteString(numerals[degree] + "+")
	case QualityMinor:
		figure.WriteString(strings.ToLower(numerals[degree]))
	case QualityDiminished:
		figure.WriteString(strings.ToLower(numerals[degree]) + "o")
	}
	return figure.String(), nil
}

// ChordNameFor finds the triad formed by pitches in any voicing and names
// it after its root, e.g. "Bb major triad". Doubled tones are ignored.
func ChordNameFor(pitches []Pitch) (string, error) {
	var notes []Note
	var classes []int
	for _, p := range pitches {
		if !util.Contains(classes, p.PitchClass()) {
			classes = append(classes, p.PitchClass())
			notes = append(notes, p.Note)
		}
	}
	if len(notes) != 3 {
		return "", errors.Wrapf(ErrUnknownChord, "need 3 distinct pitch classes, got %d", len(notes))
	}

	for i, root := range notes {
		third := notes[(i+1)%3]
		fifth := notes[(i+2)%3]
		for _, order := range [][2]Note{{third, fifth}, {fifth, third}} {
			shape := [2]int{
				mod12(order[0].PitchClass() - root.PitchClass()),
				mod12(order[1].PitchClass() - root.PitchClass()),
			}
			if q, ok := triadShapes[shape]; ok {
				return root.String() + " " + q.String() + " triad", nil
			}
		}
	}
	return "", errors.Wrapf(ErrUnknownChord, "pitches %v", pitches)
}
