// Package theory holds the music primitives the generator builds on:
// spelled notes and pitches, major/minor keys, triad qualities, roman
// numeral figures and common chord names.
package theory

// Theory is the set of lookups progression generation and rendering need.
// Standard is the only implementation; tests swap in fakes.
type Theory interface {
	ScalePitches(k Key) ([]Pitch, error)
	RomanNumeralFor(triad []Pitch, k Key) (string, error)
	ChordNameFor(pitches []Pitch) (string, error)
}

type Standard struct{}

func (Standard) ScalePitches(k Key) ([]Pitch, error) {
	return k.ScalePitches()
}

func (Standard) RomanNumeralFor(triad []Pitch, k Key) (string, error) {
	return RomanNumeralFor(triad, k)
}

func (Standard) ChordNameFor(pitches []Pitch) (string, error) {
	return ChordNameFor(pitches)
}
