package model

import (
	"github.com/jsphweid/randprog/theory"
)

type Notes = []uint8

// DiatonicChord is the triad built on one scale degree of a key.
type DiatonicChord struct {
	// 0 is the tonic
	Degree  int
	Pitches []theory.Pitch
	Figure  string
	Quality theory.Quality
}

func (c DiatonicChord) Root() theory.Pitch {
	return c.Pitches[0]
}

// Chord is a set of notes found sounding together in a MIDI file.
type Chord struct {
	AbsTickOffset  uint32
	Notes          Notes
	FormedByNoteOn bool
}
