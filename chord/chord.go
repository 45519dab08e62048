package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/randprog/model"
	"github.com/jsphweid/randprog/theory"
	"github.com/jsphweid/randprog/util"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrNoNotes = errors.New("no notes found")

func CreateChordKey(notes []uint8) string {
	sorted := make([]uint8, len(notes))
	copy(sorted, notes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", note)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

type reducedEvent struct {
	tick      uint32
	isNoteOff bool
	note      uint8
}

func getChord(tick uint32, pressed map[uint8]bool, formedByNoteOn bool) model.Chord {
	notes := util.GetKeysSorted(pressed)
	return model.Chord{AbsTickOffset: tick, Notes: notes, FormedByNoteOn: formedByNoteOn}
}

// GetChords returns the notes sounding after every tick where something
// changed, in time order. Ticks where nothing is left sounding are skipped.
func GetChords(s *smf.SMF) ([]model.Chord, error) {
	var reducedEvents []reducedEvent
	for _, events := range s.Tracks {
		var absTicks uint32
		for _, event := range events {
			absTicks += event.Delta
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{tick: absTicks, note: key})
			case event.Message.GetNoteEnd(&channel, &key):
				reducedEvents = append(reducedEvents, reducedEvent{tick: absTicks, note: key, isNoteOff: true})
			}
		}
	}
	if len(reducedEvents) == 0 {
		return nil, ErrNoNotes
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].tick != reducedEvents[j].tick {
			return reducedEvents[i].tick < reducedEvents[j].tick
		}
		return reducedEvents[i].isNoteOff && !reducedEvents[j].isNoteOff
	})

	var chords []model.Chord
	pressed := make(map[uint8]bool)
	formedByNoteOn := false
	for i, evt := range reducedEvents {
		if evt.isNoteOff {
			delete(pressed, evt.note)
		} else {
			pressed[evt.note] = true
			formedByNoteOn = true
		}

		lastAtTick := i == len(reducedEvents)-1 || reducedEvents[i+1].tick != evt.tick
		if lastAtTick {
			if len(pressed) > 0 {
				chords = append(chords, getChord(evt.tick, pressed, formedByNoteOn))
			}
			formedByNoteOn = false
		}
	}
	return chords, nil
}

// Name spells the notes with flats and names the triad they form.
func Name(notes model.Notes) (string, error) {
	var pitches []theory.Pitch
	for _, n := range notes {
		pitches = append(pitches, theory.PitchFromMIDI(int(n)))
	}
	return theory.ChordNameFor(pitches)
}
