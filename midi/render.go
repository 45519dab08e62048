package midi

import (
	"sort"

	"github.com/jsphweid/randprog/constants"
	"github.com/jsphweid/randprog/model"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type noteEvent struct {
	tick uint32
	key  uint8
	on   bool
}

type voicer func(c model.DiatonicChord, start uint32, clock smf.MetricTicks) []noteEvent

func chordKeys(c model.DiatonicChord, octave int) []uint8 {
	var keys []uint8
	for _, p := range c.Pitches {
		keys = append(keys, uint8(p.InOctave(octave).MIDI()))
	}
	return keys
}

// blockEvents strikes the triad in the chord octave, with the root an
// octave below, once per beat.
func blockEvents(c model.DiatonicChord, start uint32, clock smf.MetricTicks) []noteEvent {
	keys := chordKeys(c, constants.ChordOctave)
	keys = append(keys, uint8(c.Root().InOctave(constants.BassOctave).MIDI()))

	var res []noteEvent
	beat := clock.Ticks4th()
	for i := uint32(0); i < constants.BeatsPerChord; i++ {
		on := start + i*beat
		for _, key := range keys {
			res = append(res,
				noteEvent{tick: on, key: key, on: true},
				noteEvent{tick: on + beat, key: key, on: false},
			)
		}
	}
	return res
}

// arpeggioEvents starts the bass on the downbeat and brings the triad in
// from the bottom one eighth note at a time. Everything is released at the
// end of the chord.
func arpeggioEvents(c model.DiatonicChord, start uint32, clock smf.MetricTicks) []noteEvent {
	end := start + clock.Ticks4th()*constants.BeatsPerChord

	bass := c.Root().InOctave(constants.BassOctave).MIDI()
	for bass >= constants.BassThreshold {
		bass -= 12
	}
	res := []noteEvent{
		{tick: start, key: uint8(bass), on: true},
		{tick: end, key: uint8(bass), on: false},
	}

	keys := chordKeys(c, constants.ChordOctave)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	for i, key := range keys {
		on := start + uint32(i+1)*clock.Ticks8th()
		res = append(res,
			noteEvent{tick: on, key: key, on: true},
			noteEvent{tick: end, key: key, on: false},
		)
	}
	return res
}

func voicerFor(mode model.RenderMode) (voicer, error) {
	switch mode {
	case model.RenderBlock:
		return blockEvents, nil
	case model.RenderArpeggio:
		return arpeggioEvents, nil
	}
	return nil, errors.Wrapf(model.ErrInvalidRenderMode, "got %q", mode)
}

// Build renders the progression as a single track SMF, looped
// constants.Loops times with one bar per chord.
func Build(p model.Progression, mode model.RenderMode) (*smf.SMF, error) {
	voice, err := voicerFor(mode)
	if err != nil {
		return nil, err
	}
	if len(p.Chords) == 0 {
		return nil, errors.New("cannot render an empty progression")
	}

	clock := smf.MetricTicks(constants.TicksPerQuarter)
	chordTicks := clock.Ticks4th() * constants.BeatsPerChord

	var events []noteEvent
	var start uint32
	for loop := 0; loop < constants.Loops; loop++ {
		for _, c := range p.Chords {
			events = append(events, voice(c, start, clock)...)
			start += chordTicks
		}
	}

	// note offs go before note ons on the same tick so repeated keys retrigger
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return !events[i].on && events[j].on
	})

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(p.Key.String()))
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaTempo(constants.Tempo))

	var last uint32
	for _, ev := range events {
		msg := gomidi.NoteOff(0, ev.key)
		if ev.on {
			msg = gomidi.NoteOn(0, ev.key, constants.Velocity)
		}
		tr.Add(ev.tick-last, msg)
		last = ev.tick
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	if err := s.Add(tr); err != nil {
		return nil, errors.Wrap(err, "could not add track")
	}
	return s, nil
}
