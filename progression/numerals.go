package progression

import (
	"github.com/jsphweid/randprog/model"
	"github.com/jsphweid/randprog/theory"
	"github.com/pkg/errors"
)

// DeriveNumerals builds the seven diatonic triads of k, tonic first.
//
//	C:  I ii iii IV V vi viio
//	Am: i iio III iv v bVI bVII
func DeriveNumerals(t theory.Theory, k theory.Key) ([]model.DiatonicChord, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}

	scale, err := t.ScalePitches(k)
	if err != nil {
		return nil, errors.Wrapf(err, "could not get scale of %v", k)
	}
	length := len(scale)

	// second octave so triads on the upper degrees can stack their thirds
	pitches := make([]theory.Pitch, 0, length*2)
	pitches = append(pitches, scale...)
	for _, p := range scale {
		pitches = append(pitches, p.InOctave(p.Octave+1))
	}

	res := make([]model.DiatonicChord, 0, length)
	for step := 0; step < length; step++ {
		triad := []theory.Pitch{pitches[step], pitches[step+2], pitches[step+4]}
		figure, err := t.RomanNumeralFor(triad, k)
		if err != nil {
			return nil, errors.Wrapf(err, "could not label degree %d of %v", step, k)
		}
		quality, err := theory.TriadQuality(triad)
		if err != nil {
			return nil, errors.Wrapf(err, "could not classify degree %d of %v", step, k)
		}
		res = append(res, model.DiatonicChord{
			Degree:  step,
			Pitches: triad,
			Figure:  figure,
			Quality: quality,
		})
	}
	return res, nil
}
