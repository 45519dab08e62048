package progression

import (
	"github.com/jsphweid/randprog/constants"
	"github.com/jsphweid/randprog/logging"
	"github.com/jsphweid/randprog/model"
	"github.com/jsphweid/randprog/theory"
	"github.com/pkg/errors"
)

var ErrInvalidLength = errors.Errorf("length must be between %d and %d", constants.MinLength, constants.MaxLength)

// Rand is the slice of *math/rand.Rand the generator draws from.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Sample picks a progression of length chords in k. The tonic always comes
// first and the rest are distinct diatonic chords in random order.
func Sample(r Rand, t theory.Theory, k theory.Key, length int) (model.Progression, error) {
	if length < constants.MinLength || length > constants.MaxLength {
		return model.Progression{}, errors.Wrapf(ErrInvalidLength, "got %d", length)
	}

	numerals, err := DeriveNumerals(t, k)
	if err != nil {
		return model.Progression{}, err
	}
	tonic := numerals[0]

	rest := make([]model.DiatonicChord, len(numerals)-1)
	copy(rest, numerals[1:])
	r.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})

	chords := append([]model.DiatonicChord{tonic}, rest[:length-1]...)
	p := model.Progression{Key: k, Chords: chords}
	logging.Debug("sampled progression", logging.Fields{"key": k, "figures": p.Figures()})
	return p, nil
}

// tonics spelled the way a random key is named
var randomTonics = [12]theory.Note{
	{Letter: theory.C}, {Letter: theory.C, Alter: 1}, {Letter: theory.D}, {Letter: theory.E, Alter: -1},
	{Letter: theory.E}, {Letter: theory.F}, {Letter: theory.F, Alter: 1}, {Letter: theory.G},
	{Letter: theory.G, Alter: 1}, {Letter: theory.A}, {Letter: theory.B, Alter: -1}, {Letter: theory.B},
}

// RandomKey draws one of the 12 tonics and flips a coin for major or minor.
func RandomKey(r Rand) theory.Key {
	k := theory.Key{Tonic: randomTonics[r.Intn(len(randomTonics))], Mode: theory.Major}
	if r.Intn(2) == 1 {
		k.Mode = theory.Minor
	}
	return k
}
