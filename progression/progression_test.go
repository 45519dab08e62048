package progression

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/jsphweid/randprog/model"
	"github.com/jsphweid/randprog/theory"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustKey(t *testing.T, s string) theory.Key {
	k, err := theory.ParseKey(s)
	require.NoError(t, err)
	return k
}

func allKeys(t *testing.T) []theory.Key {
	var keys []theory.Key
	for _, tonic := range []string{"C", "C#", "Db", "D", "Eb", "E", "F", "F#", "Gb", "G", "G#", "Ab", "A", "A#", "Bb", "B", "Cb"} {
		keys = append(keys, mustKey(t, tonic), mustKey(t, tonic+"m"))
	}
	return keys
}

func figures(chords []model.DiatonicChord) []string {
	var res []string
	for _, c := range chords {
		res = append(res, c.Figure)
	}
	return res
}

func TestDeriveNumeralsCMajor(t *testing.T) {
	chords, err := DeriveNumerals(theory.Standard{}, mustKey(t, "C"))
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal([]string{"I", "ii", "iii", "IV", "V", "vi", "viio"}, figures(chords))

	var names []string
	for _, p := range chords[6].Pitches {
		names = append(names, p.String())
	}
	assert.Equal([]string{"B4", "D5", "F5"}, names)
	assert.Equal(theory.QualityDiminished, chords[6].Quality)
}

func TestDeriveNumeralsAMinor(t *testing.T) {
	chords, err := DeriveNumerals(theory.Standard{}, mustKey(t, "Am"))
	require.NoError(t, err)
	assert.Equal(t, []string{"i", "iio", "III", "iv", "v", "bVI", "bVII"}, figures(chords))
}

func TestDeriveNumeralsAllKeys(t *testing.T) {
	for _, k := range allKeys(t) {
		t.Run(k.String(), func(t *testing.T) {
			chords, err := DeriveNumerals(theory.Standard{}, k)
			require.NoError(t, err)

			assert := assert.New(t)
			assert.Len(chords, 7)
			for i, c := range chords {
				assert.Equal(i, c.Degree)
				assert.Len(c.Pitches, 3)
				classes := map[int]bool{}
				for _, p := range c.Pitches {
					classes[p.PitchClass()] = true
				}
				assert.Len(classes, 3, "degree %d", i)
			}

			if k.Mode == theory.Major {
				assert.Equal([]string{"I", "ii", "iii", "IV", "V", "vi", "viio"}, figures(chords))
			} else {
				assert.Equal("i", chords[0].Figure)
				assert.Equal("bVI", chords[5].Figure)
				assert.Equal("bVII", chords[6].Figure)
			}
		})
	}
}

func TestDeriveNumeralsRejectsUnknownMode(t *testing.T) {
	_, err := DeriveNumerals(theory.Standard{}, theory.Key{Tonic: theory.Note{Letter: theory.C}})
	assert.True(t, errors.Is(err, theory.ErrInvalidMode))
}

type brokenTheory struct {
	theory.Standard
}

func (brokenTheory) RomanNumeralFor(triad []theory.Pitch, k theory.Key) (string, error) {
	return "", errors.New("no numerals today")
}

func TestDeriveNumeralsPropagatesLabelErrors(t *testing.T) {
	_, err := DeriveNumerals(brokenTheory{}, mustKey(t, "C"))
	assert.ErrorContains(t, err, "no numerals today")
}

func TestSampleLengths(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, k := range allKeys(t) {
		for length := 1; length <= 6; length++ {
			name := fmt.Sprintf("%v length %d", k, length)
			t.Run(name, func(t *testing.T) {
				p, err := Sample(r, theory.Standard{}, k, length)
				require.NoError(t, err)

				assert := assert.New(t)
				assert.Equal(k, p.Key)
				assert.Len(p.Chords, length)
				assert.Equal(0, p.Chords[0].Degree)

				seen := map[int]bool{}
				for _, d := range p.Degrees() {
					assert.False(seen[d], "degree %d repeated", d)
					assert.True(d >= 0 && d <= 6)
					seen[d] = true
				}
			})
		}
	}
}

func TestSampleCMajorLengthFour(t *testing.T) {
	p, err := Sample(rand.New(rand.NewSource(7)), theory.Standard{}, mustKey(t, "C"), 4)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("I", p.Chords[0].Figure)
	assert.Len(p.Chords, 4)
}

func TestSampleAMinorLengthOne(t *testing.T) {
	p, err := Sample(rand.New(rand.NewSource(7)), theory.Standard{}, mustKey(t, "Am"), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"i"}, p.Figures())
}

func TestSampleLengthSixUsesEveryChord(t *testing.T) {
	p, err := Sample(rand.New(rand.NewSource(3)), theory.Standard{}, mustKey(t, "Eb"), 6)
	require.NoError(t, err)

	assert := assert.New(t)
	// the tonic plus five of the six other chords
	assert.Len(p.Chords, 6)
	assert.Equal(0, p.Chords[0].Degree)
	assert.Subset([]int{1, 2, 3, 4, 5, 6}, p.Degrees()[1:])

	seen := map[int]bool{}
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 50; i++ {
		p, err := Sample(r, theory.Standard{}, mustKey(t, "Eb"), 6)
		require.NoError(t, err)
		for _, d := range p.Degrees() {
			seen[d] = true
		}
	}
	assert.Len(seen, 7)
}

func TestSampleRejectsBadLength(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, length := range []int{-1, 0, 7, 8} {
		_, err := Sample(r, theory.Standard{}, mustKey(t, "C"), length)
		assert.True(t, errors.Is(err, ErrInvalidLength), "length %d", length)
	}
}

func TestSampleShuffleIsFair(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	k := mustKey(t, "G")
	const trials = 6000

	// counts[position][degree]
	counts := make([]map[int]int, 5)
	for i := range counts {
		counts[i] = map[int]int{}
	}
	for i := 0; i < trials; i++ {
		p, err := Sample(r, theory.Standard{}, k, 6)
		require.NoError(t, err)
		for pos, c := range p.Chords[1:] {
			counts[pos][c.Degree]++
		}
	}

	for pos, byDegree := range counts {
		assert.Len(t, byDegree, 6, "position %d", pos+1)
		for degree, n := range byDegree {
			assert.InDelta(t, trials/6, n, 200, "position %d degree %d", pos+1, degree)
		}
	}
}

func TestRandomKeyIsFair(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	const trials = 12000

	tonics := map[int]int{}
	modes := map[theory.Mode]int{}
	for i := 0; i < trials; i++ {
		k := RandomKey(r)
		require.NoError(t, k.Validate())
		tonics[k.Tonic.PitchClass()]++
		modes[k.Mode]++
	}

	assert := assert.New(t)
	assert.Len(tonics, 12)
	for pc, n := range tonics {
		assert.InDelta(trials/12, n, 200, "pitch class %d", pc)
	}
	assert.Len(modes, 2)
	assert.InDelta(trials/2, modes[theory.Major], 400)
	assert.InDelta(trials/2, modes[theory.Minor], 400)
}
