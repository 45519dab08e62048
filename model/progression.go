package model

import (
	"github.com/jsphweid/randprog/theory"
	"github.com/pkg/errors"
)

var ErrInvalidRenderMode = errors.New("render mode must be \"1\" or \"2\"")

type Progression struct {
	Key    theory.Key
	Chords []DiatonicChord
}

func (p Progression) Figures() []string {
	res := make([]string, 0, len(p.Chords))
	for _, c := range p.Chords {
		res = append(res, c.Figure)
	}
	return res
}

func (p Progression) Degrees() []int {
	res := make([]int, 0, len(p.Chords))
	for _, c := range p.Chords {
		res = append(res, c.Degree)
	}
	return res
}

type RenderMode string

const (
	RenderBlock    RenderMode = "1"
	RenderArpeggio RenderMode = "2"
)

func ParseRenderMode(s string) (RenderMode, error) {
	switch m := RenderMode(s); m {
	case RenderBlock, RenderArpeggio:
		return m, nil
	}
	return "", errors.Wrapf(ErrInvalidRenderMode, "got %q", s)
}

// Options are the knobs of a single generate run.
type Options struct {
	Key    string
	Length int
	Mode   RenderMode
	OutDir string
	Count  int
	Seed   int64
}

type OutputPaths struct {
	Dir  string
	Text string
	Midi string
}

// Result is what one generate run produced.
type Result struct {
	Progression Progression
	Paths       OutputPaths
}
