package midi

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jsphweid/randprog/util"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s, e = &blank, errors.Errorf("Error parsing midi file... %v", r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, errors.Wrap(err, "Error reading midi file...")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.Wrap(err, "Error parsing midi file...")
	}

	return res, nil
}

func WriteMidiFile(filepath string, s *smf.SMF) error {
	return util.WriteFile(filepath, func(f *os.File) error {
		_, err := s.WriteTo(f)
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf("Error writing midi file %v", filepath))
		}
		return nil
	})
}
