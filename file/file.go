package file

import (
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/randprog/constants"
	"github.com/jsphweid/randprog/model"
)

func CreateOutputPaths(dir string) model.OutputPaths {
	return model.OutputPaths{
		Dir:  dir,
		Text: filepath.Join(dir, constants.TextFilename),
		Midi: filepath.Join(dir, constants.MidiFilename),
	}
}

// CreateBatchPaths gives each of n progressions its own directory. A single
// progression is written straight into dir.
func CreateBatchPaths(dir string, n int) []model.OutputPaths {
	if n <= 1 {
		return []model.OutputPaths{CreateOutputPaths(dir)}
	}

	res := make([]model.OutputPaths, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, CreateOutputPaths(filepath.Join(dir, uuid.New().String())))
	}
	return res
}
