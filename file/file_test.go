package file

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jsphweid/randprog/model"
	"github.com/stretchr/testify/assert"
)

func TestCreateOutputPaths(t *testing.T) {
	p := CreateOutputPaths("out")

	assert := assert.New(t)
	assert.Equal("out", p.Dir)
	assert.Equal(filepath.Join("out", "progression.txt"), p.Text)
	assert.Equal(filepath.Join("out", "progression.mid"), p.Midi)
}

func TestCreateBatchPathsSingle(t *testing.T) {
	assert.Equal(t, []string{"out"}, dirs(CreateBatchPaths("out", 1)))
	assert.Equal(t, []string{"out"}, dirs(CreateBatchPaths("out", 0)))
}

func TestCreateBatchPathsUsesUniqueDirs(t *testing.T) {
	paths := CreateBatchPaths("out", 3)

	assert := assert.New(t)
	assert.Len(paths, 3)
	seen := map[string]bool{}
	for _, p := range paths {
		assert.Equal("out", filepath.Dir(p.Dir))
		_, err := uuid.Parse(filepath.Base(p.Dir))
		assert.NoError(err)
		assert.False(seen[p.Dir])
		seen[p.Dir] = true
	}
}

func dirs(paths []model.OutputPaths) []string {
	var res []string
	for _, p := range paths {
		res = append(res, p.Dir)
	}
	return res
}
