package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf)

	l.Debug("hidden")
	l.Info("shown")
	assert.Equal(t, "[INFO] shown\n", buf.String())

	buf.Reset()
	l.SetLevel(DebugLevel)
	l.Debug("now shown")
	assert.Equal(t, "[DEBUG] now shown\n", buf.String())
}

func TestFieldsAreSortedAndMerged(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf).WithFields(Fields{"key": "C major", "b": 2})

	l.Warn("careful", Fields{"a": 1, "b": 3})
	assert.Equal(t, "[WARN] careful a=1 b=3 key=C major\n", buf.String())
}

func TestErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	NewWriterLogger(&buf).Error(errors.New("disk full"), "could not write")
	assert.Equal(t, "[ERROR] could not write: disk full\n", buf.String())
}

func TestSetGlobalLoggerNil(t *testing.T) {
	prev := GetGlobalLogger()
	defer SetGlobalLogger(prev)

	SetGlobalLogger(nil)
	assert.IsType(t, &NoOpLogger{}, GetGlobalLogger())
	Info("goes nowhere")
}
