package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger_LevelRouting(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	logger := NewLogger(&stdout, &stderr, nil, false)

	logger.Debug("Debug msg")
	logger.Info("Info msg")
	logger.Warn("Warn msg")
	logger.Error("Error msg")

	assert.Equal(t, "Info msg\n", stdout.String())
	assert.Equal(t, "WARN Warn msg\nERROR Error msg\n", stderr.String())
}

func TestNewLogger_Verbose(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	logger := NewLogger(&stdout, &stderr, nil, true)

	logger.Debug("Debug msg")
	logger.Info("Info msg")

	assert.Equal(t, "Debug msg\nInfo msg\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestNewLogger_File(t *testing.T) {
	t.Parallel()
	var stdout, stderr, file bytes.Buffer
	logger := NewLogger(&stdout, &stderr, &file, false)

	logger.Debug("Debug msg")
	logger.Warn("Warn msg")

	// All levels go to the file as JSON lines
	assert.Contains(t, file.String(), `"level":"debug"`)
	assert.Contains(t, file.String(), `"message":"Debug msg"`)
	assert.Contains(t, file.String(), `"level":"warn"`)
	assert.Empty(t, stdout.String())
}

func TestLevelWriter(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	logger := NewLogger(&stdout, &stderr, nil, false)

	_, err := ToInfoWriter(logger).WriteString("first\nsecond\n")
	assert.NoError(t, err)
	_, err = ToWarnWriter(logger).Write([]byte("problem"))
	assert.NoError(t, err)

	assert.Equal(t, "first\nsecond\n", stdout.String())
	assert.Equal(t, "WARN problem\n", stderr.String())
}
