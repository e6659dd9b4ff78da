package logging

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levelFor(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("explicit override", func(t *testing.T) {
		t.Setenv(EnvLogFile, "/tmp/custom/zen.log")
		assert.Equal(t, "/tmp/custom/zen.log", getLogFilePath())
	})

	t.Run("xdg state home", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(EnvLogFile, "")
		t.Setenv("XDG_STATE_HOME", dir)
		xdg.Reload()
		t.Cleanup(xdg.Reload)

		assert.Equal(t, filepath.Join(dir, "zen", "zen.log"), getLogFilePath())
	})
}

func TestSetupLogFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state", "zen.log")

	f, err := setupLogFile(path)
	assert.NoError(t, err)
	assert.NoError(t, f.Close())
	assert.FileExists(t, path)
}

func TestGetLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, 1)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	logger := GetLogger("parser")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"parser"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "expand")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"operation":"expand"`)
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	LogDuration(time.Now().Add(-5*time.Second), "compile")

	assert.Contains(t, buf.String(), "compile")
	assert.Contains(t, buf.String(), "duration")
}
