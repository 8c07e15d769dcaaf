package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/fluxo/internal/config"
)

func TestNewWritesToFallback(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.LogLevel = "debug"

	logger, closeLog, err := New(cfg, &buf)
	require.NoError(t, err)
	defer closeLog()

	assert.Equal(t, log.DebugLevel, logger.GetLevel())
	logger.WithField("task_id", "task-1").Debug("task added")
	assert.Contains(t, buf.String(), "task_id=task-1")
}

func TestNewWritesToFile(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "fluxo.log")

	logger, closeLog, err := New(cfg, io.Discard)
	require.NoError(t, err)
	logger.Info("board started")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "board started")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "chatty"

	_, _, err := New(cfg, io.Discard)
	assert.ErrorContains(t, err, "invalid log level")
}
