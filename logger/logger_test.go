package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-asteroids/config"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	log, err := New(config.LogConfig{Level: "info", File: path})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("level started")
	Sync(log)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "level started", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "vi-asteroids", entry["logger"])
	assert.Contains(t, entry, "ts")
}

func TestNewDevelopmentConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.log")
	log, err := New(config.LogConfig{Level: "debug", Development: true, File: path})
	require.NoError(t, err)

	log.Debug("frame")
	Sync(log)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DEBUG")
	assert.Contains(t, string(data), "frame")
	assert.False(t, json.Valid(data))
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}
