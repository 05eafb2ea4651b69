package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-asteroids/parameter"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.Game.Lives)
	assert.Equal(t, parameter.ShieldModeDuration, cfg.Shield.Mode)
}

func TestDecodeOverridesDefaults(t *testing.T) {
	cfg := Default()
	src := `
field:
  width: 120
game:
  lives: 5
shield:
  mode: per_hit
asteroids:
  medium:
    min_speed: 1
    max_speed: 2
`
	require.NoError(t, cfg.Decode(strings.NewReader(src)))
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 120.0, cfg.Field.Width)
	assert.Equal(t, parameter.FieldHeight, cfg.Field.Height, "untouched keys keep defaults")
	assert.Equal(t, 5, cfg.Game.Lives)
	assert.Equal(t, parameter.ShieldModePerHit, cfg.Shield.Mode)
	assert.Equal(t, 2.0, cfg.Asteroids.Medium.MaxSpeed)
	assert.Equal(t, parameter.AsteroidMediumRadius, cfg.Asteroids.Medium.Radius)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	cfg := Default()
	err := cfg.Decode(strings.NewReader("feild:\n  width: 10\n"))
	assert.Error(t, err)
}

func TestDecodeEmptyInput(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Decode(strings.NewReader("")))
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Default()
	cfg.Field.Width = 0
	cfg.Shield.Mode = "forever"
	cfg.Asteroids.Small.MaxSpeed = cfg.Asteroids.Small.MinSpeed - 1

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	msg := err.Error()
	assert.Contains(t, msg, "field size")
	assert.Contains(t, msg, "shield.mode")
	assert.Contains(t, msg, "asteroids.small")
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  lives: 4\nlog:\n  level: warn\n"), 0o644))

	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvMute, "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Game.Lives)
	assert.Equal(t, "debug", cfg.Log.Level, "environment wins over file")
	assert.Equal(t, uint64(99), cfg.Sim.Seed)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	t.Setenv(EnvDebug, "maybe")
	err := ApplyEnv(Default())
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadDotEnv(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvConfigPath+"=from-dotenv.yaml\n"), 0o644))
	t.Setenv(EnvConfigPath, "")
	os.Unsetenv(EnvConfigPath)

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-dotenv.yaml", PathFromEnv("fallback.yaml"))
	os.Unsetenv(EnvConfigPath)
	assert.Equal(t, "fallback.yaml", PathFromEnv("fallback.yaml"))
}
