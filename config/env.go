package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables, read after the optional .env file
const (
	EnvConfigPath = "ASTEROIDS_CONFIG"
	EnvLogLevel   = "ASTEROIDS_LOG_LEVEL"
	EnvLogFile    = "ASTEROIDS_LOG_FILE"
	EnvDebug      = "ASTEROIDS_DEBUG"
	EnvSeed       = "ASTEROIDS_SEED"
	EnvWorkers    = "ASTEROIDS_WORKERS"
	EnvMute       = "ASTEROIDS_MUTE"
)

// LoadDotEnv loads KEY=VALUE pairs from file into the process environment
// A missing file is not an error; already set variables win
func LoadDotEnv(file string) error {
	if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", file, err)
	}
	return nil
}

// PathFromEnv returns the config path from the environment, or fallback
func PathFromEnv(fallback string) string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return fallback
}

// ApplyEnv overrides cfg with ASTEROIDS_* variables
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvDebug, v, err)
		}
		cfg.Sim.Debug = b
	}
	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvSeed, v, err)
		}
		cfg.Sim.Seed = n
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvWorkers, v, err)
		}
		cfg.Sim.Workers = n
	}
	if v := os.Getenv(EnvMute); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvMute, v, err)
		}
		cfg.Audio.Enabled = !b
	}
	return nil
}
