// Package config loads game tuning from YAML with environment overrides
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-asteroids/parameter"
)

// ErrInvalid marks a configuration that fails validation
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Log       LogConfig       `yaml:"log"`
	Sim       SimConfig       `yaml:"sim"`
	Field     FieldConfig     `yaml:"field"`
	Game      GameConfig      `yaml:"game"`
	Player    PlayerConfig    `yaml:"player"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Asteroids AsteroidsConfig `yaml:"asteroids"`
	Weapons   WeaponsConfig   `yaml:"weapons"`
	Shield    ShieldConfig    `yaml:"shield"`
	PowerUp   PowerUpConfig   `yaml:"powerup"`
	UFO       UFOConfig       `yaml:"ufo"`
	Input     InputConfig     `yaml:"input"`
	Audio     AudioConfig     `yaml:"audio"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
	File        string `yaml:"file"` // Empty logs to stderr; the terminal harness needs a file
}

type SimConfig struct {
	TickRate int     `yaml:"tick_rate"`
	MaxStep  float64 `yaml:"max_step"`
	Workers  int     `yaml:"workers"`
	Debug    bool    `yaml:"debug"`
	Seed     uint64  `yaml:"seed"` // 0 picks a seed from the clock
}

type FieldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	WrapMargin float64 `yaml:"wrap_margin"`
}

type GameConfig struct {
	Lives               int     `yaml:"lives"`
	CountdownDelay      float64 `yaml:"countdown_delay"`
	RespawnDelay        float64 `yaml:"respawn_delay"`
	NextLevelDelay      float64 `yaml:"next_level_delay"`
	AsteroidAvoidRadius float64 `yaml:"asteroid_avoid_radius"`
	AsteroidsPerLevel   int     `yaml:"asteroids_per_level"`
	AsteroidsBase       int     `yaml:"asteroids_base"`
	PowerUpsPerLevel    int     `yaml:"powerups_per_level"`
	PowerUpsBase        int     `yaml:"powerups_base"`
}

type PlayerConfig struct {
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`
	TurnRate     float64 `yaml:"turn_rate"`
	Radius       float64 `yaml:"radius"`
	Margin       float64 `yaml:"margin"`
}

type BulletConfig struct {
	Lifetime float64 `yaml:"lifetime"`
	Radius   float64 `yaml:"radius"`
}

type AsteroidConfig struct {
	Radius     float64 `yaml:"radius"`
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
	MaxAngular float64 `yaml:"max_angular"`
}

type AsteroidsConfig struct {
	Big    AsteroidConfig `yaml:"big"`
	Medium AsteroidConfig `yaml:"medium"`
	Small  AsteroidConfig `yaml:"small"`
}

type WeaponConfig struct {
	BulletsPerSecond float64 `yaml:"bullets_per_second"`
	BulletSpeed      float64 `yaml:"bullet_speed"`
	MuzzleOffset     float64 `yaml:"muzzle_offset"`
}

type WeaponsConfig struct {
	Default WeaponConfig `yaml:"default"`
	Blue    WeaponConfig `yaml:"blue"`
	Red     WeaponConfig `yaml:"red"`
	Yellow  WeaponConfig `yaml:"yellow"`
	Green   WeaponConfig `yaml:"green"`
}

type ShieldConfig struct {
	Mode   string  `yaml:"mode"` // duration or per_hit
	Blue   float64 `yaml:"blue"`
	Red    float64 `yaml:"red"`
	Yellow float64 `yaml:"yellow"`
	Green  float64 `yaml:"green"`
}

type PowerUpConfig struct {
	Radius      float64 `yaml:"radius"`
	Lifetime    float64 `yaml:"lifetime"`
	VFXLifetime float64 `yaml:"vfx_lifetime"`
}

type UFOConfig struct {
	Speed                  float64 `yaml:"speed"`
	MinDistance            float64 `yaml:"min_distance"`
	MinTimeSinceLastChange float64 `yaml:"min_time_since_last_change"`
	Radius                 float64 `yaml:"radius"`
	BulletsPerSecond       float64 `yaml:"bullets_per_second"`
	RotationPerShot        float64 `yaml:"rotation_per_shot"`
	BulletSpeed            float64 `yaml:"bullet_speed"`
	BulletLifetime         float64 `yaml:"bullet_lifetime"`
	IntervalMax            float64 `yaml:"interval_max"`
	IntervalMin            float64 `yaml:"interval_min"`
	IntervalDecrease       float64 `yaml:"interval_decrease"`
}

type InputConfig struct {
	HoldTimeout    float64 `yaml:"hold_timeout"`
	JumpsPerSecond float64 `yaml:"jumps_per_second"`
	JumpBurst      int     `yaml:"jump_burst"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // beep volume exponent, 0 is unchanged
}

// Default returns the built-in tuning
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Sim: SimConfig{
			TickRate: parameter.TickRate,
			MaxStep:  parameter.MaxFrameStep,
			Workers:  parameter.Workers,
		},
		Field: FieldConfig{
			Width:      parameter.FieldWidth,
			Height:     parameter.FieldHeight,
			WrapMargin: parameter.WrapMargin,
		},
		Game: GameConfig{
			Lives:               parameter.StartingLives,
			CountdownDelay:      parameter.CountdownDelay,
			RespawnDelay:        parameter.RespawnDelay,
			NextLevelDelay:      parameter.NextLevelDelay,
			AsteroidAvoidRadius: parameter.AsteroidAvoidRadius,
			AsteroidsPerLevel:   parameter.AsteroidsPerLevel,
			AsteroidsBase:       parameter.AsteroidsBase,
			PowerUpsPerLevel:    parameter.PowerUpsPerLevel,
			PowerUpsBase:        parameter.PowerUpsBase,
		},
		Player: PlayerConfig{
			Acceleration: parameter.PlayerAcceleration,
			MaxSpeed:     parameter.PlayerMaxSpeed,
			TurnRate:     parameter.PlayerTurnRate,
			Radius:       parameter.PlayerRadius,
			Margin:       parameter.PlayerMargin,
		},
		Bullet: BulletConfig{
			Lifetime: parameter.BulletLifetime,
			Radius:   parameter.BulletRadius,
		},
		Asteroids: AsteroidsConfig{
			Big: AsteroidConfig{
				Radius:     parameter.AsteroidBigRadius,
				MinSpeed:   parameter.AsteroidBigMinSpeed,
				MaxSpeed:   parameter.AsteroidBigMaxSpeed,
				MaxAngular: parameter.AsteroidBigMaxAngular,
			},
			Medium: AsteroidConfig{
				Radius:     parameter.AsteroidMediumRadius,
				MinSpeed:   parameter.AsteroidMediumMinSpeed,
				MaxSpeed:   parameter.AsteroidMediumMaxSpeed,
				MaxAngular: parameter.AsteroidMediumMaxAngular,
			},
			Small: AsteroidConfig{
				Radius:     parameter.AsteroidSmallRadius,
				MinSpeed:   parameter.AsteroidSmallMinSpeed,
				MaxSpeed:   parameter.AsteroidSmallMaxSpeed,
				MaxAngular: parameter.AsteroidSmallMaxAngular,
			},
		},
		Weapons: WeaponsConfig{
			Default: WeaponConfig{parameter.DefaultBulletsPerSecond, parameter.DefaultBulletSpeed, parameter.DefaultMuzzleOffset},
			Blue:    WeaponConfig{parameter.WeaponBlueBulletsPerSecond, parameter.WeaponBlueBulletSpeed, parameter.DefaultMuzzleOffset},
			Red:     WeaponConfig{parameter.WeaponRedBulletsPerSecond, parameter.WeaponRedBulletSpeed, parameter.DefaultMuzzleOffset},
			Yellow:  WeaponConfig{parameter.WeaponYellowBulletsPerSecond, parameter.WeaponYellowBulletSpeed, parameter.DefaultMuzzleOffset},
			Green:   WeaponConfig{parameter.WeaponGreenBulletsPerSecond, parameter.WeaponGreenBulletSpeed, parameter.DefaultMuzzleOffset},
		},
		Shield: ShieldConfig{
			Mode:   parameter.ShieldModeDuration,
			Blue:   parameter.ShieldDurationBlue,
			Red:    parameter.ShieldDurationRed,
			Yellow: parameter.ShieldDurationYellow,
			Green:  parameter.ShieldDurationGreen,
		},
		PowerUp: PowerUpConfig{
			Radius:      parameter.PowerUpRadius,
			Lifetime:    parameter.PowerUpLifetime,
			VFXLifetime: parameter.VFXLifetime,
		},
		UFO: UFOConfig{
			Speed:                  parameter.UFOSpeed,
			MinDistance:            parameter.UFOMinDistance,
			MinTimeSinceLastChange: parameter.UFOMinTimeSinceLastChange,
			Radius:                 parameter.UFORadius,
			BulletsPerSecond:       parameter.UFOBulletsPerSecond,
			RotationPerShot:        parameter.UFORotationPerShot,
			BulletSpeed:            parameter.UFOBulletSpeed,
			BulletLifetime:         parameter.UFOBulletLifetime,
			IntervalMax:            parameter.UFOIntervalMax,
			IntervalMin:            parameter.UFOIntervalMin,
			IntervalDecrease:       parameter.UFOIntervalDecrease,
		},
		Input: InputConfig{
			HoldTimeout:    parameter.KeyHoldTimeout,
			JumpsPerSecond: parameter.JumpsPerSecond,
			JumpBurst:      parameter.JumpBurst,
		},
		Audio: AudioConfig{Enabled: true},
	}
}

// Load reads the YAML file at path over the defaults, applies environment overrides and validates
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		if err := cfg.Decode(f); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode merges YAML from r into cfg; unknown keys are rejected
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field size must be positive, got %gx%g", c.Field.Width, c.Field.Height)
	check(c.Field.WrapMargin >= 0, "field.wrap_margin must not be negative")
	check(c.Sim.TickRate > 0, "sim.tick_rate must be positive")
	check(c.Sim.MaxStep > 0, "sim.max_step must be positive")
	check(c.Game.Lives > 0, "game.lives must be positive")
	check(c.Game.CountdownDelay >= 0 && c.Game.RespawnDelay >= 0 && c.Game.NextLevelDelay >= 0, "game delays must not be negative")
	check(c.Player.MaxSpeed > 0 && c.Player.Acceleration > 0 && c.Player.TurnRate > 0, "player handling must be positive")
	check(c.Bullet.Lifetime > 0, "bullet.lifetime must be positive")

	for name, a := range map[string]AsteroidConfig{"big": c.Asteroids.Big, "medium": c.Asteroids.Medium, "small": c.Asteroids.Small} {
		check(a.Radius > 0, "asteroids.%s.radius must be positive", name)
		check(a.MinSpeed >= 0 && a.MaxSpeed >= a.MinSpeed, "asteroids.%s speed range [%g,%g] is invalid", name, a.MinSpeed, a.MaxSpeed)
		check(a.MaxAngular >= 0, "asteroids.%s.max_angular must not be negative", name)
	}
	for name, w := range map[string]WeaponConfig{"default": c.Weapons.Default, "blue": c.Weapons.Blue, "red": c.Weapons.Red, "yellow": c.Weapons.Yellow, "green": c.Weapons.Green} {
		check(w.BulletsPerSecond > 0, "weapons.%s.bullets_per_second must be positive", name)
		check(w.BulletSpeed > 0, "weapons.%s.bullet_speed must be positive", name)
	}

	check(c.Shield.Mode == parameter.ShieldModeDuration || c.Shield.Mode == parameter.ShieldModePerHit,
		"shield.mode must be %q or %q, got %q", parameter.ShieldModeDuration, parameter.ShieldModePerHit, c.Shield.Mode)
	check(c.Shield.Blue > 0 && c.Shield.Red > 0 && c.Shield.Yellow > 0 && c.Shield.Green > 0, "shield durations must be positive")

	check(c.UFO.BulletsPerSecond > 0, "ufo.bullets_per_second must be positive")
	check(c.UFO.MinTimeSinceLastChange > 0, "ufo.min_time_since_last_change must be positive")
	check(c.UFO.IntervalMin > 0 && c.UFO.IntervalMax >= c.UFO.IntervalMin, "ufo interval range [%g,%g] is invalid", c.UFO.IntervalMin, c.UFO.IntervalMax)
	check(c.Input.JumpsPerSecond > 0 && c.Input.JumpBurst > 0, "input jump rate must be positive")

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
