package component

import "github.com/lixenwraith/vi-asteroids/core"

// AsteroidSize is the asteroid state: Big and Medium fragment on destruction, Small is terminal
type AsteroidSize uint8

const (
	AsteroidBig AsteroidSize = iota
	AsteroidMedium
	AsteroidSmall
	AsteroidSizeCount
)

// Next returns the fragment size, ok is false for Small
func (s AsteroidSize) Next() (AsteroidSize, bool) {
	switch s {
	case AsteroidBig:
		return AsteroidMedium, true
	case AsteroidMedium:
		return AsteroidSmall, true
	default:
		return s, false
	}
}

func (s AsteroidSize) String() string {
	switch s {
	case AsteroidBig:
		return "big"
	case AsteroidMedium:
		return "medium"
	case AsteroidSmall:
		return "small"
	}
	return "unknown"
}

// AsteroidComponent tags an asteroid; Size never changes after spawn
type AsteroidComponent struct {
	Size AsteroidSize
}

type PlayerTag struct{}

// BulletComponent tags a bullet; Owner is the shooter, possibly already gone
type BulletComponent struct {
	Owner core.Entity
}

type UFOTag struct{}

// PowerUpKind selects what a power-up grants
type PowerUpKind uint8

const (
	PowerUpShield PowerUpKind = iota
	PowerUpWeapon
)

// PowerUpColor is the variant of a power-up and of the visual it attaches
type PowerUpColor uint8

const (
	ColorDefault PowerUpColor = iota // Default weapon only
	ColorBlue
	ColorRed
	ColorYellow
	ColorGreen
	ColorCount
)

func (c PowerUpColor) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlue:
		return "blue"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	}
	return "unknown"
}

// PowerUpComponent tags a pickable power-up
type PowerUpComponent struct {
	Kind  PowerUpKind
	Color PowerUpColor
}

// VFXKind selects a visual effect template
type VFXKind uint8

const (
	VFXAsteroidBig VFXKind = iota
	VFXAsteroidMedium
	VFXAsteroidSmall
	VFXUFOExplosion
	VFXKindCount
)

// VFXForAsteroid maps an asteroid size to its explosion effect
func VFXForAsteroid(s AsteroidSize) VFXKind {
	return VFXAsteroidBig + VFXKind(s)
}

// VFXComponent tags a short-lived visual effect
type VFXComponent struct {
	Kind VFXKind
}

// PrefabComponent records the template an entity was built from
type PrefabComponent struct {
	Key core.PrefabKey
}
