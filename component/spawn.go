package component

import (
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// SpawnRequestComponent lives on a transient entity consumed by the spawn system in one pass
type SpawnRequestComponent struct {
	Key              core.PrefabKey
	Position         vmath.Vec2
	Amount           int
	PreviousVelocity vmath.Vec2 // Zero for fresh spawns, inherited for fragments
}

// SpawnMotionComponent carries the inherited velocity to the initialization pass
type SpawnMotionComponent struct {
	PreviousVelocity vmath.Vec2
}

// RandomMotionComponent bounds the randomized launch of a spawned entity
type RandomMotionComponent struct {
	MinSpeed   float64
	MaxSpeed   float64
	MaxAngular float64
}

// NeedsInitTag marks an entity spawned this frame that has not been launched yet
type NeedsInitTag struct{}
