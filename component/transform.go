package component

import (
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// PositionComponent is the world-space center of an entity
type PositionComponent struct {
	vmath.Vec2
}

// VelocityComponent is integrated by the physics collaborator each step
type VelocityComponent struct {
	Linear  vmath.Vec2
	Angular float64 // rad/s, positive is counter-clockwise
}

// RotationComponent holds the heading, 0 faces +Y
type RotationComponent struct {
	Angle float64
}

// CollisionLayer is a bit in a collider layer/mask pair
type CollisionLayer uint32

const (
	LayerPlayer CollisionLayer = 1 << iota
	LayerAsteroid
	LayerBullet
	LayerUFOBullet
	LayerUFO
	LayerPowerUp
)

// ColliderComponent is the circle the physics collaborator tests for overlaps
// A pair is reported when either side's mask contains the other's layer
type ColliderComponent struct {
	Radius float64
	Layer  CollisionLayer
	Mask   CollisionLayer
}

// WrapAroundComponent marks entities that teleport across play-field edges
// Margin is half the visual size, 0 uses the configured default margin
type WrapAroundComponent struct {
	Margin float64
}

// AttachedComponent makes an entity follow its parent's transform
type AttachedComponent struct {
	Parent core.Entity
	Offset vmath.Vec2 // In parent-local space, rotated by parent heading
}
