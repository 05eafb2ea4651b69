package component

import "github.com/lixenwraith/vi-asteroids/core"

// LifetimeComponent destroys the entity once Remaining reaches zero
type LifetimeComponent struct {
	Remaining float64 // Seconds
}

// DestroyedTag excludes an entity from gameplay queries until the cull barrier removes it
type DestroyedTag struct{}

// PickedTag marks a power-up consumed by a player, handled by the matching pickup system
type PickedTag struct{}

// CollisionInfoComponent points at the entity collided with this frame, never survives the frame
type CollisionInfoComponent struct {
	Other core.Entity
}

// LinkedGroupComponent lists children destroyed together with the owner
type LinkedGroupComponent struct {
	Children []core.Entity
}

// AttachmentComponent tracks the visual children currently equipped on a player
type AttachmentComponent struct {
	Shield core.Entity
	Weapon core.Entity
}
