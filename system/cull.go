package system

import (
	"github.com/lixenwraith/vi-asteroids/engine"
)

// CullSystem removes entities marked for destruction at the end of the frame
// It also strips CollisionInfo that no resolver consumed, so none outlives its frame
type CullSystem struct {
	world *engine.World
}

// NewCullSystem creates a new cull system
func NewCullSystem(world *engine.World) engine.System {
	return &CullSystem{world: world}
}

// Name returns the system name
func (s *CullSystem) Name() string { return "cull" }

// Phase returns the cleanup phase
func (s *CullSystem) Phase() engine.Phase { return engine.PhaseCleanup }

// Access declares the stores the system touches
func (s *CullSystem) Access() engine.Access {
	c := &s.world.Components
	return engine.Access{
		Reads: []engine.AnyStore{c.Destroyed, c.CollisionInfo},
	}
}

// Init is a no-op; the system keeps no state
func (s *CullSystem) Init() {}

// Update destroys tagged entities, cascading through linked groups at playback
func (s *CullSystem) Update(cmd *engine.CommandBuffer) {
	c := &s.world.Components
	cmd.DestroyAll(c.Destroyed.All())

	for _, e := range c.CollisionInfo.All() {
		if !c.Destroyed.Has(e) {
			cmd.Remove(e, c.CollisionInfo)
		}
	}
}
