package system

import (
	"github.com/lixenwraith/vi-asteroids/engine"
)

// LifetimeSystem destroys entities whose lifetime ran out
type LifetimeSystem struct {
	world *engine.World
}

// NewLifetimeSystem creates a new lifetime system
func NewLifetimeSystem(world *engine.World) engine.System {
	return &LifetimeSystem{world: world}
}

func (s *LifetimeSystem) Name() string        { return "lifetime" }
func (s *LifetimeSystem) Phase() engine.Phase { return engine.PhaseResolve }

// Access declares the stores the system touches
func (s *LifetimeSystem) Access() engine.Access {
	c := &s.world.Components
	return engine.Access{
		Reads:  []engine.AnyStore{c.Destroyed},
		Writes: []engine.AnyStore{c.Lifetime},
	}
}

func (s *LifetimeSystem) Init() {}

func (s *LifetimeSystem) Update(cmd *engine.CommandBuffer) {
	c := &s.world.Components
	dt := s.world.Resource.Time.DeltaTime

	for _, e := range s.world.Query().With(c.Lifetime).Without(c.Destroyed).Execute() {
		lt, ok := c.Lifetime.Get(e)
		if !ok {
			continue
		}
		lt.Remaining -= dt
		c.Lifetime.Set(e, lt)
		if lt.Remaining <= 0 {
			cmd.DestroyEntity(e)
		}
	}
}
