package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/registry"
	"github.com/lixenwraith/vi-asteroids/status"
)

// SpawnSystem turns every pending spawn request into template instances
// The request entity is destroyed in the same pass; a missing template panics
// with registry.ErrMissingTemplate, surfacing as a scheduler error
type SpawnSystem struct {
	world *engine.World
	reg   *registry.Registry

	statRequested *atomic.Int64
}

// NewSpawnSystem creates the spawn request consumer
func NewSpawnSystem(world *engine.World, reg *registry.Registry) engine.System {
	return &SpawnSystem{
		world:         world,
		reg:           reg,
		statRequested: world.Resource.Status.Counter(status.SpawnRequested),
	}
}

// Name returns the system name
func (s *SpawnSystem) Name() string        { return "spawn" }
func (s *SpawnSystem) Phase() engine.Phase { return engine.PhaseSpawn }

// Access declares the stores the system touches
func (s *SpawnSystem) Access() engine.Access {
	return engine.Access{
		Reads: []engine.AnyStore{s.world.Components.SpawnRequest},
	}
}

func (s *SpawnSystem) Init() {}

func (s *SpawnSystem) Update(cmd *engine.CommandBuffer) {
	c := &s.world.Components
	for _, r := range c.SpawnRequest.All() {
		req, ok := c.SpawnRequest.Get(r)
		if !ok {
			continue
		}
		for i := 0; i < req.Amount; i++ {
			e := s.reg.Instantiate(cmd, req.Key)
			cmd.Set(e, component.PositionComponent{Vec2: req.Position})
			cmd.Set(e, component.SpawnMotionComponent{PreviousVelocity: req.PreviousVelocity})
			cmd.Set(e, component.NeedsInitTag{})
		}
		s.statRequested.Add(int64(max(req.Amount, 0)))
		cmd.DestroyEntity(r)
	}
}
