package system

import (
	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/parameter"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// InitializeSystem launches freshly spawned entities
// Entities with RandomMotion get a random heading, speed and spin from their own random stream;
// fresh spawns pick any heading, fragments stay within FragmentSpread of the inherited one
type InitializeSystem struct {
	world *engine.World
}

// NewInitializeSystem creates a new initialize system
func NewInitializeSystem(world *engine.World) engine.System {
	return &InitializeSystem{world: world}
}

func (s *InitializeSystem) Name() string        { return "initialize" }
func (s *InitializeSystem) Phase() engine.Phase { return engine.PhaseReact }

// Access declares the stores the system touches
func (s *InitializeSystem) Access() engine.Access {
	c := &s.world.Components
	return engine.Access{
		Reads: []engine.AnyStore{c.NeedsInit, c.SpawnMotion, c.RandomMotion},
	}
}

func (s *InitializeSystem) Init() {}

func (s *InitializeSystem) Update(cmd *engine.CommandBuffer) {
	c := &s.world.Components
	for _, e := range s.world.Query().With(c.NeedsInit).Execute() {
		if motion, ok := c.RandomMotion.Get(e); ok {
			spawn, _ := c.SpawnMotion.Get(e)
			cmd.Set(e, Launch(entityRand(s.world, e), spawn.PreviousVelocity, motion))
		}
		cmd.Remove(e, c.NeedsInit)
		cmd.Remove(e, c.SpawnMotion)
	}
}

// Launch draws the initial velocity of a spawned entity
func Launch(r *vmath.FastRand, inherited vmath.Vec2, m component.RandomMotionComponent) component.VelocityComponent {
	var heading float64
	if vmath.V2IsZero(inherited) {
		heading = r.Angle()
	} else {
		heading = vmath.V2Heading(inherited) + r.Range(-parameter.FragmentSpread, parameter.FragmentSpread)
	}
	speed := r.Range(m.MinSpeed, m.MaxSpeed)
	return component.VelocityComponent{
		Linear:  vmath.V2Scale(vmath.V2Forward(heading), speed),
		Angular: r.Range(0, m.MaxAngular),
	}
}
