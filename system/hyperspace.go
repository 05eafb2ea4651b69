package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/event"
)

// HyperspaceSystem teleports players that requested a jump to a random point of the field
// Jump rate limiting belongs to the input collaborator
type HyperspaceSystem struct {
	world *engine.World
	log   *zap.Logger
}

// NewHyperspaceSystem creates a new hyperspace system
func NewHyperspaceSystem(world *engine.World) engine.System {
	return &HyperspaceSystem{
		world: world,
		log:   world.Resource.Log.Named("hyperspace"),
	}
}

func (s *HyperspaceSystem) Name() string        { return "hyperspace" }
func (s *HyperspaceSystem) Phase() engine.Phase { return engine.PhaseResolve }

// Access declares the stores the system touches
func (s *HyperspaceSystem) Access() engine.Access {
	c := &s.world.Components
	return engine.Access{
		Reads: []engine.AnyStore{c.Player, c.Jump, c.Position, c.Destroyed},
	}
}

func (s *HyperspaceSystem) Init() {}

func (s *HyperspaceSystem) Update(cmd *engine.CommandBuffer) {
	c := &s.world.Components
	field := s.world.Resource.Field

	for _, e := range s.world.Query().With(c.Player, c.Jump, c.Position).Without(c.Destroyed).Execute() {
		from, _ := c.Position.Get(e)
		to := field.RandomPosition(entityRand(s.world, e))

		cmd.Set(e, component.PositionComponent{Vec2: to})
		cmd.Remove(e, c.Jump)

		s.world.PushEvent(event.EventHyperspace, &event.HyperspacePayload{
			Player: e,
			From:   from.Vec2,
			To:     to,
		})
		playSound(s.world, core.SoundPlayerHyperspace)
		s.log.Debug("jump", zap.Stringer("player", e))
	}
}
