package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/registry"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// ShieldDepleteSystem ticks active shields down and removes them once expired
// Remaining only decreases for a given shield; the removal is recorded once, so exactly
// one ShieldDepleted event fires per shield
type ShieldDepleteSystem struct {
	world *engine.World
	log   *zap.Logger
}

// NewShieldDepleteSystem creates a new shield deplete system
func NewShieldDepleteSystem(world *engine.World) engine.System {
	return &ShieldDepleteSystem{
		world: world,
		log:   world.Resource.Log.Named("shield"),
	}
}

func (s *ShieldDepleteSystem) Name() string        { return "shield_deplete" }
func (s *ShieldDepleteSystem) Phase() engine.Phase { return engine.PhaseResolve }

// Access declares the stores the system touches
func (s *ShieldDepleteSystem) Access() engine.Access {
	c := &s.world.Components
	return engine.Access{
		Reads:  []engine.AnyStore{c.Player, c.Destroyed},
		Writes: []engine.AnyStore{c.Shield, c.Attachment},
	}
}

func (s *ShieldDepleteSystem) Init() {}

func (s *ShieldDepleteSystem) Update(cmd *engine.CommandBuffer) {
	c := &s.world.Components
	dt := s.world.Resource.Time.DeltaTime

	for _, e := range s.world.Query().With(c.Player, c.Shield).Without(c.Destroyed).Execute() {
		shield, ok := c.Shield.Get(e)
		if !ok {
			continue
		}
		shield.Remaining -= dt
		if shield.Remaining > 0 {
			c.Shield.Set(e, shield)
			continue
		}

		c.Shield.Remove(e)
		if att, ok := c.Attachment.Get(e); ok && att.Shield != core.NoEntity {
			cmd.DestroyEntity(att.Shield)
			att.Shield = core.NoEntity
			c.Attachment.Set(e, att)
		}

		s.world.PushEvent(event.EventShieldDepleted, &event.ShieldDepletedPayload{Player: e})
		playSound(s.world, core.SoundShieldDisabled)
		s.log.Debug("depleted", zap.Stringer("player", e))
	}
}

// ShieldPickupSystem grants the shield of every picked shield power-up to the player that touched it
type ShieldPickupSystem struct {
	world *engine.World
}

// NewShieldPickupSystem creates a new shield pickup system
func NewShieldPickupSystem(world *engine.World) engine.System {
	return &ShieldPickupSystem{world: world}
}

func (s *ShieldPickupSystem) Name() string        { return "shield_pickup" }
func (s *ShieldPickupSystem) Phase() engine.Phase { return engine.PhaseSpawn }

// Access declares the stores the system touches
func (s *ShieldPickupSystem) Access() engine.Access {
	c := &s.world.Components
	return engine.Access{
		Reads: []engine.AnyStore{c.PowerUp, c.Picked, c.CollisionInfo, c.ShieldGrant, c.Player, c.Destroyed},
	}
}

func (s *ShieldPickupSystem) Init() {}

func (s *ShieldPickupSystem) Update(cmd *engine.CommandBuffer) {
	c := &s.world.Components
	picked := s.world.Query().
		With(c.PowerUp, c.Picked, c.CollisionInfo, c.ShieldGrant).
		Without(c.Destroyed).
		Execute()

	for _, p := range picked {
		info, _ := c.CollisionInfo.Get(p)
		grant, _ := c.ShieldGrant.Get(p)

		if c.Player.Has(info.Other) && !c.Destroyed.Has(info.Other) {
			// Replaces any active shield, restarting the timer
			cmd.Set(info.Other, component.ShieldStateComponent{
				Remaining: grant.Duration,
				Visual:    grant.Visual,
			})
			cmd.Set(info.Other, component.ShieldEnableRequestComponent{})
		}
		cmd.DestroyEntity(p)
	}
}

// ShieldEnableSystem swaps the shield visual of players with a pending enable request
type ShieldEnableSystem struct {
	world *engine.World
	reg   *registry.Registry
}

// NewShieldEnableSystem creates the system that attaches shield visuals
func NewShieldEnableSystem(world *engine.World, reg *registry.Registry) engine.System {
	return &ShieldEnableSystem{world: world, reg: reg}
}

func (s *ShieldEnableSystem) Name() string        { return "shield_enable" }
func (s *ShieldEnableSystem) Phase() engine.Phase { return engine.PhaseReact }

// Access declares the stores the system touches
func (s *ShieldEnableSystem) Access() engine.Access {
	c := &s.world.Components
	return engine.Access{
		Reads:  []engine.AnyStore{c.Player, c.ShieldEnable, c.Shield, c.Position, c.Destroyed},
		Writes: []engine.AnyStore{c.Attachment},
	}
}

func (s *ShieldEnableSystem) Init() {}

func (s *ShieldEnableSystem) Update(cmd *engine.CommandBuffer) {
	c := &s.world.Components
	players := s.world.Query().With(c.Player, c.ShieldEnable, c.Shield).Without(c.Destroyed).Execute()

	for _, e := range players {
		shield, _ := c.Shield.Get(e)
		pos, _ := positionOf(s.world, e)

		att, _ := c.Attachment.Get(e)
		if att.Shield != core.NoEntity {
			cmd.DestroyEntity(att.Shield)
		}
		att.Shield = attachVisual(cmd, s.reg, e, shield.Visual, pos, vmath.Vec2{})
		c.Attachment.Set(e, att)

		cmd.Remove(e, c.ShieldEnable)
		s.world.PushEvent(event.EventShieldEnabled, &event.ShieldEnabledPayload{
			Player:   e,
			Duration: shield.Remaining,
		})
	}
}
