package system

import (
	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/registry"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// PlayerInputSystem turns per-frame intents into ship motion, bullets and hyperspace requests
type PlayerInputSystem struct {
	world *engine.World
	reg   *registry.Registry
}

// NewPlayerInputSystem creates the input-to-motion system
func NewPlayerInputSystem(world *engine.World, reg *registry.Registry) engine.System {
	return &PlayerInputSystem{
		world: world,
		reg:   reg,
	}
}

func (s *PlayerInputSystem) Name() string        { return "player_input" }
func (s *PlayerInputSystem) Phase() engine.Phase { return engine.PhaseInput }

// Access declares the stores the system touches
func (s *PlayerInputSystem) Access() engine.Access {
	c := &s.world.Components
	return engine.Access{
		Reads:  []engine.AnyStore{c.Player, c.Thruster, c.Thrust, c.Position, c.Destroyed},
		Writes: []engine.AnyStore{c.Input, c.Velocity, c.Rotation, c.Weapon},
	}
}

func (s *PlayerInputSystem) Init() {}

func (s *PlayerInputSystem) Update(cmd *engine.CommandBuffer) {
	c := &s.world.Components
	dt := s.world.Resource.Time.DeltaTime

	players := s.world.Query().
		With(c.Player, c.Input, c.Thruster, c.Position, c.Velocity, c.Rotation).
		Without(c.Destroyed).
		Execute()

	for _, e := range players {
		input, _ := c.Input.Get(e)
		thruster, _ := c.Thruster.Get(e)
		pos, _ := c.Position.Get(e)
		vel, okVel := c.Velocity.Get(e)
		rot, okRot := c.Rotation.Get(e)
		if !s.world.Invariant(okVel && okRot, "player without transform") {
			continue
		}

		if input.TurnLeft {
			rot.Angle += thruster.TurnRate * dt
		} else if input.TurnRight {
			rot.Angle -= thruster.TurnRate * dt
		}
		c.Rotation.Set(e, rot)

		forward := vmath.V2Forward(rot.Angle)
		if input.Thrust && vmath.V2Dot(vel.Linear, forward) < thruster.MaxSpeed {
			vel.Linear = vmath.V2Add(vel.Linear, vmath.V2Scale(forward, thruster.Acceleration*dt))
			c.Velocity.Set(e, vel)
		}
		s.toggleThrust(cmd, e, input.Thrust)

		if weapon, ok := c.Weapon.Get(e); ok {
			if s.tickWeapon(&weapon, input.Shoot, dt) {
				s.fire(cmd, e, weapon, pos.Vec2, vel.Linear, rot.Angle)
			}
			c.Weapon.Set(e, weapon)
		}

		if input.Jump {
			cmd.Set(e, component.JumpToHyperspaceTag{})
			input.Jump = false
			c.Input.Set(e, input)
		}
	}
}

// toggleThrust reacts to thrust transitions only, so the loop sound starts and stops once
func (s *PlayerInputSystem) toggleThrust(cmd *engine.CommandBuffer, e core.Entity, thrusting bool) {
	c := &s.world.Components
	was := c.Thrust.Has(e)
	switch {
	case thrusting && !was:
		cmd.Set(e, component.ThrustTag{})
		s.world.PushEvent(event.EventSoundLoopStart, &event.SoundPayload{Sound: core.SoundPlayerThrust})
	case !thrusting && was:
		cmd.Remove(e, c.Thrust)
		s.world.PushEvent(event.EventSoundLoopStop, &event.SoundPayload{Sound: core.SoundPlayerThrust})
	}
}

// tickWeapon advances the fire-rate accumulator and reports whether a shot fires this frame
// The remainder carries over so the rate holds under any frame step; at most one shot per frame
func (s *PlayerInputSystem) tickWeapon(w *component.WeaponStateComponent, shoot bool, dt float64) bool {
	if w.BulletsPerSecond <= 0 {
		return false
	}
	interval := 1 / w.BulletsPerSecond
	w.Elapsed += dt

	if !shoot || w.Elapsed < interval {
		if w.Elapsed > interval {
			w.Elapsed = interval
		}
		return false
	}

	w.Elapsed -= interval
	if w.Elapsed > interval {
		w.Elapsed = interval
	}
	return true
}

func (s *PlayerInputSystem) fire(cmd *engine.CommandBuffer, owner core.Entity, w component.WeaponStateComponent, pos, vel vmath.Vec2, angle float64) {
	bullet := s.reg.Instantiate(cmd, w.Bullet)
	muzzle := vmath.V2Add(pos, vmath.V2Rotate(w.SpawnOffset, angle))
	velocity := vmath.V2Add(vmath.V2Scale(vmath.V2Forward(angle), w.BulletSpeed), vel)

	cmd.Set(bullet, component.PositionComponent{Vec2: muzzle})
	cmd.Set(bullet, component.RotationComponent{Angle: angle})
	cmd.Set(bullet, component.VelocityComponent{Linear: velocity})
	cmd.Set(bullet, component.BulletComponent{Owner: owner})

	playSound(s.world, core.SoundPlayerShoot)
}
