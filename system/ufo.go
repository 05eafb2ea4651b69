package system

import (
	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/registry"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// UFOSteeringSystem periodically re-aims UFOs away from nearby asteroids
// Approximate avoidance: repulsions are turned sideways to keep the horizontal travel sense
type UFOSteeringSystem struct {
	world *engine.World
}

// NewUFOSteeringSystem creates a new UFO steering system
func NewUFOSteeringSystem(world *engine.World) engine.System {
	return &UFOSteeringSystem{world: world}
}

func (s *UFOSteeringSystem) Name() string        { return "ufo_steering" }
func (s *UFOSteeringSystem) Phase() engine.Phase { return engine.PhaseInput }

// Access declares the stores the system touches
func (s *UFOSteeringSystem) Access() engine.Access {
	c := &s.world.Components
	return engine.Access{
		Reads:  []engine.AnyStore{c.UFO, c.Asteroid, c.Position, c.Destroyed},
		Writes: []engine.AnyStore{c.UFOBrain, c.Velocity},
	}
}

// Init is a no-op; brain timers live on the entities
func (s *UFOSteeringSystem) Init() {}

func (s *UFOSteeringSystem) Update(cmd *engine.CommandBuffer) {
	c := &s.world.Components
	dt := s.world.Resource.Time.DeltaTime

	ufos := s.world.Query().With(c.UFO, c.UFOBrain, c.Position, c.Velocity).Without(c.Destroyed).Execute()
	if len(ufos) == 0 {
		return
	}

	asteroids := s.world.Query().With(c.Asteroid, c.Position).Without(c.Destroyed).Execute()
	obstacles := make([]vmath.Vec2, 0, len(asteroids))
	for _, a := range asteroids {
		if p, ok := c.Position.Get(a); ok {
			obstacles = append(obstacles, p.Vec2)
		}
	}

	for _, e := range ufos {
		brain, _ := c.UFOBrain.Get(e)
		brain.Elapsed += dt
		if brain.Elapsed >= brain.MinTimeSinceLastChange {
			brain.Elapsed = 0
			pos, _ := c.Position.Get(e)
			vel, _ := c.Velocity.Get(e)
			vel.Linear = Steer(pos.Vec2, vel.Linear, obstacles, brain.Speed, brain.MinDistance)
			c.Velocity.Set(e, vel)
		}
		c.UFOBrain.Set(e, brain)
	}
}

// Steer returns the new UFO velocity given obstacle positions
// Each obstacle within minDistance pushes with inverse-distance weight; a push against the
// travel sense is rotated 90° to slide past the obstacle. A zero net push keeps prev
func Steer(pos, prev vmath.Vec2, obstacles []vmath.Vec2, speed, minDistance float64) vmath.Vec2 {
	leftToRight := prev.X > 0
	var net vmath.Vec2

	for _, o := range obstacles {
		diff := vmath.V2Sub(pos, o)
		dist := vmath.V2Mag(diff)
		if dist > minDistance || dist == 0 {
			continue
		}
		push := vmath.V2Scale(vmath.V2Normalize(diff), 1/dist)

		switch {
		case push.X < 0 && leftToRight:
			if push.Y > 0 {
				push = vmath.Vec2{X: push.Y, Y: -push.X}
			} else {
				push = vmath.Vec2{X: -push.Y, Y: push.X}
			}
		case push.X > 0 && !leftToRight:
			if push.Y > 0 {
				push = vmath.Vec2{X: -push.Y, Y: push.X}
			} else {
				push = vmath.Vec2{X: push.Y, Y: -push.X}
			}
		}
		net = vmath.V2Add(net, push)
	}

	if vmath.V2IsZero(net) {
		return prev
	}
	return vmath.V2Scale(vmath.V2Normalize(net), speed)
}

// UFOAttackSystem fires a rotating spray from every UFO
type UFOAttackSystem struct {
	world *engine.World
	reg   *registry.Registry
}

// NewUFOAttackSystem creates a new UFO attack system
func NewUFOAttackSystem(world *engine.World, reg *registry.Registry) engine.System {
	return &UFOAttackSystem{world: world, reg: reg}
}

func (s *UFOAttackSystem) Name() string        { return "ufo_attack" }
func (s *UFOAttackSystem) Phase() engine.Phase { return engine.PhaseInput }

// Access declares the stores the system touches
func (s *UFOAttackSystem) Access() engine.Access {
	c := &s.world.Components
	return engine.Access{
		Reads:  []engine.AnyStore{c.UFO, c.Position, c.Velocity, c.Destroyed},
		Writes: []engine.AnyStore{c.UFOWeapon},
	}
}

func (s *UFOAttackSystem) Init() {}

func (s *UFOAttackSystem) Update(cmd *engine.CommandBuffer) {
	c := &s.world.Components
	dt := s.world.Resource.Time.DeltaTime

	ufos := s.world.Query().With(c.UFO, c.UFOWeapon, c.Position, c.Velocity).Without(c.Destroyed).Execute()
	for _, e := range ufos {
		weapon, _ := c.UFOWeapon.Get(e)
		if weapon.BulletsPerSecond <= 0 {
			continue
		}
		weapon.Elapsed += dt
		if weapon.Elapsed >= 1/weapon.BulletsPerSecond {
			weapon.Elapsed = 0
			weapon.LastShotRotation += weapon.RotationPerShot

			pos, _ := c.Position.Get(e)
			vel, _ := c.Velocity.Get(e)
			s.fire(cmd, e, weapon, pos.Vec2, vel.Linear)
		}
		c.UFOWeapon.Set(e, weapon)
	}
}

func (s *UFOAttackSystem) fire(cmd *engine.CommandBuffer, owner core.Entity, w component.UFOWeaponComponent, pos, vel vmath.Vec2) {
	bullet := s.reg.Instantiate(cmd, w.Bullet)
	velocity := vmath.V2Add(vmath.V2Scale(vmath.V2Forward(w.LastShotRotation), w.BulletSpeed), vel)

	cmd.Set(bullet, component.PositionComponent{Vec2: pos})
	cmd.Set(bullet, component.RotationComponent{Angle: w.LastShotRotation})
	cmd.Set(bullet, component.VelocityComponent{Linear: velocity})
	cmd.Set(bullet, component.BulletComponent{Owner: owner})

	playSound(s.world, core.SoundUFOShoot)
}
