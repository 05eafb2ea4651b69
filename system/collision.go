package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/parameter"
	"github.com/lixenwraith/vi-asteroids/registry"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// CollisionTagSystem turns overlap pairs reported by physics into CollisionInfo on both sides
// An entity takes part in at most one collision per frame
type CollisionTagSystem struct {
	world *engine.World
}

// NewCollisionTagSystem creates the system that turns overlap pairs into collision tags
func NewCollisionTagSystem(world *engine.World) engine.System {
	return &CollisionTagSystem{world: world}
}

// Name returns the system name
func (s *CollisionTagSystem) Name() string        { return "collision_tag" }
func (s *CollisionTagSystem) Phase() engine.Phase { return engine.PhaseCollision }

// Access declares the stores the system touches
func (s *CollisionTagSystem) Access() engine.Access {
	c := &s.world.Components
	return engine.Access{
		Reads: []engine.AnyStore{c.CollisionInfo, c.Destroyed, c.Picked},
	}
}

// Init drops overlap pairs left from a previous game
func (s *CollisionTagSystem) Init() {
	s.world.Resource.Overlaps.Drain()
}

func (s *CollisionTagSystem) Update(cmd *engine.CommandBuffer) {
	pairs := s.world.Resource.Overlaps.Drain()
	if len(pairs) == 0 {
		return
	}

	tagged := make(map[core.Entity]struct{}, len(pairs)*2)
	for _, p := range pairs {
		if p.A == p.B || !s.eligible(p.A, tagged) || !s.eligible(p.B, tagged) {
			continue
		}
		cmd.Set(p.A, component.CollisionInfoComponent{Other: p.B})
		cmd.Set(p.B, component.CollisionInfoComponent{Other: p.A})
		tagged[p.A] = struct{}{}
		tagged[p.B] = struct{}{}
	}
}

func (s *CollisionTagSystem) eligible(e core.Entity, tagged map[core.Entity]struct{}) bool {
	if _, ok := tagged[e]; ok {
		return false
	}
	c := &s.world.Components
	return s.world.IsAlive(e) && !c.CollisionInfo.Has(e) && !c.Destroyed.Has(e) && !c.Picked.Has(e)
}

// resolveKind selects which entity family a resolve job handles
type resolveKind uint8

const (
	resolveBullet resolveKind = iota
	resolveAsteroid
	resolveUFO
	resolvePlayer
)

var resolveNames = [...]string{
	resolveBullet:   "collision_resolve.bullet",
	resolveAsteroid: "collision_resolve.asteroid",
	resolveUFO:      "collision_resolve.ufo",
	resolvePlayer:   "collision_resolve.player",
}

var asteroidSounds = [component.AsteroidSizeCount]core.SoundType{
	component.AsteroidBig:    core.SoundAsteroidBigExplosion,
	component.AsteroidMedium: core.SoundAsteroidMediumExplosion,
	component.AsteroidSmall:  core.SoundAsteroidSmallExplosion,
}

// CollisionResolveSystem applies the outcome of a collision for one entity kind
// Each kind only reads its own CollisionInfo, so the four jobs run in one wave
type CollisionResolveSystem struct {
	world      *engine.World
	kind       resolveKind
	shieldMode string
	log        *zap.Logger
}

// NewCollisionResolveSystems creates one resolve job per colliding kind
func NewCollisionResolveSystems(world *engine.World, shieldMode string) []engine.System {
	kinds := []resolveKind{resolveBullet, resolveAsteroid, resolveUFO, resolvePlayer}
	out := make([]engine.System, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, &CollisionResolveSystem{
			world:      world,
			kind:       k,
			shieldMode: shieldMode,
			log:        world.Resource.Log.Named(resolveNames[k]),
		})
	}
	return out
}

// Name returns the per-kind job name
func (s *CollisionResolveSystem) Name() string        { return resolveNames[s.kind] }
func (s *CollisionResolveSystem) Phase() engine.Phase { return engine.PhaseResolve }

// Access declares the stores the resolve job touches
func (s *CollisionResolveSystem) Access() engine.Access {
	c := &s.world.Components
	reads := []engine.AnyStore{c.CollisionInfo, c.Destroyed}
	switch s.kind {
	case resolveBullet:
		reads = append(reads, c.Bullet)
	case resolveAsteroid:
		reads = append(reads, c.Asteroid, c.Position, c.Velocity)
	case resolveUFO:
		reads = append(reads, c.UFO, c.Position)
	case resolvePlayer:
		reads = append(reads, c.Player, c.Position, c.PowerUp, c.Picked)
		if s.shieldMode == parameter.ShieldModePerHit {
			// Zeroed in place so depletion later in the phase sees the hit
			return engine.Access{Reads: reads, Writes: []engine.AnyStore{c.Shield}}
		}
		reads = append(reads, c.Shield)
	}
	return engine.Access{Reads: reads}
}

func (s *CollisionResolveSystem) Init() {}

func (s *CollisionResolveSystem) Update(cmd *engine.CommandBuffer) {
	switch s.kind {
	case resolveBullet:
		s.resolveBullets(cmd)
	case resolveAsteroid:
		s.resolveAsteroids(cmd)
	case resolveUFO:
		s.resolveUFOs(cmd)
	case resolvePlayer:
		s.resolvePlayers(cmd)
	}
}

// Bullets are destroyed on any contact
func (s *CollisionResolveSystem) resolveBullets(cmd *engine.CommandBuffer) {
	c := &s.world.Components
	cmd.DestroyAll(s.world.Query().With(c.Bullet, c.CollisionInfo).Without(c.Destroyed).Execute())
}

func (s *CollisionResolveSystem) resolveAsteroids(cmd *engine.CommandBuffer) {
	c := &s.world.Components
	asteroids := s.world.Query().With(c.Asteroid, c.CollisionInfo, c.Position).Without(c.Destroyed).Execute()

	for _, e := range asteroids {
		asteroid, _ := c.Asteroid.Get(e)
		pos, _ := c.Position.Get(e)
		vel, _ := c.Velocity.Get(e)

		cmd.Set(e, component.DestroyedTag{})
		s.world.PushEvent(event.EventAsteroidDestroyed, &event.AsteroidDestroyedPayload{
			Size:     asteroid.Size,
			Position: pos.Vec2,
		})
		playSound(s.world, asteroidSounds[asteroid.Size])

		if next, ok := asteroid.Size.Next(); ok {
			requestSpawn(cmd, component.SpawnRequestComponent{
				Key:              registry.AsteroidKey(next),
				Position:         pos.Vec2,
				Amount:           parameter.FragmentCount,
				PreviousVelocity: vel.Linear,
			})
		}
		requestSpawn(cmd, component.SpawnRequestComponent{
			Key:      registry.VFXKey(component.VFXForAsteroid(asteroid.Size)),
			Position: pos.Vec2,
			Amount:   1,
		})
	}
}

func (s *CollisionResolveSystem) resolveUFOs(cmd *engine.CommandBuffer) {
	c := &s.world.Components
	ufos := s.world.Query().With(c.UFO, c.CollisionInfo, c.Position).Without(c.Destroyed).Execute()

	for _, e := range ufos {
		pos, _ := c.Position.Get(e)
		cmd.Set(e, component.DestroyedTag{})
		s.world.PushEvent(event.EventUFODestroyed, &event.UFODestroyedPayload{Position: pos.Vec2})
		playSound(s.world, core.SoundUFOExplosion)
		requestSpawn(cmd, component.SpawnRequestComponent{
			Key:      registry.VFXKey(component.VFXUFOExplosion),
			Position: pos.Vec2,
			Amount:   1,
		})
	}
}

func (s *CollisionResolveSystem) resolvePlayers(cmd *engine.CommandBuffer) {
	c := &s.world.Components
	players := s.world.Query().With(c.Player, c.CollisionInfo, c.Position).Without(c.Destroyed).Execute()
	if len(players) == 0 {
		return
	}

	// Live power-ups as of this pass
	live := make(map[core.Entity]struct{})
	for _, p := range s.world.Query().With(c.PowerUp).Without(c.Picked, c.Destroyed).Execute() {
		live[p] = struct{}{}
	}

	for _, e := range players {
		info, _ := c.CollisionInfo.Get(e)
		pos, _ := c.Position.Get(e)

		if _, ok := live[info.Other]; ok && s.world.IsAlive(info.Other) {
			cmd.Set(info.Other, component.PickedTag{})
			cmd.Remove(e, c.CollisionInfo)
			continue
		}

		if shield, ok := c.Shield.Get(e); ok {
			if s.shieldMode == parameter.ShieldModePerHit && shield.Remaining > 0 {
				shield.Remaining = 0
				c.Shield.Set(e, shield)
			}
			cmd.Remove(e, c.CollisionInfo)
			s.log.Debug("hit absorbed by shield", zap.Stringer("player", e))
			continue
		}

		cmd.Set(e, component.DestroyedTag{})
		s.world.PushEvent(event.EventPlayerDestroyed, &event.PlayerDestroyedPayload{
			Player:   e,
			Position: pos.Vec2,
		})
		playSound(s.world, core.SoundPlayerDeath)
		s.world.PushEvent(event.EventSoundLoopStop, &event.SoundPayload{Sound: core.SoundPlayerThrust})
	}
}

// positionOf is a transient lookup, zero when the entity is gone
func positionOf(w *engine.World, e core.Entity) (vmath.Vec2, bool) {
	p, ok := w.Components.Position.Get(e)
	return p.Vec2, ok
}
