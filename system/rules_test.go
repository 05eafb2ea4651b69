package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/registry"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

func TestLifetimeExpiry(t *testing.T) {
	h := newHarness(t)
	bullet := h.spawn(registry.BulletKey(), vmath.Vec2{}, vmath.Vec2{})
	h.world.Components.Lifetime.Set(bullet, component.LifetimeComponent{Remaining: 0.05})
	forever := h.spawn(registry.AsteroidKey(component.AsteroidBig), vmath.Vec2{}, vmath.Vec2{})

	h.step(t, 0.03)
	assert.True(t, h.world.IsAlive(bullet))
	h.step(t, 0.03)
	assert.False(t, h.world.IsAlive(bullet))
	assert.True(t, h.world.IsAlive(forever), "no lifetime, no expiry")
}

func TestWrap(t *testing.T) {
	field := engine.NewPlayField(100, 100)
	const margin = 2.0
	at := component.PositionComponent{Vec2: vmath.Vec2{X: 50 + margin + 0.001, Y: 10}}

	moved, ok := Wrap(field, margin, at, component.VelocityComponent{Linear: vmath.Vec2{X: 1}})
	require.True(t, ok)
	assert.Equal(t, vmath.Vec2{X: -50 - margin, Y: 10}, moved.Vec2)

	for _, vx := range []float64{0, -1} {
		still, ok := Wrap(field, margin, at, component.VelocityComponent{Linear: vmath.Vec2{X: vx}})
		assert.False(t, ok)
		assert.Equal(t, at, still)
	}

	below := component.PositionComponent{Vec2: vmath.Vec2{Y: -53}}
	moved, ok = Wrap(field, margin, below, component.VelocityComponent{Linear: vmath.Vec2{Y: -4}})
	require.True(t, ok)
	assert.Equal(t, 52.0, moved.Y)
}

func TestWrapSystemUsesDefaultMargin(t *testing.T) {
	h := newHarness(t)
	bullet := h.spawn(registry.BulletKey(), vmath.Vec2{X: 51.5}, vmath.Vec2{X: 10})
	h.step(t, frame)

	pos, _ := h.world.Components.Position.Get(bullet)
	assert.Equal(t, -50-h.cfg.Field.WrapMargin, pos.X)
}

func TestSteer(t *testing.T) {
	prev := vmath.Vec2{X: 8}

	assert.Equal(t, prev, Steer(vmath.Vec2{}, prev, nil, 8, 12))
	assert.Equal(t, prev, Steer(vmath.Vec2{}, prev, []vmath.Vec2{{X: 20}}, 8, 12), "far obstacles ignored")

	next := Steer(vmath.Vec2{}, prev, []vmath.Vec2{{X: 5, Y: 1}}, 8, 12)
	assert.InDelta(t, 8, vmath.V2Mag(next), 1e-9)
	assert.GreaterOrEqual(t, next.X, 0.0, "keeps travelling left to right")
	assert.Less(t, next.Y, 0.0, "slides away from the obstacle")
}

func TestUFOSteeringWaitsForInterval(t *testing.T) {
	h := newHarness(t)
	c := &h.world.Components
	speed := h.cfg.UFO.Speed
	interval := h.cfg.UFO.MinTimeSinceLastChange

	ufo := h.spawn(registry.UFOKey(), vmath.Vec2{}, vmath.Vec2{X: speed})
	h.spawn(registry.AsteroidKey(component.AsteroidBig), vmath.Vec2{X: 3, Y: 1}, vmath.Vec2{})
	steering := NewUFOSteeringSystem(h.world)
	cb := engine.NewCommandBuffer(h.world)

	dt := interval / 3.5
	for i := 1; i <= 3; i++ {
		h.world.Resource.Time.Update(dt)
		steering.Update(cb)
		vel, _ := c.Velocity.Get(ufo)
		require.Equal(t, vmath.Vec2{X: speed}, vel.Linear, "frame %d keeps the heading", i)
	}

	h.world.Resource.Time.Update(dt)
	steering.Update(cb)
	vel, _ := c.Velocity.Get(ufo)
	assert.NotEqual(t, vmath.Vec2{X: speed}, vel.Linear)
	assert.InDelta(t, speed, vmath.V2Mag(vel.Linear), 1e-9)
	assert.Less(t, vel.Linear.Y, 0.0)

	brain, _ := c.UFOBrain.Get(ufo)
	assert.Zero(t, brain.Elapsed)
}

func TestUFOSprayInheritsMomentum(t *testing.T) {
	h := newHarness(t)
	ufo := h.spawn(registry.UFOKey(), vmath.Vec2{X: -10}, vmath.Vec2{X: 8})
	c := &h.world.Components

	for i := 0; i < 7; i++ {
		h.step(t, 0.1)
	}

	assert.Equal(t, 1, h.rec.sounds(event.EventSoundPlay, core.SoundUFOShoot))
	bullets := h.world.Query().With(c.Bullet).Execute()
	require.Len(t, bullets, 1)

	weapon, _ := c.UFOWeapon.Get(ufo)
	assert.Equal(t, h.cfg.UFO.RotationPerShot, weapon.LastShotRotation)
	vel, _ := c.Velocity.Get(bullets[0])
	expected := vmath.V2Add(vmath.V2Scale(vmath.V2Forward(h.cfg.UFO.RotationPerShot), h.cfg.UFO.BulletSpeed), vmath.Vec2{X: 8})
	assert.InDelta(t, expected.X, vel.Linear.X, 1e-9)
	assert.InDelta(t, expected.Y, vel.Linear.Y, 1e-9)
}

func TestDispatchDeliversOnce(t *testing.T) {
	h := newHarness(t)
	h.world.PushEvent(event.EventLevelStarted, &event.LevelStartedPayload{Level: 2})

	h.step(t, frame)
	h.step(t, frame)

	require.Len(t, h.rec.ofType(event.EventLevelStarted), 1)
	assert.Zero(t, h.world.Events().Len())
}

func TestCullRemovesTaggedAndStaleCollisions(t *testing.T) {
	h := newHarness(t)
	c := &h.world.Components
	parent := h.spawn(registry.AsteroidKey(component.AsteroidBig), vmath.Vec2{}, vmath.Vec2{})
	child := h.world.CreateEntity()
	c.LinkedGroup.Set(parent, component.LinkedGroupComponent{Children: []core.Entity{child}})
	c.Destroyed.Set(parent, component.DestroyedTag{})

	powerUp := h.spawn(registry.PowerUpKey(component.PowerUpWeapon, component.ColorBlue), vmath.Vec2{}, vmath.Vec2{})
	c.CollisionInfo.Set(powerUp, component.CollisionInfoComponent{Other: parent})

	h.step(t, frame)

	assert.False(t, h.world.IsAlive(parent))
	assert.False(t, h.world.IsAlive(child))
	assert.True(t, h.world.IsAlive(powerUp))
	assert.False(t, c.CollisionInfo.Has(powerUp))
	assert.Empty(t, h.world.Query().With(c.Asteroid).Execute())
}
