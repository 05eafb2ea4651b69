package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/config"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/parameter"
	"github.com/lixenwraith/vi-asteroids/registry"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

func TestCollisionTagDeduplicates(t *testing.T) {
	w := engine.NewTestWorld()
	c := &w.Components
	a, b, d, gone := w.CreateEntity(), w.CreateEntity(), w.CreateEntity(), w.CreateEntity()
	picked := w.CreateEntity()
	c.Picked.Set(picked, component.PickedTag{})
	w.DestroyEntity(gone)

	w.Resource.Overlaps.Push(a, b)
	w.Resource.Overlaps.Push(a, d)
	w.Resource.Overlaps.Push(d, gone)
	w.Resource.Overlaps.Push(d, picked)
	w.Resource.Overlaps.Push(d, d)

	sys := NewCollisionTagSystem(w)
	cb := engine.NewCommandBuffer(w)
	sys.Update(cb)
	cb.Apply()

	info, ok := c.CollisionInfo.Get(a)
	require.True(t, ok)
	assert.Equal(t, b, info.Other)
	info, ok = c.CollisionInfo.Get(b)
	require.True(t, ok)
	assert.Equal(t, a, info.Other)

	assert.False(t, c.CollisionInfo.Has(d), "a already collided this frame")
	assert.False(t, c.CollisionInfo.Has(picked))
	assert.Zero(t, w.Resource.Overlaps.Len(), "pairs are drained")
}

func TestBigAsteroidHitByBullet(t *testing.T) {
	h := newHarness(t)
	asteroid := h.spawn(registry.AsteroidKey(component.AsteroidBig), vmath.Vec2{}, vmath.Vec2{X: 1})
	bullet := h.spawn(registry.BulletKey(), vmath.Vec2{}, vmath.Vec2{})
	h.collide(asteroid, bullet)

	h.step(t, frame)

	assert.False(t, h.world.IsAlive(asteroid))
	assert.False(t, h.world.IsAlive(bullet))

	fragments := h.asteroids(component.AsteroidMedium)
	require.Len(t, fragments, parameter.FragmentCount)
	c := &h.world.Components
	medium := h.cfg.Asteroids.Medium
	speeds := make([]float64, 0, len(fragments))
	for _, f := range fragments {
		pos, _ := c.Position.Get(f)
		assert.Equal(t, vmath.Vec2{}, pos.Vec2)
		assert.False(t, c.NeedsInit.Has(f))

		vel, ok := c.Velocity.Get(f)
		require.True(t, ok)
		speed := vmath.V2Mag(vel.Linear)
		assert.GreaterOrEqual(t, speed, medium.MinSpeed)
		assert.LessOrEqual(t, speed, medium.MaxSpeed)
		cos := vmath.V2Dot(vmath.V2Normalize(vel.Linear), vmath.Vec2{X: 1})
		assert.GreaterOrEqual(t, cos, math.Cos(parameter.FragmentSpread)-1e-9, "fragment keeps the inherited heading")
		speeds = append(speeds, speed)
	}
	assert.NotEqual(t, speeds[0], speeds[1], "fragments draw from distinct streams")
	assert.Equal(t, 1, h.instancesOf(core.PrefabVFX))

	destroyed := h.rec.ofType(event.EventAsteroidDestroyed)
	require.Len(t, destroyed, 1)
	payload := destroyed[0].Payload.(*event.AsteroidDestroyedPayload)
	assert.Equal(t, component.AsteroidBig, payload.Size)
	assert.Equal(t, vmath.Vec2{}, payload.Position)
	assert.Equal(t, 1, h.rec.sounds(event.EventSoundPlay, core.SoundAsteroidBigExplosion))

	h.step(t, frame)
	assert.Len(t, h.rec.ofType(event.EventAsteroidDestroyed), 1, "delivered once")
	assert.Equal(t, 0, c.SpawnRequest.Count(), "requests consumed")
}

func TestSmallAsteroidLeavesNoFragments(t *testing.T) {
	h := newHarness(t)
	asteroid := h.spawn(registry.AsteroidKey(component.AsteroidSmall), vmath.Vec2{X: 10}, vmath.Vec2{Y: 2})
	bullet := h.spawn(registry.BulletKey(), vmath.Vec2{X: 10}, vmath.Vec2{})
	h.collide(bullet, asteroid)

	h.step(t, frame)

	assert.False(t, h.world.IsAlive(asteroid))
	assert.Zero(t, h.world.Components.Asteroid.Count())
	assert.Len(t, h.rec.ofType(event.EventAsteroidDestroyed), 1)
}

func TestMediumAsteroidFragmentsIntoSmall(t *testing.T) {
	h := newHarness(t)
	asteroid := h.spawn(registry.AsteroidKey(component.AsteroidMedium), vmath.Vec2{X: -5, Y: 5}, vmath.Vec2{Y: -3})
	ufo := h.spawn(registry.UFOKey(), vmath.Vec2{X: -5, Y: 5}, vmath.Vec2{X: 8})
	h.collide(asteroid, ufo)

	h.step(t, frame)

	assert.Len(t, h.asteroids(component.AsteroidSmall), 2)
	assert.False(t, h.world.IsAlive(ufo))
	ufoEvents := h.rec.ofType(event.EventUFODestroyed)
	require.Len(t, ufoEvents, 1)
	assert.Equal(t, vmath.Vec2{X: -5, Y: 5}, ufoEvents[0].Payload.(*event.UFODestroyedPayload).Position)
	assert.Equal(t, 1, h.rec.sounds(event.EventSoundPlay, core.SoundUFOExplosion))
	assert.Equal(t, 2, h.instancesOf(core.PrefabVFX))
}

func TestUnshieldedPlayerDies(t *testing.T) {
	h := newHarness(t)
	player := h.spawn(registry.PlayerKey(), vmath.Vec2{X: 3, Y: 4}, vmath.Vec2{})
	h.step(t, frame)
	weaponVisual, _ := h.world.Components.Attachment.Get(player)
	require.True(t, h.world.IsAlive(weaponVisual.Weapon))

	asteroid := h.spawn(registry.AsteroidKey(component.AsteroidBig), vmath.Vec2{X: 3, Y: 4}, vmath.Vec2{X: 1})
	h.collide(player, asteroid)
	h.step(t, frame)

	assert.False(t, h.world.IsAlive(player))
	assert.False(t, h.world.IsAlive(weaponVisual.Weapon), "visual destroyed with its player")

	deaths := h.rec.ofType(event.EventPlayerDestroyed)
	require.Len(t, deaths, 1)
	assert.Equal(t, vmath.Vec2{X: 3, Y: 4}, deaths[0].Payload.(*event.PlayerDestroyedPayload).Position)
	assert.Equal(t, 1, h.rec.sounds(event.EventSoundPlay, core.SoundPlayerDeath))
	assert.Equal(t, 1, h.rec.sounds(event.EventSoundLoopStop, core.SoundPlayerThrust))
}

func TestShieldedPlayerSurvives(t *testing.T) {
	h := newHarness(t)
	player := h.spawn(registry.PlayerKey(), vmath.Vec2{}, vmath.Vec2{})
	h.world.Components.Shield.Set(player, component.ShieldStateComponent{Remaining: 5})

	for i := 0; i < 3; i++ {
		asteroid := h.spawn(registry.AsteroidKey(component.AsteroidSmall), vmath.Vec2{}, vmath.Vec2{X: 1})
		h.collide(player, asteroid)
		h.step(t, frame)
	}

	assert.True(t, h.world.IsAlive(player))
	assert.Empty(t, h.rec.ofType(event.EventPlayerDestroyed))
	assert.False(t, h.world.Components.CollisionInfo.Has(player), "collision info never outlives the frame")
	shield, ok := h.world.Components.Shield.Get(player)
	require.True(t, ok, "duration shields absorb every hit")
	assert.InDelta(t, 5-3*frame, shield.Remaining, 1e-9)
}

func TestPerHitShieldAbsorbsOneHit(t *testing.T) {
	h := newHarness(t, func(cfg *config.Config) { cfg.Shield.Mode = parameter.ShieldModePerHit })
	player := h.spawn(registry.PlayerKey(), vmath.Vec2{}, vmath.Vec2{})
	h.world.Components.Shield.Set(player, component.ShieldStateComponent{Remaining: 5})

	asteroid := h.spawn(registry.AsteroidKey(component.AsteroidSmall), vmath.Vec2{}, vmath.Vec2{X: 1})
	h.collide(player, asteroid)
	h.step(t, frame)

	assert.True(t, h.world.IsAlive(player))
	assert.False(t, h.world.Components.Shield.Has(player))
	assert.Len(t, h.rec.ofType(event.EventShieldDepleted), 1)

	second := h.spawn(registry.AsteroidKey(component.AsteroidSmall), vmath.Vec2{}, vmath.Vec2{X: 1})
	h.collide(player, second)
	h.step(t, frame)

	assert.False(t, h.world.IsAlive(player))
	assert.Len(t, h.rec.ofType(event.EventShieldDepleted), 1)
	assert.Len(t, h.rec.ofType(event.EventPlayerDestroyed), 1)
}

func TestPlayerPicksPowerUp(t *testing.T) {
	h := newHarness(t)
	player := h.spawn(registry.PlayerKey(), vmath.Vec2{}, vmath.Vec2{})
	powerUp := h.spawn(registry.PowerUpKey(component.PowerUpShield, component.ColorBlue), vmath.Vec2{}, vmath.Vec2{})
	h.collide(powerUp, player)

	h.step(t, frame)

	assert.True(t, h.world.IsAlive(player))
	assert.False(t, h.world.IsAlive(powerUp))
	assert.Empty(t, h.rec.ofType(event.EventPlayerDestroyed))
	assert.True(t, h.world.Components.Shield.Has(player))
}

func TestCollisionResolveRunsInOneWave(t *testing.T) {
	h := newHarness(t)
	waves := h.sched.Waves(engine.PhaseResolve)
	require.NotEmpty(t, waves)
	for _, name := range resolveNames {
		assert.Contains(t, waves[0], name)
	}
	assert.NotContains(t, waves[0], "shield_deplete", "depletion reads what the player job saw")
}
