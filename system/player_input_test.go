package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/registry"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

func (h *harness) setInput(e core.Entity, in component.PlayerInputComponent) {
	h.world.Components.Input.Set(e, in)
}

func TestFireRateHoldsUnderAnyStep(t *testing.T) {
	for _, dt := range []float64{0.01, frame, 0.3} {
		h := newHarness(t)
		player := h.spawn(registry.PlayerKey(), vmath.Vec2{}, vmath.Vec2{})
		loadout := registry.DefaultWeapon(h.cfg)
		loadout.Weapon.BulletsPerSecond = 2
		h.world.Components.Weapon.Set(player, loadout.Weapon)
		h.setInput(player, component.PlayerInputComponent{Shoot: true})

		steps := int(math.Round(10.25 / dt))
		for i := 0; i < steps; i++ {
			h.step(t, dt)
		}

		elapsed := float64(steps) * dt
		assert.Equal(t, int(elapsed/0.5), h.rec.sounds(event.EventSoundPlay, core.SoundPlayerShoot), "dt=%v", dt)
	}
}

func TestFireRateNeverBursts(t *testing.T) {
	h := newHarness(t)
	player := h.spawn(registry.PlayerKey(), vmath.Vec2{}, vmath.Vec2{})
	loadout := registry.DefaultWeapon(h.cfg)
	loadout.Weapon.BulletsPerSecond = 2
	h.world.Components.Weapon.Set(player, loadout.Weapon)

	// Idle long enough to bank several shots
	h.step(t, 3)
	h.setInput(player, component.PlayerInputComponent{Shoot: true})
	h.step(t, frame)
	h.step(t, frame)

	assert.Equal(t, 1, h.rec.sounds(event.EventSoundPlay, core.SoundPlayerShoot))
}

func TestBulletSpawnsAtMuzzle(t *testing.T) {
	h := newHarness(t)
	player := h.spawn(registry.PlayerKey(), vmath.Vec2{X: 5}, vmath.Vec2{X: 1})
	c := &h.world.Components
	loadout := registry.DefaultWeapon(h.cfg)
	loadout.Weapon.Elapsed = 1
	c.Weapon.Set(player, loadout.Weapon)
	c.Rotation.Set(player, component.RotationComponent{Angle: math.Pi / 2})
	h.setInput(player, component.PlayerInputComponent{Shoot: true})

	h.step(t, frame)

	var bullets []core.Entity
	for _, e := range h.world.Query().With(c.Bullet).Execute() {
		bullets = append(bullets, e)
	}
	require.Len(t, bullets, 1)
	b := bullets[0]

	owner, _ := c.Bullet.Get(b)
	assert.Equal(t, player, owner.Owner)
	pos, _ := c.Position.Get(b)
	assert.InDelta(t, 5-h.cfg.Weapons.Default.MuzzleOffset, pos.X, 1e-9, "muzzle rotated with the ship")
	assert.InDelta(t, 0, pos.Y, 1e-9)
	vel, _ := c.Velocity.Get(b)
	assert.InDelta(t, 1-h.cfg.Weapons.Default.BulletSpeed, vel.Linear.X, 1e-9, "inherits ship velocity")
}

func TestThrustSoftCapAndLoopSound(t *testing.T) {
	h := newHarness(t)
	player := h.spawn(registry.PlayerKey(), vmath.Vec2{}, vmath.Vec2{})
	c := &h.world.Components
	h.setInput(player, component.PlayerInputComponent{Thrust: true})

	for i := 0; i < 5; i++ {
		h.step(t, frame)
	}
	vel, _ := c.Velocity.Get(player)
	assert.InDelta(t, 5*frame*h.cfg.Player.Acceleration, vel.Linear.Y, 1e-9)
	assert.True(t, c.Thrust.Has(player))
	assert.Equal(t, 1, h.rec.sounds(event.EventSoundLoopStart, core.SoundPlayerThrust), "loop starts on transition only")

	c.Velocity.Set(player, component.VelocityComponent{Linear: vmath.Vec2{X: 3, Y: h.cfg.Player.MaxSpeed + 1}})
	h.step(t, frame)
	vel, _ = c.Velocity.Get(player)
	assert.Equal(t, vmath.Vec2{X: 3, Y: h.cfg.Player.MaxSpeed + 1}, vel.Linear, "no forward thrust above the cap")

	h.setInput(player, component.PlayerInputComponent{TurnLeft: true})
	h.step(t, frame)
	h.step(t, frame)
	assert.False(t, c.Thrust.Has(player))
	assert.Equal(t, 1, h.rec.sounds(event.EventSoundLoopStop, core.SoundPlayerThrust))
	rot, _ := c.Rotation.Get(player)
	assert.InDelta(t, 2*frame*h.cfg.Player.TurnRate, rot.Angle, 1e-9)
}

func TestJumpIsOneShot(t *testing.T) {
	h := newHarness(t)
	player := h.spawn(registry.PlayerKey(), vmath.Vec2{X: 1, Y: 1}, vmath.Vec2{})
	c := &h.world.Components
	h.setInput(player, component.PlayerInputComponent{Jump: true})

	h.step(t, frame)
	h.step(t, frame)

	jumps := h.rec.ofType(event.EventHyperspace)
	require.Len(t, jumps, 1)
	payload := jumps[0].Payload.(*event.HyperspacePayload)
	assert.Equal(t, vmath.Vec2{X: 1, Y: 1}, payload.From)

	pos, _ := c.Position.Get(player)
	assert.Equal(t, payload.To, pos.Vec2)
	assert.True(t, h.world.Resource.Field.Contains(pos.Vec2))
	assert.False(t, c.Jump.Has(player))
	in, _ := c.Input.Get(player)
	assert.False(t, in.Jump)
	assert.Equal(t, 1, h.rec.sounds(event.EventSoundPlay, core.SoundPlayerHyperspace))
}
