package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/registry"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

func TestDefaultWeaponAssignedSilently(t *testing.T) {
	h := newHarness(t)
	player := h.spawn(registry.PlayerKey(), vmath.Vec2{}, vmath.Vec2{})
	c := &h.world.Components

	h.step(t, frame)
	h.step(t, frame)

	weapon, ok := c.Weapon.Get(player)
	require.True(t, ok)
	assert.Equal(t, h.cfg.Weapons.Default.BulletsPerSecond, weapon.BulletsPerSecond)
	assert.Equal(t, registry.BulletKey(), weapon.Bullet)

	equipped := h.rec.ofType(event.EventWeaponEquipped)
	require.Len(t, equipped, 1, "assigned once per player")
	assert.False(t, equipped[0].Payload.(*event.WeaponEquippedPayload).PlaySound)
	assert.Zero(t, h.rec.sounds(event.EventSoundPlay, core.SoundWeaponPicked))
	assert.Equal(t, 1, h.instancesOf(core.PrefabWeaponVisual))
}

func TestWeaponPickupReplacesWeapon(t *testing.T) {
	h := newHarness(t)
	player := h.spawn(registry.PlayerKey(), vmath.Vec2{}, vmath.Vec2{})
	c := &h.world.Components
	h.step(t, frame)
	before, _ := c.Attachment.Get(player)

	powerUp := h.pickup(t, player, registry.PowerUpKey(component.PowerUpWeapon, component.ColorYellow))

	assert.False(t, h.world.IsAlive(powerUp))
	weapon, _ := c.Weapon.Get(player)
	assert.Equal(t, h.cfg.Weapons.Yellow.BulletsPerSecond, weapon.BulletsPerSecond)
	assert.Equal(t, h.cfg.Weapons.Yellow.BulletSpeed, weapon.BulletSpeed)

	after, _ := c.Attachment.Get(player)
	assert.False(t, h.world.IsAlive(before.Weapon))
	assert.True(t, h.world.IsAlive(after.Weapon))
	prefab, _ := c.Prefab.Get(after.Weapon)
	assert.Equal(t, registry.WeaponVisualKey(component.ColorYellow), prefab.Key)
	assert.Equal(t, 1, h.instancesOf(core.PrefabWeaponVisual))

	equipped := h.rec.ofType(event.EventWeaponEquipped)
	require.Len(t, equipped, 2)
	assert.True(t, equipped[1].Payload.(*event.WeaponEquippedPayload).PlaySound)
	assert.Equal(t, 1, h.rec.sounds(event.EventSoundPlay, core.SoundWeaponPicked))
}
