package system

import (
	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/registry"
)

// WeaponDefaultSystem equips the default weapon on players that have none
// Runs every frame but only matches freshly spawned players
type WeaponDefaultSystem struct {
	world   *engine.World
	loadout component.WeaponGrantComponent
}

// NewWeaponDefaultSystem creates the system that grants loadout to unarmed ships
func NewWeaponDefaultSystem(world *engine.World, loadout component.WeaponGrantComponent) engine.System {
	loadout.Equip.PlaySound = false
	return &WeaponDefaultSystem{world: world, loadout: loadout}
}

func (s *WeaponDefaultSystem) Name() string        { return "weapon_default" }
func (s *WeaponDefaultSystem) Phase() engine.Phase { return engine.PhaseSpawn }

// Access declares the stores the system touches
func (s *WeaponDefaultSystem) Access() engine.Access {
	c := &s.world.Components
	return engine.Access{
		Reads: []engine.AnyStore{c.Player, c.Weapon, c.Destroyed},
	}
}

func (s *WeaponDefaultSystem) Init() {}

func (s *WeaponDefaultSystem) Update(cmd *engine.CommandBuffer) {
	c := &s.world.Components
	for _, e := range s.world.Query().With(c.Player).Without(c.Weapon, c.Destroyed).Execute() {
		cmd.Set(e, s.loadout.Weapon)
		cmd.Set(e, s.loadout.Equip)
	}
}

// WeaponPickupSystem replaces the weapon of the player that picked a weapon power-up
type WeaponPickupSystem struct {
	world *engine.World
}

// NewWeaponPickupSystem creates a new weapon pickup system
func NewWeaponPickupSystem(world *engine.World) engine.System {
	return &WeaponPickupSystem{world: world}
}

func (s *WeaponPickupSystem) Name() string        { return "weapon_pickup" }
func (s *WeaponPickupSystem) Phase() engine.Phase { return engine.PhaseSpawn }

// Access declares the stores the system touches
func (s *WeaponPickupSystem) Access() engine.Access {
	c := &s.world.Components
	return engine.Access{
		Reads: []engine.AnyStore{c.PowerUp, c.Picked, c.CollisionInfo, c.WeaponGrant, c.Player, c.Destroyed},
	}
}

func (s *WeaponPickupSystem) Init() {}

func (s *WeaponPickupSystem) Update(cmd *engine.CommandBuffer) {
	c := &s.world.Components
	picked := s.world.Query().
		With(c.PowerUp, c.Picked, c.CollisionInfo, c.WeaponGrant).
		Without(c.Destroyed).
		Execute()

	for _, p := range picked {
		info, _ := c.CollisionInfo.Get(p)
		grant, _ := c.WeaponGrant.Get(p)

		if c.Player.Has(info.Other) && !c.Destroyed.Has(info.Other) {
			cmd.Set(info.Other, grant.Weapon)
			cmd.Set(info.Other, grant.Equip)
		}
		cmd.DestroyEntity(p)
	}
}

// WeaponEquipSystem swaps the weapon visual of players with a pending equip request
type WeaponEquipSystem struct {
	world *engine.World
	reg   *registry.Registry
}

// NewWeaponEquipSystem creates a new weapon equip system
func NewWeaponEquipSystem(world *engine.World, reg *registry.Registry) engine.System {
	return &WeaponEquipSystem{world: world, reg: reg}
}

func (s *WeaponEquipSystem) Name() string        { return "weapon_equip" }
func (s *WeaponEquipSystem) Phase() engine.Phase { return engine.PhaseReact }

// Access declares the stores the system touches
func (s *WeaponEquipSystem) Access() engine.Access {
	c := &s.world.Components
	return engine.Access{
		Reads:  []engine.AnyStore{c.Player, c.WeaponEquip, c.Position, c.Destroyed},
		Writes: []engine.AnyStore{c.Attachment},
	}
}

func (s *WeaponEquipSystem) Init() {}

func (s *WeaponEquipSystem) Update(cmd *engine.CommandBuffer) {
	c := &s.world.Components
	for _, e := range s.world.Query().With(c.Player, c.WeaponEquip).Without(c.Destroyed).Execute() {
		req, _ := c.WeaponEquip.Get(e)
		pos, _ := positionOf(s.world, e)

		att, _ := c.Attachment.Get(e)
		if att.Weapon != core.NoEntity {
			cmd.DestroyEntity(att.Weapon)
		}
		att.Weapon = attachVisual(cmd, s.reg, e, req.Visual, pos, req.Offset)
		c.Attachment.Set(e, att)

		cmd.Remove(e, c.WeaponEquip)
		s.world.PushEvent(event.EventWeaponEquipped, &event.WeaponEquippedPayload{
			Player:    e,
			PlaySound: req.PlaySound,
		})
		if req.PlaySound {
			playSound(s.world, core.SoundWeaponPicked)
		}
	}
}
