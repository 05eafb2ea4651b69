package component

import (
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// WeaponStateComponent is the equipped gun of a player
type WeaponStateComponent struct {
	BulletsPerSecond float64
	Elapsed          float64 // Seconds accumulated toward the next shot
	BulletSpeed      float64
	Bullet           core.PrefabKey
	SpawnOffset      vmath.Vec2 // Muzzle offset in ship-local space
}

// WeaponEquipRequestComponent asks the equip system to swap the weapon visual
type WeaponEquipRequestComponent struct {
	Visual    core.PrefabKey
	Offset    vmath.Vec2
	PlaySound bool
}

// WeaponGrantComponent is carried by a weapon power-up and copied to the picking player
type WeaponGrantComponent struct {
	Weapon WeaponStateComponent
	Equip  WeaponEquipRequestComponent
}
