package engine

import (
	"reflect"

	"github.com/lixenwraith/vi-asteroids/component"
)

// ComponentStore holds typed pointers to every component store
// Systems read fields directly instead of looking stores up per frame
type ComponentStore struct {
	// Transform
	Position   *Store[component.PositionComponent]
	Velocity   *Store[component.VelocityComponent]
	Rotation   *Store[component.RotationComponent]
	Collider   *Store[component.ColliderComponent]
	WrapAround *Store[component.WrapAroundComponent]
	Attached   *Store[component.AttachedComponent]

	// Kind
	Asteroid *Store[component.AsteroidComponent]
	Player   *Store[component.PlayerTag]
	Bullet   *Store[component.BulletComponent]
	UFO      *Store[component.UFOTag]
	PowerUp  *Store[component.PowerUpComponent]
	VFX      *Store[component.VFXComponent]
	Prefab   *Store[component.PrefabComponent]

	// Spawn
	SpawnRequest *Store[component.SpawnRequestComponent]
	SpawnMotion  *Store[component.SpawnMotionComponent]
	RandomMotion *Store[component.RandomMotionComponent]
	NeedsInit    *Store[component.NeedsInitTag]

	// Lifecycle
	Lifetime      *Store[component.LifetimeComponent]
	Destroyed     *Store[component.DestroyedTag]
	Picked        *Store[component.PickedTag]
	CollisionInfo *Store[component.CollisionInfoComponent]
	LinkedGroup   *Store[component.LinkedGroupComponent]
	Attachment    *Store[component.AttachmentComponent]

	// Player
	Input    *Store[component.PlayerInputComponent]
	Thruster *Store[component.ThrusterComponent]
	Thrust   *Store[component.ThrustTag]
	Jump     *Store[component.JumpToHyperspaceTag]

	// Weapon
	Weapon      *Store[component.WeaponStateComponent]
	WeaponEquip *Store[component.WeaponEquipRequestComponent]
	WeaponGrant *Store[component.WeaponGrantComponent]

	// Shield
	Shield       *Store[component.ShieldStateComponent]
	ShieldEnable *Store[component.ShieldEnableRequestComponent]
	ShieldGrant  *Store[component.ShieldGrantComponent]

	// UFO
	UFOBrain  *Store[component.UFOBrainComponent]
	UFOWeapon *Store[component.UFOWeaponComponent]
}

// register creates a store and records it in the world lifecycle and type index
func register[T any](w *World) *Store[T] {
	s := NewStore[T]()
	w.stores = append(w.stores, s)
	w.storesByType[s.componentType()] = s
	return s
}

func (w *World) initComponentStores() {
	w.storesByType = make(map[reflect.Type]AnyStore)
	c := &w.Components

	c.Position = register[component.PositionComponent](w)
	c.Velocity = register[component.VelocityComponent](w)
	c.Rotation = register[component.RotationComponent](w)
	c.Collider = register[component.ColliderComponent](w)
	c.WrapAround = register[component.WrapAroundComponent](w)
	c.Attached = register[component.AttachedComponent](w)

	c.Asteroid = register[component.AsteroidComponent](w)
	c.Player = register[component.PlayerTag](w)
	c.Bullet = register[component.BulletComponent](w)
	c.UFO = register[component.UFOTag](w)
	c.PowerUp = register[component.PowerUpComponent](w)
	c.VFX = register[component.VFXComponent](w)
	c.Prefab = register[component.PrefabComponent](w)

	c.SpawnRequest = register[component.SpawnRequestComponent](w)
	c.SpawnMotion = register[component.SpawnMotionComponent](w)
	c.RandomMotion = register[component.RandomMotionComponent](w)
	c.NeedsInit = register[component.NeedsInitTag](w)

	c.Lifetime = register[component.LifetimeComponent](w)
	c.Destroyed = register[component.DestroyedTag](w)
	c.Picked = register[component.PickedTag](w)
	c.CollisionInfo = register[component.CollisionInfoComponent](w)
	c.LinkedGroup = register[component.LinkedGroupComponent](w)
	c.Attachment = register[component.AttachmentComponent](w)

	c.Input = register[component.PlayerInputComponent](w)
	c.Thruster = register[component.ThrusterComponent](w)
	c.Thrust = register[component.ThrustTag](w)
	c.Jump = register[component.JumpToHyperspaceTag](w)

	c.Weapon = register[component.WeaponStateComponent](w)
	c.WeaponEquip = register[component.WeaponEquipRequestComponent](w)
	c.WeaponGrant = register[component.WeaponGrantComponent](w)

	c.Shield = register[component.ShieldStateComponent](w)
	c.ShieldEnable = register[component.ShieldEnableRequestComponent](w)
	c.ShieldGrant = register[component.ShieldGrantComponent](w)

	c.UFOBrain = register[component.UFOBrainComponent](w)
	c.UFOWeapon = register[component.UFOWeaponComponent](w)
}
