package registry

import (
	"fmt"

	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/config"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// Power-up colors that have pickups, shields and weapon visuals
var PickupColors = []component.PowerUpColor{
	component.ColorBlue,
	component.ColorRed,
	component.ColorYellow,
	component.ColorGreen,
}

// Key helpers
func PlayerKey() core.PrefabKey { return core.PrefabKey{Class: core.PrefabPlayer} }
func BulletKey() core.PrefabKey { return core.PrefabKey{Class: core.PrefabBullet} }
func UFOKey() core.PrefabKey    { return core.PrefabKey{Class: core.PrefabUFO} }
func UFOBulletKey() core.PrefabKey {
	return core.PrefabKey{Class: core.PrefabUFOBullet}
}
func AsteroidKey(s component.AsteroidSize) core.PrefabKey {
	return core.PrefabKey{Class: core.PrefabAsteroid, Variant: uint8(s)}
}
func VFXKey(k component.VFXKind) core.PrefabKey {
	return core.PrefabKey{Class: core.PrefabVFX, Variant: uint8(k)}
}
func PowerUpKey(kind component.PowerUpKind, c component.PowerUpColor) core.PrefabKey {
	class := core.PrefabShieldPowerUp
	if kind == component.PowerUpWeapon {
		class = core.PrefabWeaponPowerUp
	}
	return core.PrefabKey{Class: class, Variant: uint8(c)}
}
func ShieldVisualKey(c component.PowerUpColor) core.PrefabKey {
	return core.PrefabKey{Class: core.PrefabShieldVisual, Variant: uint8(c)}
}
func WeaponVisualKey(c component.PowerUpColor) core.PrefabKey {
	return core.PrefabKey{Class: core.PrefabWeaponVisual, Variant: uint8(c)}
}

// RequiredKeys lists every kind the simulation may spawn
func RequiredKeys() []core.PrefabKey {
	keys := []core.PrefabKey{PlayerKey(), BulletKey(), UFOBulletKey(), UFOKey(), WeaponVisualKey(component.ColorDefault)}
	for s := component.AsteroidSize(0); s < component.AsteroidSizeCount; s++ {
		keys = append(keys, AsteroidKey(s))
	}
	for k := component.VFXKind(0); k < component.VFXKindCount; k++ {
		keys = append(keys, VFXKey(k))
	}
	for _, c := range PickupColors {
		keys = append(keys,
			PowerUpKey(component.PowerUpShield, c),
			PowerUpKey(component.PowerUpWeapon, c),
			ShieldVisualKey(c),
			WeaponVisualKey(c))
	}
	return keys
}

// DefaultWeapon is the loadout assigned to a freshly spawned player
func DefaultWeapon(cfg *config.Config) component.WeaponGrantComponent {
	return weaponGrant(cfg.Weapons.Default, component.ColorDefault, false)
}

func weaponGrant(w config.WeaponConfig, c component.PowerUpColor, sound bool) component.WeaponGrantComponent {
	offset := vmath.Vec2{Y: w.MuzzleOffset}
	return component.WeaponGrantComponent{
		Weapon: component.WeaponStateComponent{
			BulletsPerSecond: w.BulletsPerSecond,
			BulletSpeed:      w.BulletSpeed,
			Bullet:           BulletKey(),
			SpawnOffset:      offset,
		},
		Equip: component.WeaponEquipRequestComponent{
			Visual:    WeaponVisualKey(c),
			Offset:    offset,
			PlaySound: sound,
		},
	}
}

// Build creates, validates and freezes the templates described by cfg
func Build(cfg *config.Config) (*Registry, error) {
	r := New()
	add := func(key core.PrefabKey, comps ...any) {
		comps = append(comps, component.PrefabComponent{Key: key})
		// Registration cannot fail before Freeze
		_ = r.Register(Template{Key: key, Components: comps})
	}
	motion := func() []any {
		return []any{
			component.PositionComponent{},
			component.VelocityComponent{},
			component.RotationComponent{},
		}
	}

	add(PlayerKey(), append(motion(),
		component.PlayerTag{},
		component.ColliderComponent{
			Radius: cfg.Player.Radius,
			Layer:  component.LayerPlayer,
			Mask:   component.LayerAsteroid | component.LayerUFO | component.LayerUFOBullet | component.LayerPowerUp,
		},
		component.WrapAroundComponent{Margin: cfg.Player.Margin},
		component.ThrusterComponent{
			Acceleration: cfg.Player.Acceleration,
			MaxSpeed:     cfg.Player.MaxSpeed,
			TurnRate:     cfg.Player.TurnRate,
		},
		component.PlayerInputComponent{},
		component.AttachmentComponent{},
	)...)

	sizes := map[component.AsteroidSize]config.AsteroidConfig{
		component.AsteroidBig:    cfg.Asteroids.Big,
		component.AsteroidMedium: cfg.Asteroids.Medium,
		component.AsteroidSmall:  cfg.Asteroids.Small,
	}
	for size, a := range sizes {
		add(AsteroidKey(size), append(motion(),
			component.AsteroidComponent{Size: size},
			component.ColliderComponent{
				Radius: a.Radius,
				Layer:  component.LayerAsteroid,
				Mask:   component.LayerPlayer | component.LayerBullet | component.LayerUFOBullet | component.LayerUFO,
			},
			component.WrapAroundComponent{Margin: a.Radius},
			component.RandomMotionComponent{MinSpeed: a.MinSpeed, MaxSpeed: a.MaxSpeed, MaxAngular: a.MaxAngular},
		)...)
	}

	add(BulletKey(), append(motion(),
		component.BulletComponent{},
		component.ColliderComponent{
			Radius: cfg.Bullet.Radius,
			Layer:  component.LayerBullet,
			Mask:   component.LayerAsteroid | component.LayerUFO,
		},
		component.WrapAroundComponent{},
		component.LifetimeComponent{Remaining: cfg.Bullet.Lifetime},
	)...)

	add(UFOBulletKey(), append(motion(),
		component.BulletComponent{},
		component.ColliderComponent{
			Radius: cfg.Bullet.Radius,
			Layer:  component.LayerUFOBullet,
			Mask:   component.LayerPlayer | component.LayerAsteroid,
		},
		component.WrapAroundComponent{},
		component.LifetimeComponent{Remaining: cfg.UFO.BulletLifetime},
	)...)

	add(UFOKey(), append(motion(),
		component.UFOTag{},
		component.ColliderComponent{
			Radius: cfg.UFO.Radius,
			Layer:  component.LayerUFO,
			Mask:   component.LayerPlayer | component.LayerBullet | component.LayerAsteroid,
		},
		component.WrapAroundComponent{Margin: cfg.UFO.Radius},
		component.UFOBrainComponent{
			Speed:                  cfg.UFO.Speed,
			MinDistance:            cfg.UFO.MinDistance,
			MinTimeSinceLastChange: cfg.UFO.MinTimeSinceLastChange,
		},
		component.UFOWeaponComponent{
			BulletsPerSecond: cfg.UFO.BulletsPerSecond,
			RotationPerShot:  cfg.UFO.RotationPerShot,
			BulletSpeed:      cfg.UFO.BulletSpeed,
			Bullet:           UFOBulletKey(),
		},
	)...)

	shieldDurations := map[component.PowerUpColor]float64{
		component.ColorBlue:   cfg.Shield.Blue,
		component.ColorRed:    cfg.Shield.Red,
		component.ColorYellow: cfg.Shield.Yellow,
		component.ColorGreen:  cfg.Shield.Green,
	}
	weapons := map[component.PowerUpColor]config.WeaponConfig{
		component.ColorBlue:   cfg.Weapons.Blue,
		component.ColorRed:    cfg.Weapons.Red,
		component.ColorYellow: cfg.Weapons.Yellow,
		component.ColorGreen:  cfg.Weapons.Green,
	}
	powerUp := func(kind component.PowerUpKind, c component.PowerUpColor, grant any) []any {
		comps := append(motion(),
			component.PowerUpComponent{Kind: kind, Color: c},
			component.ColliderComponent{
				Radius: cfg.PowerUp.Radius,
				Layer:  component.LayerPowerUp,
				Mask:   component.LayerPlayer,
			},
			component.WrapAroundComponent{Margin: cfg.PowerUp.Radius},
			grant,
		)
		if cfg.PowerUp.Lifetime > 0 {
			comps = append(comps, component.LifetimeComponent{Remaining: cfg.PowerUp.Lifetime})
		}
		return comps
	}
	for _, c := range PickupColors {
		add(PowerUpKey(component.PowerUpShield, c), powerUp(component.PowerUpShield, c,
			component.ShieldGrantComponent{Duration: shieldDurations[c], Visual: ShieldVisualKey(c)})...)
		add(PowerUpKey(component.PowerUpWeapon, c), powerUp(component.PowerUpWeapon, c,
			weaponGrant(weapons[c], c, true))...)
		add(ShieldVisualKey(c), component.PositionComponent{}, component.RotationComponent{})
		add(WeaponVisualKey(c), component.PositionComponent{}, component.RotationComponent{})
	}
	add(WeaponVisualKey(component.ColorDefault), component.PositionComponent{}, component.RotationComponent{})

	for k := component.VFXKind(0); k < component.VFXKindCount; k++ {
		add(VFXKey(k),
			component.VFXComponent{Kind: k},
			component.PositionComponent{},
			component.LifetimeComponent{Remaining: cfg.PowerUp.VFXLifetime},
		)
	}

	if err := r.Validate(RequiredKeys()); err != nil {
		return nil, fmt.Errorf("build templates: %w", err)
	}
	r.Freeze()
	return r, nil
}
