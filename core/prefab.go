package core

import "strconv"

// PrefabClass is the entity family a template belongs to
type PrefabClass uint8

const (
	PrefabNone PrefabClass = iota
	PrefabPlayer
	PrefabAsteroid  // Variant: asteroid size
	PrefabBullet    // Player bullet
	PrefabUFOBullet // UFO bullet
	PrefabUFO
	PrefabShieldPowerUp // Variant: color
	PrefabWeaponPowerUp // Variant: color
	PrefabShieldVisual  // Variant: color
	PrefabWeaponVisual  // Variant: color, 0 is the default weapon
	PrefabVFX           // Variant: VFX kind
	PrefabClassCount
)

var prefabClassNames = [PrefabClassCount]string{
	PrefabNone:          "none",
	PrefabPlayer:        "player",
	PrefabAsteroid:      "asteroid",
	PrefabBullet:        "bullet",
	PrefabUFOBullet:     "ufo_bullet",
	PrefabUFO:           "ufo",
	PrefabShieldPowerUp: "shield_powerup",
	PrefabWeaponPowerUp: "weapon_powerup",
	PrefabShieldVisual:  "shield_visual",
	PrefabWeaponVisual:  "weapon_visual",
	PrefabVFX:           "vfx",
}

func (c PrefabClass) String() string {
	if c >= PrefabClassCount {
		return "unknown"
	}
	return prefabClassNames[c]
}

// PrefabKey selects one template in the prefab registry
type PrefabKey struct {
	Class   PrefabClass
	Variant uint8
}

func (k PrefabKey) String() string {
	return k.Class.String() + "/" + strconv.Itoa(int(k.Variant))
}
