package component

import "github.com/lixenwraith/vi-asteroids/core"

// UFOBrainComponent drives the obstacle-avoidance heuristic
type UFOBrainComponent struct {
	Speed                  float64
	MinDistance            float64 // Asteroids farther away are ignored
	MinTimeSinceLastChange float64 // Seconds between heading recomputations
	Elapsed                float64
}

// UFOWeaponComponent fires a rotating spray on a fixed rate
type UFOWeaponComponent struct {
	BulletsPerSecond float64
	Elapsed          float64
	RotationPerShot  float64 // Radians added to the shot heading per bullet
	LastShotRotation float64
	BulletSpeed      float64
	Bullet           core.PrefabKey
}
