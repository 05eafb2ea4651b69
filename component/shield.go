package component

import "github.com/lixenwraith/vi-asteroids/core"

// ShieldStateComponent is an active shield; absence means no shield
type ShieldStateComponent struct {
	Remaining float64 // Seconds, only decreases for one shield instance
	Visual    core.PrefabKey
}

// ShieldEnableRequestComponent asks the enable system to attach the shield visual
type ShieldEnableRequestComponent struct{}

// ShieldGrantComponent is carried by a shield power-up
type ShieldGrantComponent struct {
	Duration float64
	Visual   core.PrefabKey
}
