package event

import (
	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// EventType represents the type of game event
type EventType int

const (
	EventNone EventType = iota

	// === Gameplay Event ===

	// EventPlayerDestroyed fires when an unshielded player collides
	// Trigger: CollisionResolveSystem
	// Consumer: game.Manager | Payload: *PlayerDestroyedPayload
	EventPlayerDestroyed

	// EventUFODestroyed fires when a UFO collides with anything
	// Trigger: CollisionResolveSystem
	// Consumer: game.Manager | Payload: *UFODestroyedPayload
	EventUFODestroyed

	// EventAsteroidDestroyed fires when an asteroid collides with anything
	// Trigger: CollisionResolveSystem
	// Consumer: game.Manager | Payload: *AsteroidDestroyedPayload
	EventAsteroidDestroyed

	// EventShieldEnabled fires after a shield visual is attached
	// Trigger: ShieldEnableSystem
	// Consumer: game.Manager, HUD | Payload: *ShieldEnabledPayload
	EventShieldEnabled

	// EventShieldDepleted fires once per shield instance when its timer runs out
	// Trigger: ShieldDepleteSystem
	// Consumer: game.Manager, HUD | Payload: *ShieldDepletedPayload
	EventShieldDepleted

	// EventWeaponEquipped fires after a weapon visual is attached
	// Trigger: WeaponEquipSystem
	// Consumer: HUD | Payload: *WeaponEquippedPayload
	EventWeaponEquipped

	// EventHyperspace fires after a player teleport
	// Trigger: HyperspaceSystem
	// Consumer: game.Manager | Payload: *HyperspacePayload
	EventHyperspace

	// === Audio Event ===

	// EventSoundPlay requests a one-shot sound
	// Trigger: rule systems | Consumer: audio.Listener | Payload: *SoundPayload
	EventSoundPlay

	// EventSoundLoopStart starts a looping sound, repeated starts are idempotent at the sink
	// Trigger: PlayerInputSystem | Consumer: audio.Listener | Payload: *SoundPayload
	EventSoundLoopStart

	// EventSoundLoopStop stops a looping sound
	// Trigger: PlayerInputSystem, CollisionResolveSystem | Consumer: audio.Listener | Payload: *SoundPayload
	EventSoundLoopStop

	// === Orchestrator Event ===

	// EventGameStarted fires when a new game begins
	// Trigger: game.Manager | Consumer: HUD | Payload: *GameStartedPayload
	EventGameStarted

	// EventCountdownStarted fires when a spawn countdown begins
	// Trigger: game.Manager | Consumer: HUD | Payload: *CountdownStartedPayload
	EventCountdownStarted

	// EventLevelStarted fires after the level's asteroids and power-ups are requested
	// Trigger: game.Manager | Consumer: HUD | Payload: *LevelStartedPayload
	EventLevelStarted

	// EventLivesChanged fires on game start and each lost life
	// Trigger: game.Manager | Consumer: HUD | Payload: *LivesChangedPayload
	EventLivesChanged

	// EventGameOver fires when the last life is lost
	// Trigger: game.Manager | Consumer: HUD | Payload: *GameOverPayload
	EventGameOver

	EventTypeCount
)

// GameEvent is one mailbox entry, Payload holds the typed pointer documented on the type
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

type PlayerDestroyedPayload struct {
	Player   core.Entity
	Position vmath.Vec2
}

type UFODestroyedPayload struct {
	Position vmath.Vec2
}

type AsteroidDestroyedPayload struct {
	Size     component.AsteroidSize
	Position vmath.Vec2
}

type ShieldEnabledPayload struct {
	Player   core.Entity
	Duration float64
}

type ShieldDepletedPayload struct {
	Player core.Entity
}

type WeaponEquippedPayload struct {
	Player    core.Entity
	PlaySound bool
}

type HyperspacePayload struct {
	Player core.Entity
	From   vmath.Vec2
	To     vmath.Vec2
}

type SoundPayload struct {
	Sound core.SoundType
}

type GameStartedPayload struct {
	GameID string
}

type CountdownStartedPayload struct {
	Seconds float64
}

type LevelStartedPayload struct {
	Level int
}

type LivesChangedPayload struct {
	Lives int
}

type GameOverPayload struct {
	Level int
}
