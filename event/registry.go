package event

var eventNames = [EventTypeCount]string{
	EventNone:              "none",
	EventPlayerDestroyed:   "player_destroyed",
	EventUFODestroyed:      "ufo_destroyed",
	EventAsteroidDestroyed: "asteroid_destroyed",
	EventShieldEnabled:     "shield_enabled",
	EventShieldDepleted:    "shield_depleted",
	EventWeaponEquipped:    "weapon_equipped",
	EventHyperspace:        "hyperspace",
	EventSoundPlay:         "sound_play",
	EventSoundLoopStart:    "sound_loop_start",
	EventSoundLoopStop:     "sound_loop_stop",
	EventGameStarted:       "game_started",
	EventCountdownStarted:  "countdown_started",
	EventLevelStarted:      "level_started",
	EventLivesChanged:      "lives_changed",
	EventGameOver:          "game_over",
}

// String returns the registered name of the event type, used as log field
func (t EventType) String() string {
	if t < 0 || t >= EventTypeCount {
		return "unknown"
	}
	return eventNames[t]
}

// GetEventType resolves a name back to its type
func GetEventType(name string) (EventType, bool) {
	for t, n := range eventNames {
		if n == name {
			return EventType(t), true
		}
	}
	return EventNone, false
}
