// Package input maps terminal key events to player intents
// Terminals report presses and auto-repeats but never releases, so a key counts as held
// until no repeat arrived for the hold timeout
package input

// Action is what a key means to the game, independent of the key
type Action uint8

const (
	ActionNone Action = iota

	// Ship controls, held
	ActionTurnLeft
	ActionTurnRight
	ActionThrust
	ActionShoot

	// Ship controls, one-shot
	ActionJump

	// Session controls, handled by the harness
	ActionRestart
	ActionQuit
	ActionToggleMute

	ActionCount
)

var actionNames = [ActionCount]string{
	ActionNone:       "none",
	ActionTurnLeft:   "turn_left",
	ActionTurnRight:  "turn_right",
	ActionThrust:     "thrust",
	ActionShoot:      "shoot",
	ActionJump:       "jump",
	ActionRestart:    "restart",
	ActionQuit:       "quit",
	ActionToggleMute: "toggle_mute",
}

func (a Action) String() string {
	if a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Held reports whether the action is a continuous control
func (a Action) Held() bool {
	return a >= ActionTurnLeft && a <= ActionShoot
}
