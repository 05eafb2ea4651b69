package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps special keys and runes to actions
type KeyTable struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultKeyTable binds arrows, WASD and vi keys
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionTurnLeft,
			tcell.KeyRight:  ActionTurnRight,
			tcell.KeyUp:     ActionThrust,
			tcell.KeyDown:   ActionJump,
			tcell.KeyTab:    ActionJump,
			tcell.KeyEnter:  ActionRestart,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
			tcell.KeyCtrlS:  ActionToggleMute,
		},
		Runes: map[rune]Action{
			' ': ActionShoot,

			'a': ActionTurnLeft,
			'd': ActionTurnRight,
			'w': ActionThrust,
			's': ActionJump,

			'h': ActionTurnLeft,
			'l': ActionTurnRight,
			'k': ActionThrust,
			'j': ActionJump,

			'r': ActionRestart,
			'q': ActionQuit,
			'm': ActionToggleMute,
		},
	}
}

// Lookup resolves a key event, runes are matched case-insensitively
func (t *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return t.Runes[r]
	}
	return t.Keys[ev.Key()]
}
