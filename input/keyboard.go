package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/config"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/engine"
)

// Keyboard accumulates key events between frames into one player intent
// Not safe for concurrent use; the harness feeds events and reads intents on one goroutine
type Keyboard struct {
	table       *KeyTable
	holdTimeout float64 // Seconds

	// Seconds since the last press or repeat, present while held
	held map[Action]float64

	jump    *rate.Limiter
	pending bool
	now     func() time.Time
}

// NewKeyboard creates a keyboard with the default key table
func NewKeyboard(cfg config.InputConfig) *Keyboard {
	return &Keyboard{
		table:       DefaultKeyTable(),
		holdTimeout: cfg.HoldTimeout,
		held:        make(map[Action]float64, 4),
		jump:        rate.NewLimiter(rate.Limit(cfg.JumpsPerSecond), cfg.JumpBurst),
		now:         time.Now,
	}
}

// HandleEvent records a terminal event and returns the resolved action
// Session actions are returned for the caller to act on and have no other effect here
func (k *Keyboard) HandleEvent(ev tcell.Event) Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return ActionNone
	}
	action := k.table.Lookup(key)
	switch {
	case action.Held():
		k.held[action] = 0
	case action == ActionJump:
		// Excess jumps are dropped, never queued
		if k.jump.AllowN(k.now(), 1) {
			k.pending = true
		}
	}
	return action
}

// Advance ages held keys by dt seconds and releases those past the hold timeout
func (k *Keyboard) Advance(dt float64) {
	for a, age := range k.held {
		age += dt
		if age > k.holdTimeout {
			delete(k.held, a)
			continue
		}
		k.held[a] = age
	}
}

// Held reports whether a continuous action is active
func (k *Keyboard) Held(a Action) bool {
	_, ok := k.held[a]
	return ok
}

// Intent builds the player input and consumes a pending jump
func (k *Keyboard) Intent() component.PlayerInputComponent {
	in := component.PlayerInputComponent{
		TurnLeft:  k.Held(ActionTurnLeft),
		TurnRight: k.Held(ActionTurnRight),
		Thrust:    k.Held(ActionThrust),
		Shoot:     k.Held(ActionShoot),
		Jump:      k.pending,
	}
	k.pending = false
	return in
}

// Apply writes the current intent onto the player
// Without a live player the intent is consumed and dropped so no jump carries over a respawn
func (k *Keyboard) Apply(w *engine.World, player core.Entity) bool {
	if !w.IsAlive(player) || !w.Components.Input.Has(player) {
		k.pending = false
		return false
	}
	w.Components.Input.Set(player, k.Intent())
	return true
}

// Reset releases every key and drops a pending jump
func (k *Keyboard) Reset() {
	clear(k.held)
	k.pending = false
}
