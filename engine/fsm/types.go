package fsm

import (
	"github.com/lixenwraith/vi-asteroids/event"
)

// StateID is a unique identifier for a state
type StateID int

const StateNone StateID = 0

// State is a node of the machine with lifecycle actions and outgoing transitions
type State[T any] struct {
	ID   StateID
	Name string

	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]
	OnExit   []ActionFunc[T]

	// Transitions in evaluation order, first match wins
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // EventNone = evaluated every tick
	Guard    GuardFunc[T]    // nil = always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T, m *Machine[T]) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
