package fsm

import (
	"fmt"

	"github.com/lixenwraith/vi-asteroids/event"
)

// Machine is a flat finite state machine runtime
// T is the context passed to actions and guards (the orchestrator)
// Not safe for concurrent use
type Machine[T any] struct {
	states map[StateID]*State[T]

	active      StateID
	timeInState float64 // Seconds

	// OnTransition observes every state change, after OnExit and before OnEnter
	OnTransition func(from, to StateID)
}

// NewMachine creates an empty machine
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		states: make(map[StateID]*State[T]),
	}
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T, initial StateID) error {
	s, ok := m.states[initial]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initial)
	}
	m.active = initial
	m.timeInState = 0
	for _, fn := range s.OnEnter {
		fn(ctx)
	}
	return nil
}

// Current returns the active state id
func (m *Machine[T]) Current() StateID {
	return m.active
}

// CurrentName returns the active state name, empty before Init
func (m *Machine[T]) CurrentName() string {
	if s, ok := m.states[m.active]; ok {
		return s.Name
	}
	return ""
}

// Name returns the name of a state id
func (m *Machine[T]) Name(id StateID) string {
	if s, ok := m.states[id]; ok {
		return s.Name
	}
	return fmt.Sprintf("state(%d)", id)
}

// TimeInState returns seconds spent in the active state
func (m *Machine[T]) TimeInState() float64 {
	return m.timeInState
}

// Update advances time, runs OnUpdate and evaluates tick transitions
func (m *Machine[T]) Update(ctx T, dt float64) {
	s, ok := m.states[m.active]
	if !ok {
		return
	}
	m.timeInState += dt
	for _, fn := range s.OnUpdate {
		fn(ctx)
	}
	// An OnUpdate action may have transitioned already
	if m.active != s.ID {
		return
	}
	for _, t := range s.Transitions {
		if t.Event == event.EventNone && (t.Guard == nil || t.Guard(ctx, m)) {
			m.transition(ctx, t.TargetID)
			return
		}
	}
}

// HandleEvent fires the first matching event transition of the active state
// Returns true if a transition occurred
func (m *Machine[T]) HandleEvent(ctx T, et event.EventType) bool {
	s, ok := m.states[m.active]
	if !ok {
		return false
	}
	for _, t := range s.Transitions {
		if t.Event == et && (t.Guard == nil || t.Guard(ctx, m)) {
			m.transition(ctx, t.TargetID)
			return true
		}
	}
	return false
}

// Transition forces a state change, re-entering when target is the active state
func (m *Machine[T]) Transition(ctx T, target StateID) error {
	if _, ok := m.states[target]; !ok {
		return fmt.Errorf("unknown state ID %d", target)
	}
	m.transition(ctx, target)
	return nil
}

func (m *Machine[T]) transition(ctx T, target StateID) {
	from := m.active
	if s, ok := m.states[from]; ok {
		for _, fn := range s.OnExit {
			fn(ctx)
		}
	}

	m.active = target
	m.timeInState = 0
	if m.OnTransition != nil {
		m.OnTransition(from, target)
	}

	for _, fn := range m.states[target].OnEnter {
		fn(ctx)
	}
}
