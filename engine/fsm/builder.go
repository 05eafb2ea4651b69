package fsm

// AddState adds a state; re-adding an id replaces it
func (m *Machine[T]) AddState(id StateID, name string) *State[T] {
	s := &State[T]{
		ID:   id,
		Name: name,
	}
	m.states[id] = s
	return s
}

// Enter appends an OnEnter action
func (s *State[T]) Enter(fn ActionFunc[T]) *State[T] {
	s.OnEnter = append(s.OnEnter, fn)
	return s
}

// Tick appends an OnUpdate action
func (s *State[T]) Tick(fn ActionFunc[T]) *State[T] {
	s.OnUpdate = append(s.OnUpdate, fn)
	return s
}

// Exit appends an OnExit action
func (s *State[T]) Exit(fn ActionFunc[T]) *State[T] {
	s.OnExit = append(s.OnExit, fn)
	return s
}

// On appends a transition
func (s *State[T]) On(t Transition[T]) *State[T] {
	s.Transitions = append(s.Transitions, t)
	return s
}

// StateTimeExceeds builds a guard true once the active state is older than seconds
func StateTimeExceeds[T any](seconds float64) GuardFunc[T] {
	return func(_ T, m *Machine[T]) bool {
		return m.timeInState >= seconds
	}
}
