package game

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-asteroids/engine/fsm"
)

// Timer is one delayed orchestrator action
// It captures the manager epoch and the states it may fire in at schedule time
type Timer struct {
	Name      string
	Remaining float64 // Seconds
	Epoch     uint64
	States    []fsm.StateID
	Fire      func()
}

// Guard reports the current epoch and state, evaluated per due timer
type Guard func() (epoch uint64, state fsm.StateID)

// Timers is a tick-driven delay queue with a stale-action guard
// A due timer fires only while the epoch matches and the state is one it was scheduled for
// Stale timers are dropped silently with a debug log
type Timers struct {
	pending []Timer
	log     *zap.Logger
}

// NewTimers creates an empty queue
func NewTimers(log *zap.Logger) *Timers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Timers{log: log}
}

// After schedules fn to run once delay seconds have elapsed
func (t *Timers) After(name string, delay float64, epoch uint64, states []fsm.StateID, fn func()) {
	t.pending = append(t.pending, Timer{
		Name:      name,
		Remaining: delay,
		Epoch:     epoch,
		States:    states,
		Fire:      fn,
	})
}

// Update advances every timer by dt and fires the due ones in schedule order
// Timers scheduled by a firing action wait for the next Update
func (t *Timers) Update(dt float64, guard Guard) int {
	due := t.pending
	t.pending = make([]Timer, 0, len(due))

	fired := 0
	for i := range due {
		tm := &due[i]
		tm.Remaining -= dt
		if tm.Remaining > 0 {
			t.pending = append(t.pending, *tm)
			continue
		}

		epoch, state := guard()
		if epoch != tm.Epoch || !containsState(tm.States, state) {
			t.log.Debug("stale timer dropped",
				zap.String("timer", tm.Name),
				zap.Uint64("timer_epoch", tm.Epoch),
				zap.Uint64("epoch", epoch),
				zap.Int("state", int(state)),
			)
			continue
		}
		tm.Fire()
		fired++
	}
	return fired
}

// Len returns the number of pending timers
func (t *Timers) Len() int {
	return len(t.pending)
}

// Clear drops every pending timer without firing
func (t *Timers) Clear() {
	t.pending = t.pending[:0]
}

func containsState(states []fsm.StateID, s fsm.StateID) bool {
	for _, st := range states {
		if st == s {
			return true
		}
	}
	return false
}
