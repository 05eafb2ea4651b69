package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-asteroids/event"
)

const (
	stateIdle StateID = iota + 1
	stateRun
	stateDone
)

type trace struct {
	log []string
}

func newTestMachine() *Machine[*trace] {
	m := NewMachine[*trace]()
	m.AddState(stateIdle, "idle").
		Enter(func(c *trace) { c.log = append(c.log, "enter idle") }).
		Exit(func(c *trace) { c.log = append(c.log, "exit idle") }).
		On(Transition[*trace]{TargetID: stateRun, Guard: StateTimeExceeds[*trace](1.0)})
	m.AddState(stateRun, "run").
		Enter(func(c *trace) { c.log = append(c.log, "enter run") }).
		Tick(func(c *trace) { c.log = append(c.log, "tick run") }).
		On(Transition[*trace]{TargetID: stateDone, Event: event.EventGameOver})
	m.AddState(stateDone, "done")
	return m
}

func TestMachineTimedTransition(t *testing.T) {
	c := &trace{}
	m := newTestMachine()
	require.NoError(t, m.Init(c, stateIdle))

	m.Update(c, 0.6)
	assert.Equal(t, stateIdle, m.Current())
	m.Update(c, 0.6)
	assert.Equal(t, stateRun, m.Current())
	assert.Equal(t, 0.0, m.TimeInState())

	m.Update(c, 0.1)
	assert.Equal(t, []string{"enter idle", "exit idle", "enter run", "tick run"}, c.log)
}

func TestMachineEventTransition(t *testing.T) {
	c := &trace{}
	m := newTestMachine()
	require.NoError(t, m.Init(c, stateRun))

	var seen [][2]StateID
	m.OnTransition = func(from, to StateID) { seen = append(seen, [2]StateID{from, to}) }

	assert.False(t, m.HandleEvent(c, event.EventPlayerDestroyed))
	assert.True(t, m.HandleEvent(c, event.EventGameOver))
	assert.Equal(t, stateDone, m.Current())
	assert.Equal(t, "done", m.CurrentName())
	assert.Equal(t, [][2]StateID{{stateRun, stateDone}}, seen)
}

func TestMachineForcedTransition(t *testing.T) {
	c := &trace{}
	m := newTestMachine()
	require.Error(t, m.Init(c, StateID(99)))
	require.NoError(t, m.Init(c, stateDone))

	require.NoError(t, m.Transition(c, stateIdle))
	assert.Equal(t, stateIdle, m.Current())
	assert.Error(t, m.Transition(c, StateID(42)))
	assert.Equal(t, "state(42)", m.Name(StateID(42)))
}
