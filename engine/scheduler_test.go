package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-asteroids/component"
)

type funcSystem struct {
	name   string
	phase  Phase
	access Access
	update func(cmd *CommandBuffer)
	inits  int
}

func (s *funcSystem) Name() string              { return s.name }
func (s *funcSystem) Phase() Phase              { return s.phase }
func (s *funcSystem) Access() Access            { return s.access }
func (s *funcSystem) Init()                     { s.inits++ }
func (s *funcSystem) Update(cmd *CommandBuffer) { s.update(cmd) }

func noop(*CommandBuffer) {}

func TestSchedulerWavePlanning(t *testing.T) {
	w := NewTestWorld()
	c := &w.Components
	s := NewScheduler(w, 4)

	s.Register(
		&funcSystem{name: "a", phase: PhaseResolve, update: noop,
			access: Access{Reads: []AnyStore{c.Position}, Writes: []AnyStore{c.Velocity}}},
		&funcSystem{name: "b", phase: PhaseResolve, update: noop,
			access: Access{Reads: []AnyStore{c.Position}, Writes: []AnyStore{c.Lifetime}}},
		&funcSystem{name: "c", phase: PhaseResolve, update: noop,
			access: Access{Reads: []AnyStore{c.Velocity}}},
		&funcSystem{name: "d", phase: PhaseResolve, update: noop,
			access: Access{Writes: []AnyStore{c.Shield}}},
	)

	waves := s.Waves(PhaseResolve)
	require.Len(t, waves, 2)
	assert.Equal(t, []string{"a", "b", "d"}, waves[0], "disjoint writers share a wave")
	assert.Equal(t, []string{"c"}, waves[1], "reader of a written store waits for the writer")
	assert.Empty(t, s.Waves(PhaseInput))
}

func TestSchedulerBarrierVisibility(t *testing.T) {
	w := NewTestWorld()
	c := &w.Components
	s := NewScheduler(w, 2)

	var seenSamePhase, seenNextPhase int
	s.Register(
		&funcSystem{name: "spawner", phase: PhaseSpawn, update: func(cmd *CommandBuffer) {
			e := cmd.CreateEntity()
			cmd.Set(e, component.AsteroidComponent{})
		}},
		&funcSystem{name: "same", phase: PhaseSpawn, update: func(cmd *CommandBuffer) {
			seenSamePhase = c.Asteroid.Count()
		}, access: Access{Reads: []AnyStore{c.Asteroid}}},
		&funcSystem{name: "next", phase: PhaseReact, update: func(cmd *CommandBuffer) {
			seenNextPhase = c.Asteroid.Count()
		}, access: Access{Reads: []AnyStore{c.Asteroid}}},
	)

	require.NoError(t, s.Step(0.016))
	assert.Equal(t, 0, seenSamePhase, "mutations are invisible inside the recording phase")
	assert.Equal(t, 1, seenNextPhase, "mutations are visible after the barrier")
	assert.Equal(t, int64(1), w.FrameNumber())
	assert.InDelta(t, 0.016, w.Resource.Time.DeltaTime, 1e-12)
}

func TestSchedulerParallelWave(t *testing.T) {
	w := NewTestWorld()
	s := NewScheduler(w, 8)

	var running, peak atomic.Int32
	release := make(chan struct{})
	const n = 4
	for i := 0; i < n; i++ {
		s.Register(&funcSystem{name: "job", phase: PhaseInput, update: func(*CommandBuffer) {
			cur := running.Add(1)
			for {
				old := peak.Load()
				if cur <= old || peak.CompareAndSwap(old, cur) {
					break
				}
			}
			if cur == n {
				close(release)
			}
			select {
			case <-release:
			case <-time.After(2 * time.Second):
			}
			running.Add(-1)
		}})
	}

	require.NoError(t, s.Step(0.01))
	assert.Equal(t, int32(n), peak.Load(), "independent jobs run concurrently")
}

func TestSchedulerJobPanic(t *testing.T) {
	w := NewTestWorld()
	s := NewScheduler(w, 1)

	created := false
	s.Register(
		&funcSystem{name: "creator", phase: PhaseInput, update: func(cmd *CommandBuffer) {
			cmd.Set(cmd.CreateEntity(), component.PlayerTag{})
			created = true
		}},
		&funcSystem{name: "boom", phase: PhaseInput, update: func(*CommandBuffer) {
			panic("bad template")
		}, access: Access{Writes: []AnyStore{w.Components.Player}}},
	)

	err := s.Step(0.01)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrJobPanic)
	assert.Contains(t, err.Error(), "boom")
	assert.True(t, created)
	assert.Equal(t, 0, w.EntityCount(), "aborted phase leaves no half-created entities")
}

func TestSchedulerInit(t *testing.T) {
	w := NewTestWorld()
	s := NewScheduler(w, 1)
	sys := &funcSystem{name: "x", phase: PhaseCleanup, update: noop}
	s.Register(sys)
	s.Init()
	assert.Equal(t, 1, sys.inits)
	assert.Len(t, s.Systems(), 1)
}

func TestClockRunStopsOnCancel(t *testing.T) {
	c := NewClock(time.Millisecond, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	var ticks atomic.Int32
	err := c.Run(ctx, func(dt time.Duration) error {
		assert.LessOrEqual(t, dt, 10*time.Millisecond)
		if ticks.Add(1) == 3 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, ticks.Load(), int32(3))
}
