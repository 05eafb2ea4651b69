package engine

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-asteroids/status"
)

type job struct {
	system System
	buffer *CommandBuffer
	access Access
}

// Scheduler runs registered systems phase by phase
// Within a phase, systems with disjoint access run concurrently in waves;
// every system records into its own command buffer, and all buffers of a phase
// are applied in registration order once the phase's last wave finishes
type Scheduler struct {
	world   *World
	workers int
	log     *zap.Logger

	jobs  [PhaseCount][]*job
	waves [PhaseCount][][]*job
	dirty bool

	statFrames *atomic.Int64
}

// NewScheduler creates a scheduler; workers <= 0 uses GOMAXPROCS
func NewScheduler(w *World, workers int) *Scheduler {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Scheduler{
		world:      w,
		workers:    workers,
		log:        w.Resource.Log.Named("scheduler"),
		statFrames: w.Resource.Status.Counter(status.FrameCount),
	}
}

// Register adds systems to their phases, preserving call order inside a phase
func (s *Scheduler) Register(systems ...System) {
	for _, sys := range systems {
		p := sys.Phase()
		s.jobs[p] = append(s.jobs[p], &job{
			system: sys,
			buffer: NewCommandBuffer(s.world),
			access: sys.Access(),
		})
		s.log.Debug("system registered",
			zap.String("system", sys.Name()),
			zap.Stringer("phase", p))
	}
	s.dirty = true
}

// Systems returns every registered system in phase then registration order
func (s *Scheduler) Systems() []System {
	var out []System
	for p := Phase(0); p < PhaseCount; p++ {
		for _, j := range s.jobs[p] {
			out = append(out, j.system)
		}
	}
	return out
}

// Init resets every system for a new game
func (s *Scheduler) Init() {
	for _, sys := range s.Systems() {
		sys.Init()
	}
}

// Waves returns system names grouped by concurrent wave for a phase
func (s *Scheduler) Waves(p Phase) [][]string {
	s.plan()
	out := make([][]string, len(s.waves[p]))
	for i, wave := range s.waves[p] {
		for _, j := range wave {
			out[i] = append(out[i], j.system.Name())
		}
	}
	return out
}

// Step advances the clock by dt seconds and runs one frame
// A panicking system aborts the frame with an error wrapping ErrJobPanic
func (s *Scheduler) Step(dt float64) error {
	s.plan()
	s.world.Resource.Time.Update(dt)
	s.statFrames.Add(1)

	for p := Phase(0); p < PhaseCount; p++ {
		if err := s.runPhase(p); err != nil {
			return fmt.Errorf("frame %d phase %s: %w", s.world.FrameNumber(), p, err)
		}
	}
	return nil
}

func (s *Scheduler) runPhase(p Phase) error {
	for _, wave := range s.waves[p] {
		if err := s.runWave(wave); err != nil {
			for _, j := range s.jobs[p] {
				j.buffer.Reset()
			}
			return err
		}
	}

	// Barrier
	for _, j := range s.jobs[p] {
		j.buffer.Apply()
	}
	return nil
}

func (s *Scheduler) runWave(wave []*job) error {
	if len(wave) == 1 {
		return runJob(wave[0])
	}

	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, j := range wave {
		g.Go(func() error {
			return runJob(j)
		})
	}
	return g.Wait()
}

func runJob(j *job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("%w: %s: %w", ErrJobPanic, j.system.Name(), e)
				return
			}
			err = fmt.Errorf("%w: %s: %v", ErrJobPanic, j.system.Name(), r)
		}
	}()
	j.system.Update(j.buffer)
	return nil
}

// plan assigns each job the earliest wave after every earlier conflicting job
func (s *Scheduler) plan() {
	if !s.dirty {
		return
	}
	for p := Phase(0); p < PhaseCount; p++ {
		jobs := s.jobs[p]
		waveOf := make([]int, len(jobs))
		var waves [][]*job
		for i, j := range jobs {
			w := 0
			for k := 0; k < i; k++ {
				if jobs[k].access.ConflictsWith(j.access) && waveOf[k]+1 > w {
					w = waveOf[k] + 1
				}
			}
			waveOf[i] = w
			for len(waves) <= w {
				waves = append(waves, nil)
			}
			waves[w] = append(waves[w], j)
		}
		s.waves[p] = waves
	}
	s.dirty = false
}
