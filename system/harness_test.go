package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/config"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/registry"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

const frame = 1.0 / 60

// recorder captures every routed event
type recorder struct {
	events []event.GameEvent
}

func (r *recorder) HandleEvent(ev event.GameEvent) {
	r.events = append(r.events, ev)
}

func (r *recorder) EventTypes() []event.EventType {
	types := make([]event.EventType, 0, event.EventTypeCount)
	for t := event.EventNone + 1; t < event.EventTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

func (r *recorder) ofType(t event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range r.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func (r *recorder) sounds(t event.EventType, s core.SoundType) int {
	n := 0
	for _, ev := range r.ofType(t) {
		if p, ok := ev.Payload.(*event.SoundPayload); ok && p.Sound == s {
			n++
		}
	}
	return n
}

type harness struct {
	world *engine.World
	reg   *registry.Registry
	cfg   *config.Config
	sched *engine.Scheduler
	rec   *recorder
}

func newHarness(t *testing.T, tune ...func(*config.Config)) *harness {
	t.Helper()
	cfg := config.Default()
	for _, fn := range tune {
		fn(cfg)
	}
	reg, err := registry.Build(cfg)
	require.NoError(t, err)

	w := engine.NewTestWorld()
	router := event.NewRouter()
	rec := &recorder{}
	router.Register(rec)

	sched := engine.NewScheduler(w, 4)
	sched.Register(NewPipeline(Deps{World: w, Registry: reg, Config: cfg, Router: router})...)

	return &harness{world: w, reg: reg, cfg: cfg, sched: sched, rec: rec}
}

// spawn instantiates a template outside the frame, as the orchestrator does
func (h *harness) spawn(key core.PrefabKey, pos, vel vmath.Vec2) core.Entity {
	cb := engine.NewCommandBuffer(h.world)
	e := h.reg.Instantiate(cb, key)
	cb.Set(e, component.PositionComponent{Vec2: pos})
	cb.Set(e, component.VelocityComponent{Linear: vel})
	cb.Apply()
	return e
}

func (h *harness) step(t *testing.T, dt float64) {
	t.Helper()
	require.NoError(t, h.sched.Step(dt))
}

func (h *harness) collide(a, b core.Entity) {
	h.world.Resource.Overlaps.Push(a, b)
}

// asteroids returns live asteroids of one size
func (h *harness) asteroids(size component.AsteroidSize) []core.Entity {
	c := &h.world.Components
	var out []core.Entity
	for _, e := range h.world.Query().With(c.Asteroid).Execute() {
		if a, _ := c.Asteroid.Get(e); a.Size == size {
			out = append(out, e)
		}
	}
	return out
}

// instancesOf counts live entities built from a template class
func (h *harness) instancesOf(class core.PrefabClass) int {
	c := &h.world.Components
	n := 0
	for _, e := range c.Prefab.All() {
		if p, _ := c.Prefab.Get(e); p.Key.Class == class {
			n++
		}
	}
	return n
}
