package system

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/status"
)

// DispatchSystem drains the event mailbox into the router once per frame
// Events raised by listeners during dispatch stay queued for the next frame
type DispatchSystem struct {
	world  *engine.World
	router *event.Router

	statDispatched *atomic.Int64
}

// NewDispatchSystem creates the event dispatch system bound to router
func NewDispatchSystem(world *engine.World, router *event.Router) engine.System {
	return &DispatchSystem{
		world:          world,
		router:         router,
		statDispatched: world.Resource.Status.Counter(status.EventDispatched),
	}
}

// Name returns the system name
func (s *DispatchSystem) Name() string          { return "dispatch" }
func (s *DispatchSystem) Phase() engine.Phase   { return engine.PhaseDispatch }
func (s *DispatchSystem) Access() engine.Access { return engine.Access{} }

// Init drops events left over from a previous game
func (s *DispatchSystem) Init() {
	s.world.Events().Clear()
}

func (s *DispatchSystem) Update(cmd *engine.CommandBuffer) {
	events := s.world.Events().Consume()
	if len(events) == 0 {
		return
	}
	s.router.Dispatch(events)
	s.statDispatched.Add(int64(len(events)))
}
