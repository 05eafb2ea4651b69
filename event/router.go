package event

// Handler receives routed events
type Handler interface {
	// HandleEvent processes a single event, called synchronously during dispatch
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Router dispatches events to registered handlers
// Handlers for one type run in registration order; events run in FIFO order
type Router struct {
	handlers map[EventType][]Handler
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(h Handler) {
	for _, t := range h.EventTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// Dispatch delivers each event once to every handler subscribed to its type
// Returns the number of handler invocations
func (r *Router) Dispatch(events []GameEvent) int {
	delivered := 0
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
			delivered++
		}
	}
	return delivered
}

// HasHandlers reports whether anything listens for t
func (r *Router) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}
