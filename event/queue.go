package event

import "sync"

// EventQueue is the per-frame mailbox
// Push is safe from concurrent jobs; Consume drains everything in push order
// Unbounded: a dropped gameplay event would break at-most-once-but-never-lost delivery
type EventQueue struct {
	mu     sync.Mutex
	events []GameEvent
	spare  []GameEvent
}

// NewEventQueue creates an empty mailbox
func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]GameEvent, 0, 64),
		spare:  make([]GameEvent, 0, 64),
	}
}

// Push appends an event
func (q *EventQueue) Push(ev GameEvent) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Consume removes and returns all pending events
// The returned slice is only valid until the next Consume
func (q *EventQueue) Consume() []GameEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.events
	q.events = q.spare[:0]
	q.spare = out
	return out
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Clear drops pending events without delivering them
func (q *EventQueue) Clear() {
	q.mu.Lock()
	q.events = q.events[:0]
	q.mu.Unlock()
}
