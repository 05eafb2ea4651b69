// Package audio turns abstract sound requests from the simulation into sound
// The simulation only names sounds; a Sink decides how, and whether, they are heard
package audio

import (
	"sync"

	"github.com/lixenwraith/vi-asteroids/core"
)

// Sink plays one-shot sounds and controls looping sounds
// Implementations must be safe for concurrent use
type Sink interface {
	Play(s core.SoundType)
	StartLoop(s core.SoundType)
	StopLoop(s core.SoundType)
}

// NullSink discards every request
type NullSink struct{}

func (NullSink) Play(core.SoundType)      {}
func (NullSink) StartLoop(core.SoundType) {}
func (NullSink) StopLoop(core.SoundType)  {}

// Call is one request observed by a RecordingSink
type Call struct {
	Op    string // play, start_loop or stop_loop
	Sound core.SoundType
}

// RecordingSink keeps every request in arrival order and tracks active loops
type RecordingSink struct {
	mu    sync.Mutex
	calls []Call
	loops map[core.SoundType]bool
}

func NewRecordingSink() *RecordingSink {
	return &RecordingSink{loops: make(map[core.SoundType]bool)}
}

func (r *RecordingSink) Play(s core.SoundType) { r.record("play", s) }

func (r *RecordingSink) StartLoop(s core.SoundType) {
	r.mu.Lock()
	r.loops[s] = true
	r.mu.Unlock()
	r.record("start_loop", s)
}

func (r *RecordingSink) StopLoop(s core.SoundType) {
	r.mu.Lock()
	delete(r.loops, s)
	r.mu.Unlock()
	r.record("stop_loop", s)
}

func (r *RecordingSink) record(op string, s core.SoundType) {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Op: op, Sound: s})
	r.mu.Unlock()
}

// Calls returns a copy of the recorded requests
func (r *RecordingSink) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Looping reports whether a loop was started and not stopped since
func (r *RecordingSink) Looping(s core.SoundType) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loops[s]
}

// Count returns how many requests of op named s were recorded
func (r *RecordingSink) Count(op string, s core.SoundType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Op == op && c.Sound == s {
			n++
		}
	}
	return n
}
