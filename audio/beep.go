package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/service"
)

var (
	_ service.Service             = (*BeepSink)(nil)
	_ service.ResourceContributor = (*BeepSink)(nil)
	_ Sink                        = (*BeepSink)(nil)
)

const (
	// SampleRate is the output rate of every synthesized sound
	SampleRate = beep.SampleRate(44100)

	bufferDuration = 100 * time.Millisecond
)

// BeepSink synthesizes sounds into a beep mixer played through the speaker
// Before Start, or when the device cannot be opened, requests still feed the mixer
// but nothing drains it; Mixer exposes it for offline rendering
type BeepSink struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	master  *effects.Volume
	loops   map[core.SoundType]*beep.Ctrl
	rate    beep.SampleRate
	started bool
	log     *zap.Logger
}

// NewBeepSink creates a sink; volume is a base-2 exponent, 0 keeps unity gain
func NewBeepSink(volume float64, log *zap.Logger) *BeepSink {
	if log == nil {
		log = zap.NewNop()
	}
	mixer := &beep.Mixer{}
	return &BeepSink{
		mixer:  mixer,
		master: &effects.Volume{Streamer: keepAlive{mixer}, Base: 2, Volume: volume},
		loops:  make(map[core.SoundType]*beep.Ctrl),
		rate:   SampleRate,
		log:    log,
	}
}

// Name implements service.Service
func (b *BeepSink) Name() string { return "audio" }

// Dependencies implements service.Service
func (b *BeepSink) Dependencies() []string { return nil }

// Init implements service.Service
// args[0]: bool mute, silences the master volume
func (b *BeepSink) Init(args ...any) error {
	if len(args) > 0 {
		if muted, ok := args[0].(bool); ok {
			b.lock()
			b.master.Silent = muted
			b.unlock()
		}
	}
	return nil
}

// Start opens the speaker and begins draining the mixer
func (b *BeepSink) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		return nil
	}
	if err := speaker.Init(b.rate, b.rate.N(bufferDuration)); err != nil {
		return fmt.Errorf("audio: open speaker: %w", err)
	}
	speaker.Play(b.master)
	b.started = true
	b.log.Info("audio started", zap.Int("sample_rate", int(b.rate)))
	return nil
}

// Stop silences every sound and closes the speaker, safe to call repeatedly
func (b *BeepSink) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.started {
		return nil
	}
	speaker.Clear()
	speaker.Close()
	b.started = false
	b.mixer.Clear()
	clear(b.loops)
	return nil
}

func (b *BeepSink) Play(s core.SoundType) {
	st := Effect(s, b.rate)
	if st == nil {
		b.log.Debug("no recipe for sound", zap.Stringer("sound", s))
		return
	}
	b.lock()
	b.mixer.Add(st)
	b.unlock()
}

// StartLoop resumes or creates the loop; a loop already playing is left alone
func (b *BeepSink) StartLoop(s core.SoundType) {
	b.lock()
	defer b.unlock()
	if ctrl, ok := b.loops[s]; ok {
		ctrl.Paused = false
		return
	}
	st := LoopEffect(s, b.rate)
	if st == nil {
		b.log.Debug("no loop for sound", zap.Stringer("sound", s))
		return
	}
	ctrl := &beep.Ctrl{Streamer: st}
	b.loops[s] = ctrl
	b.mixer.Add(ctrl)
}

// StopLoop pauses the loop so a later start resumes without a new mixer entry
func (b *BeepSink) StopLoop(s core.SoundType) {
	b.lock()
	defer b.unlock()
	if ctrl, ok := b.loops[s]; ok {
		ctrl.Paused = true
	}
}

// ToggleMute flips the master mute and reports the new state
func (b *BeepSink) ToggleMute() bool {
	b.lock()
	defer b.unlock()
	b.master.Silent = !b.master.Silent
	return b.master.Silent
}

// Contribute publishes the sink so the game can route sound events to it
func (b *BeepSink) Contribute(publish service.ResourcePublisher) {
	publish(Sink(b))
}

// Mixer returns the master streamer, drained by the speaker once started
func (b *BeepSink) Mixer() beep.Streamer { return b.master }

// Active returns the number of streamers in the mixer
func (b *BeepSink) Active() int {
	b.lock()
	defer b.unlock()
	return b.mixer.Len()
}

// lock guards the mixer against the speaker goroutine once it runs
func (b *BeepSink) lock() {
	b.mu.Lock()
	if b.started {
		speaker.Lock()
	}
}

func (b *BeepSink) unlock() {
	if b.started {
		speaker.Unlock()
	}
	b.mu.Unlock()
}

// keepAlive pads the mixer output with silence so the speaker never drops it when idle
type keepAlive struct {
	s beep.Streamer
}

func (k keepAlive) Stream(samples [][2]float64) (n int, ok bool) {
	n, _ = k.s.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (k keepAlive) Err() error { return nil }
