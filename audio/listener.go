package audio

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-asteroids/event"
)

// Listener forwards sound events from the dispatcher to a Sink
type Listener struct {
	sink Sink
	log  *zap.Logger
}

func NewListener(sink Sink, log *zap.Logger) *Listener {
	if sink == nil {
		sink = NullSink{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Listener{sink: sink, log: log}
}

func (l *Listener) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundPlay,
		event.EventSoundLoopStart,
		event.EventSoundLoopStop,
	}
}

func (l *Listener) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.SoundPayload)
	if !ok {
		l.log.Warn("sound event without payload", zap.Int("type", int(ev.Type)))
		return
	}

	switch ev.Type {
	case event.EventSoundPlay:
		l.sink.Play(p.Sound)
	case event.EventSoundLoopStart:
		l.sink.StartLoop(p.Sound)
	case event.EventSoundLoopStop:
		l.sink.StopLoop(p.Sound)
	}
}
