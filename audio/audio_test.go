package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/event"
)

func soundEvent(t event.EventType, s core.SoundType) event.GameEvent {
	return event.GameEvent{Type: t, Payload: &event.SoundPayload{Sound: s}}
}

// drain streams s in chunks until it ends or limit samples were read
func drain(s beep.Streamer, limit int) (total int, peak float64, ended bool) {
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak, true
		}
	}
	return total, peak, false
}

func TestListenerRoutesSoundEvents(t *testing.T) {
	sink := NewRecordingSink()
	l := NewListener(sink, nil)

	router := event.NewRouter()
	router.Register(l)
	router.Dispatch([]event.GameEvent{
		soundEvent(event.EventSoundLoopStart, core.SoundPlayerThrust),
		soundEvent(event.EventSoundPlay, core.SoundPlayerShoot),
		soundEvent(event.EventSoundLoopStop, core.SoundPlayerThrust),
		{Type: event.EventSoundPlay},
	})

	assert.Equal(t, []Call{
		{Op: "start_loop", Sound: core.SoundPlayerThrust},
		{Op: "play", Sound: core.SoundPlayerShoot},
		{Op: "stop_loop", Sound: core.SoundPlayerThrust},
	}, sink.Calls())
	assert.False(t, sink.Looping(core.SoundPlayerThrust))
	assert.Equal(t, 1, sink.Count("play", core.SoundPlayerShoot))
}

func TestEveryOneShotHasFiniteEffect(t *testing.T) {
	limit := SampleRate.N(2 * time.Second)
	for s := core.SoundNone + 1; s < core.SoundTypeCount; s++ {
		if s == core.SoundPlayerThrust {
			assert.Nil(t, Effect(s, SampleRate))
			continue
		}
		st := Effect(s, SampleRate)
		require.NotNil(t, st, s.String())

		total, peak, ended := drain(st, limit)
		assert.True(t, ended, "%s never ends", s)
		assert.Positive(t, total, s.String())
		assert.Positive(t, peak, "%s is silent", s)
		assert.LessOrEqual(t, peak, 1.0+1e-9, "%s clips", s)
	}
}

func TestThrustLoopNeverEnds(t *testing.T) {
	st := LoopEffect(core.SoundPlayerThrust, SampleRate)
	require.NotNil(t, st)
	_, peak, ended := drain(st, SampleRate.N(3*time.Second))
	assert.False(t, ended)
	assert.Positive(t, peak)

	assert.Nil(t, LoopEffect(core.SoundPlayerShoot, SampleRate))
}

func TestOscillatorSquareLevels(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, SampleRate)
	samples := make([][2]float64, 64)
	n, ok := osc.Stream(samples)
	require.True(t, ok)
	for i := 0; i < n; i++ {
		assert.Contains(t, []float64{-1, 1}, samples[i][0])
	}
}

func TestOscillatorLength(t *testing.T) {
	osc := NewSweep(100, 800, 10*time.Millisecond, WaveSine, SampleRate)
	total, _, ended := drain(osc, SampleRate.N(time.Second))
	assert.True(t, ended)
	assert.Equal(t, SampleRate.N(10*time.Millisecond), total)
}

func TestEnvelopeStartsSilent(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSquare, SampleRate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, SampleRate)

	samples := make([][2]float64, 8)
	_, ok := env.Stream(samples)
	require.True(t, ok)
	assert.Zero(t, samples[0][0])
	assert.Less(t, math.Abs(samples[7][0]), 0.1)
}

func TestBeepSinkOneShotDrains(t *testing.T) {
	b := NewBeepSink(0, nil)
	b.Play(core.SoundPlayerShoot)
	b.Play(core.SoundPlayerThrust) // No one-shot recipe
	assert.Equal(t, 1, b.Active())

	_, peak, ended := drain(b.Mixer(), SampleRate.N(time.Second))
	assert.False(t, ended, "master output never ends")
	assert.Positive(t, peak)
	assert.Zero(t, b.Active())
}

func TestBeepSinkLoopIsSingleton(t *testing.T) {
	b := NewBeepSink(0, nil)
	b.StartLoop(core.SoundPlayerThrust)
	b.StartLoop(core.SoundPlayerThrust)
	assert.Equal(t, 1, b.Active())

	b.StopLoop(core.SoundPlayerThrust)
	_, peak, _ := drain(b.Mixer(), 2048)
	assert.Zero(t, peak, "paused loop is silent")

	b.StartLoop(core.SoundPlayerThrust)
	assert.Equal(t, 1, b.Active())
	_, peak, _ = drain(b.Mixer(), 2048)
	assert.Positive(t, peak)
}

func TestBeepSinkMute(t *testing.T) {
	b := NewBeepSink(0, nil)
	require.NoError(t, b.Init(true))
	b.Play(core.SoundAsteroidBigExplosion)

	_, peak, _ := drain(b.Mixer(), 4096)
	assert.Zero(t, peak)
	require.NoError(t, b.Stop(), "stop before start is a no-op")
}

func TestNullSinkSatisfiesSink(t *testing.T) {
	var s Sink = NullSink{}
	s.Play(core.SoundPlayerShoot)
	s.StartLoop(core.SoundPlayerThrust)
	s.StopLoop(core.SoundPlayerThrust)
}

func TestBeepSinkToggleMuteAndContribute(t *testing.T) {
	b := NewBeepSink(0, nil)
	assert.True(t, b.ToggleMute())
	assert.False(t, b.ToggleMute())

	var got []any
	b.Contribute(func(r any) { got = append(got, r) })
	require.Len(t, got, 1)
	_, ok := got[0].(Sink)
	assert.True(t, ok)
}
