package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave, optionally sweeping linearly to an end frequency
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added per sample
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to endFreq over duration
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	o := &oscillator{
		freq:     freq,
		duration: samples,
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(freq*1000) + uint64(samples)),
	}
	if samples > 0 {
		o.sweep = (endFreq - freq) / float64(samples)
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// rumble is the endless engine loop: a low saw whose pitch wobbles slowly
type rumble struct {
	rate  beep.SampleRate
	pos   int
	phase float64
}

func (g *rumble) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.rate)
		freq := 55 + 15*math.Sin(2*math.Pi*3*t)
		sample := 0.25 * 2.0 * (g.phase - 0.5)

		samples[i][0] = sample
		samples[i][1] = sample
		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *rumble) Err() error { return nil }

// tone is one layer of a sound recipe
type tone struct {
	wave     WaveType
	from, to float64 // Hz
	duration time.Duration
	attack   time.Duration
	release  time.Duration
	gain     float64
}

// recipe mixes its tones, or plays them back to back when sequential
type recipe struct {
	tones      []tone
	sequential bool
}

var recipes = map[core.SoundType]recipe{
	core.SoundPlayerShoot: {tones: []tone{
		{wave: WaveSquare, from: 1400, to: 500, duration: 90 * time.Millisecond, attack: 2 * time.Millisecond, release: 60 * time.Millisecond, gain: 0.35},
	}},
	core.SoundPlayerHyperspace: {tones: []tone{
		{wave: WaveSine, from: 200, to: 1600, duration: 350 * time.Millisecond, attack: 20 * time.Millisecond, release: 120 * time.Millisecond, gain: 0.5},
		{wave: WaveNoise, duration: 350 * time.Millisecond, attack: 50 * time.Millisecond, release: 200 * time.Millisecond, gain: 0.15},
	}},
	core.SoundPlayerDeath: {tones: []tone{
		{wave: WaveNoise, duration: 700 * time.Millisecond, attack: 5 * time.Millisecond, release: 600 * time.Millisecond, gain: 0.6},
		{wave: WaveSaw, from: 180, to: 40, duration: 700 * time.Millisecond, attack: 5 * time.Millisecond, release: 500 * time.Millisecond, gain: 0.4},
	}},
	core.SoundUFOShoot: {tones: []tone{
		{wave: WaveSquare, from: 900, to: 1300, duration: 70 * time.Millisecond, attack: 2 * time.Millisecond, release: 40 * time.Millisecond, gain: 0.25},
	}},
	core.SoundUFOExplosion: {tones: []tone{
		{wave: WaveNoise, duration: 500 * time.Millisecond, attack: 5 * time.Millisecond, release: 400 * time.Millisecond, gain: 0.5},
		{wave: WaveSquare, from: 160, to: 60, duration: 400 * time.Millisecond, attack: 5 * time.Millisecond, release: 300 * time.Millisecond, gain: 0.3},
	}},
	core.SoundAsteroidBigExplosion: {tones: []tone{
		{wave: WaveNoise, duration: 450 * time.Millisecond, attack: 5 * time.Millisecond, release: 380 * time.Millisecond, gain: 0.6},
		{wave: WaveSine, from: 70, to: 40, duration: 450 * time.Millisecond, attack: 5 * time.Millisecond, release: 300 * time.Millisecond, gain: 0.5},
	}},
	core.SoundAsteroidMediumExplosion: {tones: []tone{
		{wave: WaveNoise, duration: 300 * time.Millisecond, attack: 5 * time.Millisecond, release: 250 * time.Millisecond, gain: 0.5},
		{wave: WaveSine, from: 110, to: 70, duration: 300 * time.Millisecond, attack: 5 * time.Millisecond, release: 200 * time.Millisecond, gain: 0.4},
	}},
	core.SoundAsteroidSmallExplosion: {tones: []tone{
		{wave: WaveNoise, duration: 180 * time.Millisecond, attack: 3 * time.Millisecond, release: 150 * time.Millisecond, gain: 0.4},
	}},
	core.SoundShieldDisabled: {sequential: true, tones: []tone{
		{wave: WaveSine, from: 660, to: 660, duration: 120 * time.Millisecond, attack: 5 * time.Millisecond, release: 60 * time.Millisecond, gain: 0.4},
		{wave: WaveSine, from: 440, to: 330, duration: 200 * time.Millisecond, attack: 5 * time.Millisecond, release: 150 * time.Millisecond, gain: 0.4},
	}},
	// Two-note chime, B5 then E6
	core.SoundWeaponPicked: {sequential: true, tones: []tone{
		{wave: WaveSquare, from: 987.77, to: 987.77, duration: 80 * time.Millisecond, attack: 5 * time.Millisecond, release: 40 * time.Millisecond, gain: 0.3},
		{wave: WaveSquare, from: 1318.51, to: 1318.51, duration: 250 * time.Millisecond, attack: 5 * time.Millisecond, release: 200 * time.Millisecond, gain: 0.3},
	}},
}

// Effect builds a finite streamer for a one-shot sound, nil when s has no recipe
func Effect(s core.SoundType, rate beep.SampleRate) beep.Streamer {
	r, ok := recipes[s]
	if !ok {
		return nil
	}
	layers := make([]beep.Streamer, 0, len(r.tones))
	for _, t := range r.tones {
		osc := NewSweep(t.from, t.to, t.duration, t.wave, rate)
		shaped := NewEnvelope(osc, t.duration, t.attack, t.release, rate)
		layers = append(layers, newVolume(shaped, t.gain))
	}
	if r.sequential {
		return beep.Seq(layers...)
	}
	return beep.Mix(layers...)
}

// LoopEffect builds an endless streamer for a looping sound, nil when s does not loop
func LoopEffect(s core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch s {
	case core.SoundPlayerThrust:
		return &rumble{rate: rate}
	default:
		return nil
	}
}
