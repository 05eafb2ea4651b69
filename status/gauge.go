package status

import (
	"math"
	"sync/atomic"
)

// GaugeSmoothing is the weight of a new sample in the running average
const GaugeSmoothing = 0.1

// Gauge holds the last observed float and an exponential moving average of all observations
// The zero value is ready; the first observation seeds the average
type Gauge struct {
	last   atomic.Uint64
	avg    atomic.Uint64
	primed atomic.Bool
}

// Observe records a sample
func (g *Gauge) Observe(v float64) {
	g.last.Store(math.Float64bits(v))
	if g.primed.CompareAndSwap(false, true) {
		g.avg.Store(math.Float64bits(v))
		return
	}
	for {
		old := g.avg.Load()
		next := math.Float64frombits(old)
		next += (v - next) * GaugeSmoothing
		if g.avg.CompareAndSwap(old, math.Float64bits(next)) {
			return
		}
	}
}

// Last returns the most recent sample
func (g *Gauge) Last() float64 {
	return math.Float64frombits(g.last.Load())
}

// Average returns the smoothed value, 0 before any sample
func (g *Gauge) Average() float64 {
	return math.Float64frombits(g.avg.Load())
}
