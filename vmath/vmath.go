package vmath

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Randomness ---

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi), or lo when the range is empty
func (r *FastRand) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// Angle returns a uniform angle in [0, 2π)
func (r *FastRand) Angle() float64 {
	return r.Float64() * 2 * math.Pi
}

// EntitySeed derives a per-entity random seed
// Mixing world seed, frame and entity id keeps streams of one spawn batch distinct
func EntitySeed(worldSeed uint64, frame int64, entity uint64) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], worldSeed)
	binary.LittleEndian.PutUint64(buf[8:], uint64(frame))
	binary.LittleEndian.PutUint64(buf[16:], entity)
	return xxhash.Sum64(buf[:])
}
