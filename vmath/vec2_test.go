package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestForwardAndHeading(t *testing.T) {
	f := V2Forward(0)
	assert.InDelta(t, 0, f.X, eps)
	assert.InDelta(t, 1, f.Y, eps)

	// Quarter turn left faces -X
	left := V2Forward(math.Pi / 2)
	assert.InDelta(t, -1, left.X, eps)
	assert.InDelta(t, 0, left.Y, eps)

	for _, a := range []float64{0, 0.3, 1.2, -2.5, 3} {
		assert.InDelta(t, a, V2Heading(V2Forward(a)), eps, "heading roundtrip for %f", a)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Vec2{}, V2Normalize(Vec2{}))
	n := V2Normalize(Vec2{3, 4})
	assert.InDelta(t, 1, V2Mag(n), eps)
	assert.InDelta(t, 0.6, n.X, eps)
}

func TestFastRandRange(t *testing.T) {
	r := NewFastRand(12345)
	for i := 0; i < 1000; i++ {
		v := r.Range(2, 5)
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 5.0)
	}
	assert.Equal(t, 3.0, r.Range(3, 3))
}

func TestEntitySeedDistinct(t *testing.T) {
	a := EntitySeed(1, 10, 100)
	b := EntitySeed(1, 10, 101)
	c := EntitySeed(1, 11, 100)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, a, EntitySeed(1, 10, 100))
}
