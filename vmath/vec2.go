package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in play-field units
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(a, b))
}

// V2Normalize returns the unit vector, zero stays zero
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Rotate rotates v counter-clockwise by angle radians
func V2Rotate(v Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// V2Forward returns the unit forward axis for a heading
// Heading 0 faces +Y, positive angles turn left
func V2Forward(angle float64) Vec2 {
	return V2Rotate(Vec2{0, 1}, angle)
}

// V2Heading is the inverse of V2Forward for a non-zero vector
func V2Heading(v Vec2) float64 {
	return math.Atan2(-v.X, v.Y)
}

func V2IsZero(v Vec2) bool {
	return v.X == 0 && v.Y == 0
}
