package parameter

// UFO steering
const (
	UFOSpeed = 8.0

	// UFOMinDistance ignores asteroids farther away
	UFOMinDistance = 12.0

	// UFOMinTimeSinceLastChange is the heading recomputation period, seconds
	UFOMinTimeSinceLastChange = 0.5

	UFORadius = 2.0
)

// UFO attack
const (
	UFOBulletsPerSecond = 1.5
	UFORotationPerShot  = 0.6 // rad
	UFOBulletSpeed      = 25.0
	UFOBulletLifetime   = 2.0
)

// UFO waves: the spawn interval starts at max and shrinks per UFO down to min, seconds
const (
	UFOIntervalMax      = 30.0
	UFOIntervalMin      = 10.0
	UFOIntervalDecrease = 5.0
)
