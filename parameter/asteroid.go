package parameter

// Fragmentation
const (
	// FragmentCount is the number of smaller asteroids spawned by a destroyed Big or Medium asteroid
	FragmentCount = 2

	// FragmentSpread is the max heading deviation from the inherited velocity, radians
	FragmentSpread = 0.7
)

// Per-size motion and collider
const (
	AsteroidBigRadius     = 4.0
	AsteroidBigMinSpeed   = 3.0
	AsteroidBigMaxSpeed   = 6.0
	AsteroidBigMaxAngular = 1.0

	AsteroidMediumRadius     = 2.5
	AsteroidMediumMinSpeed   = 5.0
	AsteroidMediumMaxSpeed   = 9.0
	AsteroidMediumMaxAngular = 2.0

	AsteroidSmallRadius     = 1.2
	AsteroidSmallMinSpeed   = 8.0
	AsteroidSmallMaxSpeed   = 13.0
	AsteroidSmallMaxAngular = 3.0
)
