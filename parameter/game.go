package parameter

// Game flow
const (
	StartingLives = 3

	// CountdownDelay is the pause before the player spawns in a new game, seconds
	CountdownDelay = 3.0
	// RespawnDelay is the pause between a lost life and the respawn
	RespawnDelay = 2.0
	// NextLevelDelay is the pause after the last enemy is cleared
	NextLevelDelay = 2.0

	// AsteroidAvoidRadius keeps level asteroids away from the player spawn point
	AsteroidAvoidRadius = 15.0

	// Level n spawns AsteroidsPerLevel*n + AsteroidsBase big asteroids
	AsteroidsPerLevel = 2
	AsteroidsBase     = 2

	// Level n spawns PowerUpsPerLevel*n + PowerUpsBase power-ups
	PowerUpsPerLevel = 1
	PowerUpsBase     = 1
)

// Power-ups
const (
	PowerUpRadius   = 1.5
	PowerUpLifetime = 0.0 // 0 keeps the power-up until picked or cleaned up

	VFXLifetime = 0.6
)

// Shield duration per color, seconds
const (
	ShieldDurationBlue   = 5.0
	ShieldDurationRed    = 8.0
	ShieldDurationYellow = 10.0
	ShieldDurationGreen  = 15.0
)
