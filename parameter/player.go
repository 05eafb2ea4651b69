package parameter

// Ship handling
const (
	PlayerAcceleration = 30.0
	PlayerMaxSpeed     = 25.0
	PlayerTurnRate     = 4.0 // rad/s
	PlayerRadius       = 1.5
	PlayerMargin       = 1.5
)

// Bullets
const (
	BulletLifetime = 1.2
	BulletRadius   = 0.3
)

// Default weapon, assigned to every freshly spawned player
const (
	DefaultBulletsPerSecond = 4.0
	DefaultBulletSpeed      = 40.0
	DefaultMuzzleOffset     = 2.0 // Along the ship's forward axis
)

// Shield
const (
	// ShieldModeDuration absorbs every hit until the timer runs out
	ShieldModeDuration = "duration"
	// ShieldModePerHit absorbs one hit, then depletes
	ShieldModePerHit = "per_hit"
)
