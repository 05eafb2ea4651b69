package core

// SoundType identifies an abstract sound request, the audio sink decides how it sounds
type SoundType int

const (
	SoundNone                    SoundType = iota
	SoundPlayerShoot                       // Player bullet fired
	SoundPlayerThrust                      // Engine loop while thrusting
	SoundPlayerHyperspace                  // Hyperspace jump
	SoundPlayerDeath                       // Unshielded player destroyed
	SoundUFOShoot                          // UFO bullet fired
	SoundUFOExplosion                      // UFO destroyed
	SoundAsteroidBigExplosion              // Big asteroid destroyed
	SoundAsteroidMediumExplosion           // Medium asteroid destroyed
	SoundAsteroidSmallExplosion            // Small asteroid destroyed
	SoundShieldDisabled                    // Shield depleted
	SoundWeaponPicked                      // Weapon power-up equipped
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundNone:                    "none",
	SoundPlayerShoot:             "player_shoot",
	SoundPlayerThrust:            "player_thrust",
	SoundPlayerHyperspace:        "player_hyperspace",
	SoundPlayerDeath:             "player_death",
	SoundUFOShoot:                "ufo_shoot",
	SoundUFOExplosion:            "ufo_explosion",
	SoundAsteroidBigExplosion:    "asteroid_big_explosion",
	SoundAsteroidMediumExplosion: "asteroid_medium_explosion",
	SoundAsteroidSmallExplosion:  "asteroid_small_explosion",
	SoundShieldDisabled:          "shield_disabled",
	SoundWeaponPicked:            "weapon_picked",
}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
