package parameter

// Weapon power-ups, fire rate in bullets per second and bullet speed in units/s
const (
	WeaponBlueBulletsPerSecond = 6.0
	WeaponBlueBulletSpeed      = 45.0

	WeaponRedBulletsPerSecond = 3.0
	WeaponRedBulletSpeed      = 60.0

	WeaponYellowBulletsPerSecond = 8.0
	WeaponYellowBulletSpeed      = 35.0

	WeaponGreenBulletsPerSecond = 10.0
	WeaponGreenBulletSpeed      = 40.0
)
