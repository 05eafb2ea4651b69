package render

// Priority decides which entity wins a shared cell, higher draws last
type Priority int

const (
	PriorityVFX Priority = iota
	PriorityPowerUp
	PriorityAsteroid
	PriorityAttachment
	PriorityUFO
	PriorityBullet
	PriorityPlayer
)
