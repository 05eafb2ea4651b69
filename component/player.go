package component

// PlayerInputComponent is written by the input collaborator before each frame
// Jump is a one-shot edge, the input system clears it once read
type PlayerInputComponent struct {
	TurnLeft  bool
	TurnRight bool
	Thrust    bool
	Shoot     bool
	Jump      bool
}

// ThrusterComponent holds the ship handling parameters
type ThrusterComponent struct {
	Acceleration float64 // units/s² along forward axis
	MaxSpeed     float64 // soft cap on forward-projected speed
	TurnRate     float64 // rad/s
}

// ThrustTag is present while the engine fires, drives the thrust visual
type ThrustTag struct{}

// JumpToHyperspaceTag requests a hyperspace teleport this frame
type JumpToHyperspaceTag struct{}
