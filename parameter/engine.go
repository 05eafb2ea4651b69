package parameter

// Simulation loop
const (
	// TickRate is the number of simulation frames per second in the harness
	TickRate = 60

	// MaxFrameStep caps a single frame's dt in seconds after a stall
	MaxFrameStep = 0.1

	// Workers is the scheduler's parallelism, 0 uses GOMAXPROCS
	Workers = 0
)

// Play field in world units, centered on the origin
const (
	FieldWidth  = 80.0
	FieldHeight = 50.0

	// WrapMargin is used for wrap-around entities without a visual size
	WrapMargin = 1.0
)

// Input collaborator
const (
	// KeyHoldTimeout keeps a key held this long after its last terminal repeat, seconds
	KeyHoldTimeout = 0.15

	// JumpsPerSecond limits hyperspace intents
	JumpsPerSecond = 1.0
	JumpBurst      = 1
)
