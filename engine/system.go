package engine

// Phase is a barrier-delimited stage of a frame; phases run in declaration order
type Phase uint8

const (
	PhaseInput     Phase = iota // Intents to motion, AI steering and firing
	PhaseCollision              // Overlap pairs to CollisionInfo tags
	PhaseResolve                // Collision outcomes, timers, hyperspace
	PhaseSpawn                  // Spawn requests, pickups, default loadout
	PhaseReact                  // Reactions to freshly spawned or tagged entities
	PhaseDispatch               // Mailbox to external listeners
	PhaseCleanup                // Wrap-around and physical removal
	PhaseCount
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseCollision:
		return "collision"
	case PhaseResolve:
		return "resolve"
	case PhaseSpawn:
		return "spawn"
	case PhaseReact:
		return "react"
	case PhaseDispatch:
		return "dispatch"
	case PhaseCleanup:
		return "cleanup"
	}
	return "unknown"
}

// Access declares the component stores a system reads and writes directly
// Mutations routed through the command buffer need no declaration
type Access struct {
	Reads  []AnyStore
	Writes []AnyStore
}

// ConflictsWith reports whether two systems must not run concurrently
func (a Access) ConflictsWith(b Access) bool {
	return overlaps(a.Writes, b.Reads) || overlaps(a.Writes, b.Writes) || overlaps(b.Writes, a.Reads)
}

func overlaps(x, y []AnyStore) bool {
	for _, s := range x {
		for _, t := range y {
			if s == t {
				return true
			}
		}
	}
	return false
}

// System is one rule evaluated once per frame within its phase
type System interface {
	Name() string
	Phase() Phase
	Access() Access

	// Init resets per-game state, called on construction and on every new game
	Init()

	// Update evaluates the rule; all structural changes go through cmd
	Update(cmd *CommandBuffer)
}
