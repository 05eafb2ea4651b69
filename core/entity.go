package core

import "strconv"

// Entity is a generational entity id
// High 32 bits hold the slot generation, low 32 bits the slot index
// Generations start at 1, so the zero value never names a live entity
type Entity uint64

// NoEntity is the zero id, used as "none" in component fields
const NoEntity Entity = 0

// NewEntity packs a slot index and generation
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation the id was issued with
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// IsZero reports whether e is NoEntity
func (e Entity) IsZero() bool {
	return e == NoEntity
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.Index()), 10) + "v" + strconv.FormatUint(uint64(e.Generation()), 10)
}
