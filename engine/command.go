package engine

import (
	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/core"
)

// CommandOp is the variant tag of a deferred mutation
type CommandOp uint8

const (
	OpCreate CommandOp = iota
	OpDestroy
	OpSet
	OpRemove
	OpAppendChild
)

func (op CommandOp) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpDestroy:
		return "destroy"
	case OpSet:
		return "set"
	case OpRemove:
		return "remove"
	case OpAppendChild:
		return "append_child"
	}
	return "unknown"
}

// Command is one deferred mutation
type Command struct {
	Op     CommandOp
	Entity core.Entity
	Store  AnyStore // OpSet, OpRemove
	Value  any      // OpSet
	Child  core.Entity
}

// CommandBuffer records mutations during a phase and applies them at the barrier
// A buffer belongs to one job at a time and is not safe for concurrent recording
type CommandBuffer struct {
	world    *World
	commands []Command
}

// NewCommandBuffer creates an empty buffer bound to w
func NewCommandBuffer(w *World) *CommandBuffer {
	return &CommandBuffer{
		world:    w,
		commands: make([]Command, 0, 32),
	}
}

// World returns the world the buffer applies to
func (cb *CommandBuffer) World() *World {
	return cb.world
}

// CreateEntity reserves an id now; the entity becomes alive at playback
// Components recorded against the id after this call land in order
func (cb *CommandBuffer) CreateEntity() core.Entity {
	e := cb.world.entities.Reserve()
	cb.commands = append(cb.commands, Command{Op: OpCreate, Entity: e})
	return e
}

// DestroyEntity queues destruction, cascading through the linked group at playback
func (cb *CommandBuffer) DestroyEntity(e core.Entity) {
	cb.commands = append(cb.commands, Command{Op: OpDestroy, Entity: e})
}

// DestroyAll queues destruction of every entity in the set
func (cb *CommandBuffer) DestroyAll(entities []core.Entity) {
	for _, e := range entities {
		cb.DestroyEntity(e)
	}
}

// Set queues an add-or-replace of a component value
// Panics on an unregistered component type, a programmer error
func (cb *CommandBuffer) Set(e core.Entity, comp any) {
	s, err := cb.world.StoreFor(comp)
	if err != nil {
		panic(err)
	}
	cb.commands = append(cb.commands, Command{Op: OpSet, Entity: e, Store: s, Value: comp})
}

// Remove queues detaching the component held in store
func (cb *CommandBuffer) Remove(e core.Entity, store AnyStore) {
	cb.commands = append(cb.commands, Command{Op: OpRemove, Entity: e, Store: store})
}

// AppendChild links child to parent so destroying parent destroys child
func (cb *CommandBuffer) AppendChild(parent, child core.Entity) {
	cb.commands = append(cb.commands, Command{Op: OpAppendChild, Entity: parent, Child: child})
}

// Len returns the number of recorded commands
func (cb *CommandBuffer) Len() int {
	return len(cb.commands)
}

// Commands exposes the recorded log, read-only
func (cb *CommandBuffer) Commands() []Command {
	return cb.commands
}

// Apply plays the log back in record order and empties the buffer
// Commands against entities that are no longer alive are skipped
func (cb *CommandBuffer) Apply() {
	w := cb.world
	for i := range cb.commands {
		c := &cb.commands[i]
		switch c.Op {
		case OpCreate:
			if w.entities.Activate(c.Entity) {
				w.statCreated.Add(1)
			}
		case OpDestroy:
			w.DestroyEntity(c.Entity)
		case OpSet:
			if w.IsAlive(c.Entity) {
				if err := c.Store.setAny(c.Entity, c.Value); err != nil {
					panic(err)
				}
			}
		case OpRemove:
			if w.IsAlive(c.Entity) {
				c.Store.Remove(c.Entity)
			}
		case OpAppendChild:
			if w.IsAlive(c.Entity) {
				group, _ := w.Components.LinkedGroup.Get(c.Entity)
				children := make([]core.Entity, 0, len(group.Children)+1)
				for _, child := range group.Children {
					// Drop links to children destroyed earlier
					if w.IsAlive(child) || w.entities.IsReserved(child) {
						children = append(children, child)
					}
				}
				children = append(children, c.Child)
				w.Components.LinkedGroup.Set(c.Entity, component.LinkedGroupComponent{Children: children})
			}
		}
		c.Value = nil
		c.Store = nil
	}
	cb.commands = cb.commands[:0]
}

// Reset drops the log without applying it, releasing ids reserved by CreateEntity
func (cb *CommandBuffer) Reset() {
	for _, c := range cb.commands {
		if c.Op == OpCreate {
			cb.world.entities.Release(c.Entity)
		}
	}
	clear(cb.commands)
	cb.commands = cb.commands[:0]
}
