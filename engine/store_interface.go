package engine

import (
	"reflect"

	"github.com/lixenwraith/vi-asteroids/core"
)

// AnyStore is the type-erased view of a Store used by the world lifecycle and command buffers
type AnyStore interface {
	Name() string
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()

	componentType() reflect.Type
	setAny(e core.Entity, val any) error
}

// QueryableStore can drive a query as the iteration source
type QueryableStore interface {
	AnyStore
	All() []core.Entity
}
