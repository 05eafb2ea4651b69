package engine

import (
	"sort"

	"github.com/lixenwraith/vi-asteroids/core"
)

// QueryBuilder selects entities having every With store and none of the Without stores
// Results are a snapshot: later mutations do not affect a returned slice
type QueryBuilder struct {
	world   *World
	with    []QueryableStore
	without []AnyStore
}

// Query starts a new query
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{world: w}
}

// With adds required component stores
func (q *QueryBuilder) With(stores ...QueryableStore) *QueryBuilder {
	q.with = append(q.with, stores...)
	return q
}

// Without adds excluded component stores
func (q *QueryBuilder) Without(stores ...AnyStore) *QueryBuilder {
	q.without = append(q.without, stores...)
	return q
}

// Execute intersects starting from the smallest With store
// A query without With stores matches nothing
func (q *QueryBuilder) Execute() []core.Entity {
	if len(q.with) == 0 {
		return nil
	}

	stores := make([]QueryableStore, len(q.with))
	copy(stores, q.with)
	sort.Slice(stores, func(i, j int) bool {
		return stores[i].Count() < stores[j].Count()
	})

	candidates := stores[0].All()
	results := candidates[:0]
	for _, e := range candidates {
		if q.matches(e, stores[1:]) {
			results = append(results, e)
		}
	}
	return results
}

func (q *QueryBuilder) matches(e core.Entity, rest []QueryableStore) bool {
	for _, s := range rest {
		if !s.Has(e) {
			return false
		}
	}
	for _, s := range q.without {
		if s.Has(e) {
			return false
		}
	}
	return true
}
