package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-asteroids/core"
)

type testComponent struct {
	Value int
}

func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[testComponent]()
	e1 := core.NewEntity(1, 1)
	e2 := core.NewEntity(2, 1)
	e3 := core.NewEntity(3, 1)

	s.Set(e1, testComponent{Value: 1})
	s.Set(e2, testComponent{Value: 2})
	s.Set(e3, testComponent{Value: 3})
	s.Set(e2, testComponent{Value: 20})

	assert.Equal(t, 3, s.Count(), "replacing must not duplicate")
	v, ok := s.Get(e2)
	assert.True(t, ok)
	assert.Equal(t, 20, v.Value)

	s.Remove(e1)
	s.Remove(e1)
	assert.Equal(t, 2, s.Count())
	assert.False(t, s.Has(e1))
	assert.ElementsMatch(t, []core.Entity{e2, e3}, s.All())

	// Swap-remove keeps the index consistent for the moved entity
	s.Remove(e3)
	assert.ElementsMatch(t, []core.Entity{e2}, s.All())
	assert.Equal(t, "testComponent", s.Name())
}

func TestStoreStaleGeneration(t *testing.T) {
	s := NewStore[testComponent]()
	old := core.NewEntity(5, 1)
	s.Set(old, testComponent{Value: 1})

	assert.False(t, s.Has(core.NewEntity(5, 2)), "newer generation of the slot must not see old data")
}

func TestStoreRemoveBatchAndClear(t *testing.T) {
	s := NewStore[testComponent]()
	var all []core.Entity
	for i := uint32(0); i < 10; i++ {
		e := core.NewEntity(i, 1)
		all = append(all, e)
		s.Set(e, testComponent{Value: int(i)})
	}

	s.RemoveBatch(all[:5])
	assert.Equal(t, 5, s.Count())
	assert.ElementsMatch(t, all[5:], s.All())

	s.Clear()
	assert.Equal(t, 0, s.Count())
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore[testComponent]()
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				e := core.NewEntity(uint32(w*1000+i), 1)
				s.Set(e, testComponent{Value: i})
				s.Has(e)
			}
		}(w)
	}
	wg.Wait()
	assert.Equal(t, 1000, s.Count())
}
