// Package registry maps entity kinds to immutable component templates
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/engine"
)

// ErrMissingTemplate is a configuration error: a kind was requested that has no template
var ErrMissingTemplate = errors.New("missing template")

// ErrFrozen is returned when registering after the registry was sealed
var ErrFrozen = errors.New("registry is frozen")

// Template is the component prototype list of one entity kind
// Values are copied into each instance, so templates never share state with entities
type Template struct {
	Key        core.PrefabKey
	Components []any
}

// Registry is populated at startup, then frozen and read concurrently by spawn jobs
type Registry struct {
	mu        sync.RWMutex
	templates map[core.PrefabKey]Template
	frozen    bool
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		templates: make(map[core.PrefabKey]Template),
	}
}

// Register adds or replaces a template
func (r *Registry) Register(t Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("%w: register %s", ErrFrozen, t.Key)
	}
	r.templates[t.Key] = t
	return nil
}

// Freeze seals the registry against further registration
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Lookup returns the template for key
func (r *Registry) Lookup(key core.PrefabKey) (Template, error) {
	r.mu.RLock()
	t, ok := r.templates[key]
	r.mu.RUnlock()
	if !ok {
		return Template{}, fmt.Errorf("%w: %s", ErrMissingTemplate, key)
	}
	return t, nil
}

// MustLookup panics on a missing template, the fail-fast path for running simulations
func (r *Registry) MustLookup(key core.PrefabKey) Template {
	t, err := r.Lookup(key)
	if err != nil {
		panic(err)
	}
	return t
}

// Validate checks that every required key has a template
func (r *Registry) Validate(required []core.PrefabKey) error {
	var errs []error
	for _, k := range required {
		if _, err := r.Lookup(k); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Keys returns registered keys sorted by class then variant
func (r *Registry) Keys() []core.PrefabKey {
	r.mu.RLock()
	keys := make([]core.PrefabKey, 0, len(r.templates))
	for k := range r.templates {
		keys = append(keys, k)
	}
	r.mu.RUnlock()
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Class != keys[j].Class {
			return keys[i].Class < keys[j].Class
		}
		return keys[i].Variant < keys[j].Variant
	})
	return keys
}

// Instantiate records creation of one entity carrying the template's components
// Callers record overrides such as position after this call
func (r *Registry) Instantiate(cb *engine.CommandBuffer, key core.PrefabKey) core.Entity {
	t := r.MustLookup(key)
	e := cb.CreateEntity()
	for _, c := range t.Components {
		cb.Set(e, c)
	}
	return e
}
