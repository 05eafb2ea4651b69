package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrDuplicate         = errors.New("duplicate service")
	ErrUnknownDependency = errors.New("unknown service dependency")
	ErrDependencyCycle   = errors.New("service dependency cycle")
)

// Group starts services in dependency order and stops them in reverse
// Not safe for concurrent use
type Group struct {
	services map[string]Service
	names    []string // Registration order, ties in the start order follow it
	started  []Service
	log      *zap.Logger
}

// NewGroup creates an empty group
func NewGroup(log *zap.Logger) *Group {
	return &Group{
		services: make(map[string]Service),
		log:      log,
	}
}

// Add registers a service
func (g *Group) Add(s Service) error {
	name := s.Name()
	if _, ok := g.services[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	g.services[name] = s
	g.names = append(g.names, name)
	return nil
}

// Get returns a registered service by name
func (g *Group) Get(name string) (Service, bool) {
	s, ok := g.services[name]
	return s, ok
}

// Order resolves the start order, dependencies first
func (g *Group) Order() ([]Service, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	mark := make(map[string]int, len(g.services))
	order := make([]Service, 0, len(g.services))

	var visit func(name string, from string) error
	visit = func(name, from string) error {
		s, ok := g.services[name]
		if !ok {
			return fmt.Errorf("%w: %s needs %s", ErrUnknownDependency, from, name)
		}
		switch mark[name] {
		case visiting:
			return fmt.Errorf("%w: %s", ErrDependencyCycle, name)
		case done:
			return nil
		}
		mark[name] = visiting
		for _, dep := range s.Dependencies() {
			if err := visit(dep, name); err != nil {
				return err
			}
		}
		mark[name] = done
		order = append(order, s)
		return nil
	}

	for _, name := range g.names {
		if err := visit(name, ""); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// Init configures every service in start order, args are looked up by service name
func (g *Group) Init(args map[string][]any) error {
	order, err := g.Order()
	if err != nil {
		return err
	}
	for _, s := range order {
		if err := s.Init(args[s.Name()]...); err != nil {
			return fmt.Errorf("init %s: %w", s.Name(), err)
		}
	}
	return nil
}

// Start launches every service in order
// On failure the services already started are stopped again
func (g *Group) Start() error {
	order, err := g.Order()
	if err != nil {
		return err
	}
	for _, s := range order {
		if err := s.Start(); err != nil {
			startErr := fmt.Errorf("start %s: %w", s.Name(), err)
			return errors.Join(startErr, g.Stop())
		}
		g.started = append(g.started, s)
		g.log.Debug("service started", zap.String("service", s.Name()))
	}
	return nil
}

// Stop halts started services in reverse order, collecting every error
func (g *Group) Stop() error {
	var errs []error
	for i := len(g.started) - 1; i >= 0; i-- {
		s := g.started[i]
		if err := s.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", s.Name(), err))
			continue
		}
		g.log.Debug("service stopped", zap.String("service", s.Name()))
	}
	g.started = nil
	return errors.Join(errs...)
}

// Contribute lets every contributing service publish its resources, in start order
func (g *Group) Contribute(publish ResourcePublisher) error {
	order, err := g.Order()
	if err != nil {
		return err
	}
	for _, s := range order {
		if c, ok := s.(ResourceContributor); ok {
			c.Contribute(publish)
		}
	}
	return nil
}
