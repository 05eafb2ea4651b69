// Package service runs long-lived infrastructure beside the simulation
package service

// Service is the lifecycle of an infrastructure subsystem such as the audio backend
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - configuration from flags or env
//  3. Start() - acquire devices, launch goroutines
//  4. Stop() - release everything, idempotent
type Service interface {
	// Name is unique within a group
	Name() string

	// Dependencies names services that must start before this one
	Dependencies() []string

	// Init configures the service, args are service-specific
	Init(args ...any) error

	Start() error

	Stop() error
}

// ResourcePublisher receives a resource a service exposes to the game, routed by type
type ResourcePublisher func(resource any)

// ResourceContributor is implemented by services that expose an API to the game
// Services not implementing it are skipped
type ResourceContributor interface {
	Contribute(publish ResourcePublisher)
}
