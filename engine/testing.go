package engine

import (
	"go.uber.org/zap"
)

// NewTestWorld creates a debug world on a 100x100 field with a no-op logger
// Debug mode turns invariant violations into test failures
func NewTestWorld() *World {
	return NewWorld(Resource{
		Field: NewPlayField(100, 100),
		Log:   zap.NewNop(),
		Debug: true,
		Seed:  42,
	})
}
