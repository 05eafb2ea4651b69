package engine

import "errors"

var (
	// ErrUnknownComponent is returned when a component value has no registered store
	ErrUnknownComponent = errors.New("unknown component type")

	// ErrJobPanic wraps a panic recovered from a scheduled system
	ErrJobPanic = errors.New("system panicked")
)
