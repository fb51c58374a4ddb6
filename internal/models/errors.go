package models

import "errors"

// Sentinel errors shared across layers. Services wrap them with context
// via fmt.Errorf("...: %w", ...) and presentation layers map them to
// transport-level codes with errors.Is.
var (
	// ErrValidation indicates malformed or missing input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState indicates the entity exists but its current state
	// does not permit the requested transition.
	ErrInvalidState = errors.New("invalid state")

	// ErrCapacityExceeded indicates a capacity charge was refused because
	// the agent is already at its concurrent attendance limit.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)
