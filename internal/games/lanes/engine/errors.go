package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTrack means an actor left its lane and no other lane exists.
	ErrNoTrack = errors.New("no track available for reassignment")

	// ErrInvalidPosition means integration produced a NaN or infinite position.
	ErrInvalidPosition = errors.New("actor position is not finite")
)

// InvariantError reports a fatal simulation failure with the state of the
// offending actor. The simulation halts after returning one.
type InvariantError struct {
	Op    string
	Tick  uint64
	Actor Actor
	Err   error
}

// Error implements error.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("engine: %s at tick %d: %v (%s)", e.Op, e.Tick, e.Err, &e.Actor)
}

// Unwrap returns the underlying sentinel.
func (e *InvariantError) Unwrap() error {
	return e.Err
}
