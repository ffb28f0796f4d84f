package domain

import (
	"errors"
	"fmt"
)

// ErrUndefinedTransition is returned when the table has no entry for the
// current (state, input) pair. Match with errors.Is; the concrete error is an
// *UndefinedTransitionError carrying the partial progress.
var ErrUndefinedTransition = errors.New("undefined transition")

// ErrMachineClosed is returned when an operation is invoked on a machine
// after Close.
var ErrMachineClosed = errors.New("machine is closed")

// ErrNilTable is returned by constructors when no transition table is supplied.
var ErrNilTable = errors.New("nil transition table")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// UndefinedTransitionError reports a batch transition that halted because the
// table had no entry for the pair it reached. The machine's state is left at
// the last valid transition; the failing symbol is not applied.
type UndefinedTransitionError struct {
	// State is the state the machine was in when the lookup failed.
	State State

	// Input is the symbol with no table entry at State.
	Input Input

	// Consumed is how many symbols of the batch were applied before the
	// failure (the failing symbol is not counted).
	Consumed int
}

func (e *UndefinedTransitionError) Error() string {
	return fmt.Sprintf("undefined transition: no entry for (state %d, input %d) after %d symbol(s)",
		e.State, e.Input, e.Consumed)
}

// Unwrap lets errors.Is(err, ErrUndefinedTransition) match.
func (e *UndefinedTransitionError) Unwrap() error {
	return ErrUndefinedTransition
}
