package ports

import "github.com/aretw0/mealy/pkg/domain"

// TransitionTable defines how the engine resolves (state, input) pairs.
// Implementations must be immutable for the lifetime of every machine using
// them, and safe for concurrent read access; the engine never mutates the
// table and may share one table across many machines.
type TransitionTable interface {
	// Lookup resolves one pair. The boolean reports whether an entry exists;
	// a missing entry is how the engine detects an undefined transition.
	Lookup(state domain.State, input domain.Input) (domain.Next, bool)
}

// InitialStater is an optional interface for tables that declare their own
// start state (exported controllers usually do). Tables without it start
// machines at state 0.
type InitialStater interface {
	InitialState() domain.State
}

// InitialState resolves the start state for a table, falling back to 0.
func InitialState(table TransitionTable) domain.State {
	if is, ok := table.(InitialStater); ok {
		return is.InitialState()
	}
	return 0
}
