package domain

// State identifies one member of the finite, known-in-advance state set.
// Exported controllers enumerate states densely from 0, but nothing in the
// engine requires density; the transition table defines which values exist.
type State int

// Input is a symbol from the machine's input alphabet.
type Input int

// Output is the symbol a transition emits.
type Output int

// NoOutput is the documented no-op result: a batch transition that consumed
// zero symbols returns it instead of a transition output.
const NoOutput Output = -1

// Next is the successor half of a transition table entry.
type Next struct {
	State  State
	Output Output
}

// Step records one applied transition. A batch of N consumed symbols yields
// N steps, in input order.
type Step struct {
	From   State  `json:"from"`
	Input  Input  `json:"input"`
	To     State  `json:"to"`
	Output Output `json:"output"`
}

// Snapshot represents the durable view of a running machine.
type Snapshot struct {
	// Current is the state the machine will transition from next.
	Current State `json:"current"`

	// Steps counts the symbols consumed over the machine's lifetime.
	// Useful for auditing resumed sessions.
	Steps uint64 `json:"steps"`
}

// NewSnapshot creates a clean snapshot starting at a specific state.
func NewSnapshot(initial State) *Snapshot {
	return &Snapshot{Current: initial}
}
