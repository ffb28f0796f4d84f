package domain

import "fmt"

// Transition defines one rule of the automaton: in state From, on symbol
// Input, move to state To and emit Output. The full set of rules is the
// "Mealy data" the engine consumes through a table lookup; it is supplied
// externally and never mutated by the engine.
type Transition struct {
	From   State  `json:"from" yaml:"from"`
	Input  Input  `json:"input" yaml:"input"`
	To     State  `json:"to" yaml:"to"`
	Output Output `json:"output" yaml:"output"`
}

// Key returns the lookup key half of the rule.
func (t Transition) Key() (State, Input) {
	return t.From, t.Input
}

// Next returns the successor half of the rule.
func (t Transition) Next() Next {
	return Next{State: t.To, Output: t.Output}
}

func (t Transition) String() string {
	return fmt.Sprintf("(%d,%d)->(%d,%d)", t.From, t.Input, t.To, t.Output)
}
