package memory

import (
	"fmt"
	"sort"

	"github.com/aretw0/mealy/pkg/domain"
)

// Table implements ports.TransitionTable using nested maps, state first then
// input. Built once, then immutable: Lookup never writes, so one Table can
// back any number of machines concurrently.
type Table struct {
	rules   map[domain.State]map[domain.Input]domain.Next
	initial domain.State
	count   int
}

// TableOption configures a Table at construction.
type TableOption func(*Table)

// WithInitialState declares the table's start state (default 0). Machines
// built over the table pick it up through ports.InitialStater.
func WithInitialState(s domain.State) TableOption {
	return func(t *Table) {
		t.initial = s
	}
}

// NewTable builds a table from explicit transition rules.
// Duplicate (from, input) pairs are rejected: a Mealy table is a function,
// and silently keeping one of two conflicting successors would make machine
// behavior depend on rule order.
func NewTable(rules []domain.Transition, opts ...TableOption) (*Table, error) {
	t := &Table{
		rules: make(map[domain.State]map[domain.Input]domain.Next),
	}
	for _, opt := range opts {
		opt(t)
	}

	for _, rule := range rules {
		row, ok := t.rules[rule.From]
		if !ok {
			row = make(map[domain.Input]domain.Next)
			t.rules[rule.From] = row
		}
		if _, exists := row[rule.Input]; exists {
			return nil, fmt.Errorf("duplicate transition for (state %d, input %d)", rule.From, rule.Input)
		}
		row[rule.Input] = rule.Next()
		t.count++
	}

	return t, nil
}

// Lookup resolves one (state, input) pair.
func (t *Table) Lookup(state domain.State, input domain.Input) (domain.Next, bool) {
	row, ok := t.rules[state]
	if !ok {
		return domain.Next{}, false
	}
	next, ok := row[input]
	return next, ok
}

// InitialState implements ports.InitialStater.
func (t *Table) InitialState() domain.State {
	return t.initial
}

// Len returns the number of rules in the table.
func (t *Table) Len() int {
	return t.count
}

// Rules returns every rule in deterministic (state, input) order.
// Used by exporters and introspection tools.
func (t *Table) Rules() []domain.Transition {
	out := make([]domain.Transition, 0, t.count)
	for from, row := range t.rules {
		for in, next := range row {
			out = append(out, domain.Transition{
				From:   from,
				Input:  in,
				To:     next.State,
				Output: next.Output,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].Input < out[j].Input
	})
	return out
}
