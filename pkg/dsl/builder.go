package dsl

import (
	"fmt"

	"github.com/aretw0/mealy/pkg/adapters/memory"
	"github.com/aretw0/mealy/pkg/domain"
)

// Builder manages the table construction.
type Builder struct {
	rules   []domain.Transition
	initial domain.State
}

// New creates a new table builder.
func New() *Builder {
	return &Builder{}
}

// Initial declares the table's start state (default 0).
func (b *Builder) Initial(s domain.State) *Builder {
	b.initial = s
	return b
}

// From selects the source state for subsequent On calls.
func (b *Builder) From(s domain.State) *StateBuilder {
	return &StateBuilder{builder: b, from: s}
}

// Build compiles the collected rules into a memory table.
func (b *Builder) Build() (*memory.Table, error) {
	table, err := memory.NewTable(b.rules, memory.WithInitialState(b.initial))
	if err != nil {
		return nil, fmt.Errorf("failed to build table: %w", err)
	}
	return table, nil
}

// StateBuilder adds rules for a single source state.
type StateBuilder struct {
	builder *Builder
	from    domain.State
}

// On adds the rule (from, input) -> (to, output).
func (sb *StateBuilder) On(input domain.Input, to domain.State, output domain.Output) *StateBuilder {
	sb.builder.rules = append(sb.builder.rules, domain.Transition{
		From:   sb.from,
		Input:  input,
		To:     to,
		Output: output,
	})
	return sb
}

// From switches the source state, continuing the same build chain.
func (sb *StateBuilder) From(s domain.State) *StateBuilder {
	return sb.builder.From(s)
}

// Initial declares the start state without breaking the chain.
func (sb *StateBuilder) Initial(s domain.State) *StateBuilder {
	sb.builder.Initial(s)
	return sb
}

// Build compiles the collected rules into a memory table.
func (sb *StateBuilder) Build() (*memory.Table, error) {
	return sb.builder.Build()
}
