package mealy

import (
	"context"
	"log/slog"

	"github.com/aretw0/mealy/internal/runtime"
	"github.com/aretw0/mealy/pkg/domain"
	"github.com/aretw0/mealy/pkg/ports"
)

// Machine is the high-level entry point for the mealy library.
// It wraps the internal runtime and provides a simplified API for consumers.
//
// A Machine is not safe for concurrent use; route all inputs through a single
// goroutine or use pkg/session for serialized multi-session access.
type Machine struct {
	runtime     *runtime.Machine
	runtimeOpts []runtime.Option
}

// Option defines a functional option for configuring the Machine.
type Option func(*Machine)

// WithInitialState overrides the start state, taking precedence over a
// table-declared one.
func WithInitialState(s domain.State) Option {
	return func(m *Machine) {
		m.runtimeOpts = append(m.runtimeOpts, runtime.WithInitialState(s))
	}
}

// WithSnapshot resumes the machine from a persisted snapshot produced
// against the same table.
func WithSnapshot(snap *domain.Snapshot) Option {
	return func(m *Machine) {
		m.runtimeOpts = append(m.runtimeOpts, runtime.WithSnapshot(snap))
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.runtimeOpts = append(m.runtimeOpts, runtime.WithHooks(hooks))
	}
}

// WithLogger sets a custom structured logger for the machine.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.runtimeOpts = append(m.runtimeOpts, runtime.WithLogger(logger))
	}
}

// New initializes a new Machine over the given transition table. The table
// must be fully populated before the first transition and stay immutable for
// the machine's lifetime; it may be shared read-only across machines.
func New(table ports.TransitionTable, opts ...Option) (*Machine, error) {
	m := &Machine{}
	for _, opt := range opts {
		opt(m)
	}

	rt, err := runtime.NewMachine(table, m.runtimeOpts...)
	if err != nil {
		return nil, err
	}
	m.runtime = rt
	return m, nil
}

// Transition consumes the input symbols in order and returns the output of
// the final applied transition, or domain.NoOutput for an empty batch. See
// the runtime documentation for the fail-stop contract on undefined
// transitions.
func (m *Machine) Transition(ctx context.Context, inputs ...domain.Input) (domain.Output, error) {
	return m.runtime.Transition(ctx, inputs)
}

// Trace is Transition with one Step returned per consumed symbol.
func (m *Machine) Trace(ctx context.Context, inputs ...domain.Input) ([]domain.Step, error) {
	return m.runtime.Trace(ctx, inputs)
}

// Current returns the state the next transition will start from.
func (m *Machine) Current() domain.State {
	return m.runtime.Current()
}

// Steps returns how many symbols the machine has consumed in its lifetime.
func (m *Machine) Steps() uint64 {
	return m.runtime.Steps()
}

// Snapshot captures the machine's durable state for persistence.
func (m *Machine) Snapshot() *domain.Snapshot {
	return m.runtime.Snapshot()
}

// Reset returns the machine to its initial state.
func (m *Machine) Reset() error {
	return m.runtime.Reset()
}

// Close releases the machine; all later operations return
// domain.ErrMachineClosed. Close is idempotent.
func (m *Machine) Close() error {
	return m.runtime.Close()
}
