package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/mealy/internal/logging"
	"github.com/aretw0/mealy/pkg/domain"
	"github.com/aretw0/mealy/pkg/ports"
)

// Machine is the core Mealy automaton runner. It owns exactly one piece of
// mutable state, the current state, and advances it by folding input symbols
// through the transition table.
//
// A Machine performs no internal synchronization. Concurrent callers must
// serialize access themselves (see pkg/session for a ready-made serializer);
// the table it reads from may be shared freely.
type Machine struct {
	table   ports.TransitionTable
	initial domain.State
	current domain.State
	steps   uint64
	closed  bool

	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option configures a Machine at construction.
type Option func(*Machine)

// WithInitialState overrides the start state. It takes precedence over a
// table-declared initial state.
func WithInitialState(s domain.State) Option {
	return func(m *Machine) {
		m.initial = s
		m.current = s
	}
}

// WithSnapshot resumes a machine from a persisted snapshot. The snapshot must
// have been produced against the same transition table.
func WithSnapshot(snap *domain.Snapshot) Option {
	return func(m *Machine) {
		m.current = snap.Current
		m.steps = snap.Steps
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithLogger sets a structured logger for the machine.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// NewMachine creates a machine over the given table. The start state is the
// table's declared initial state when it provides one, state 0 otherwise;
// options may override both.
func NewMachine(table ports.TransitionTable, opts ...Option) (*Machine, error) {
	if table == nil {
		return nil, domain.ErrNilTable
	}

	initial := ports.InitialState(table)
	m := &Machine{
		table:   table,
		initial: initial,
		current: initial,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Current returns the state the next transition will start from.
func (m *Machine) Current() domain.State {
	return m.current
}

// Steps returns how many symbols the machine has consumed in its lifetime.
func (m *Machine) Steps() uint64 {
	return m.steps
}

// Snapshot captures the machine's durable state for persistence.
func (m *Machine) Snapshot() *domain.Snapshot {
	return &domain.Snapshot{Current: m.current, Steps: m.steps}
}

// Reset returns the machine to its initial state. The lifetime step counter
// is preserved.
func (m *Machine) Reset() error {
	if m.closed {
		return domain.ErrMachineClosed
	}
	m.current = m.initial
	return nil
}

// Transition consumes the input symbols in order, updating the current state
// step by step, and returns the output of the final applied transition.
//
// An empty batch performs no transitions and returns domain.NoOutput.
//
// If a symbol has no table entry at the then-current state the batch halts:
// the state stays where the last valid transition left it, the failing symbol
// is not applied, and the returned error is a *domain.UndefinedTransitionError
// carrying how many symbols were consumed. Processing is strictly sequential;
// every lookup key depends on the previous step's result.
func (m *Machine) Transition(ctx context.Context, inputs []domain.Input) (domain.Output, error) {
	if m.closed {
		return domain.NoOutput, domain.ErrMachineClosed
	}

	last := domain.NoOutput
	for i, in := range inputs {
		next, ok := m.table.Lookup(m.current, in)
		if !ok {
			return last, m.halt(ctx, in, i)
		}
		m.emitStep(ctx, in, next)
		m.current = next.State
		m.steps++
		last = next.Output
	}
	return last, nil
}

// Trace behaves exactly like Transition but returns one Step per consumed
// symbol instead of the final output only. On an undefined transition the
// steps applied before the halt are returned alongside the error.
func (m *Machine) Trace(ctx context.Context, inputs []domain.Input) ([]domain.Step, error) {
	if m.closed {
		return nil, domain.ErrMachineClosed
	}

	steps := make([]domain.Step, 0, len(inputs))
	for i, in := range inputs {
		next, ok := m.table.Lookup(m.current, in)
		if !ok {
			return steps, m.halt(ctx, in, i)
		}
		steps = append(steps, domain.Step{
			From:   m.current,
			Input:  in,
			To:     next.State,
			Output: next.Output,
		})
		m.emitStep(ctx, in, next)
		m.current = next.State
		m.steps++
	}
	return steps, nil
}

// Close releases the machine. Every later operation returns ErrMachineClosed.
// Close is idempotent.
func (m *Machine) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	m.table = nil
	return nil
}

func (m *Machine) emitStep(ctx context.Context, in domain.Input, next domain.Next) {
	m.logger.Debug("step",
		"from", int(m.current),
		"input", int(in),
		"to", int(next.State),
		"output", int(next.Output),
	)
	if m.hooks.OnStep != nil {
		m.hooks.OnStep(ctx, &domain.StepEvent{
			Timestamp: time.Now(),
			From:      m.current,
			Input:     in,
			To:        next.State,
			Output:    next.Output,
		})
	}
}

func (m *Machine) halt(ctx context.Context, in domain.Input, consumed int) error {
	err := &domain.UndefinedTransitionError{
		State:    m.current,
		Input:    in,
		Consumed: consumed,
	}
	m.logger.Warn("undefined transition",
		"state", int(m.current),
		"input", int(in),
		"consumed", consumed,
	)
	if m.hooks.OnHalt != nil {
		m.hooks.OnHalt(ctx, &domain.HaltEvent{
			Timestamp: time.Now(),
			State:     m.current,
			Input:     in,
			Consumed:  consumed,
		})
	}
	return err
}
