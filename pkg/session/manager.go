package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/mealy/internal/logging"
	"github.com/aretw0/mealy/internal/runtime"
	"github.com/aretw0/mealy/pkg/domain"
	"github.com/aretw0/mealy/pkg/ports"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager drives one Mealy table across many named sessions, persisting each
// session's snapshot in a SnapshotStore. The machine core performs no
// internal synchronization, so the Manager serializes access per session
// using reference-counted locks that are garbage collected when idle.
type Manager struct {
	table ports.TransitionTable
	store ports.SnapshotStore

	mu    sync.Mutex            // Global lock for the map
	locks map[string]*lockEntry // Map of active locks

	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithHooks registers observability hooks passed to every machine.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Manager) {
		m.hooks = hooks
	}
}

// WithLogger configures a logger for the Manager and its machines.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a session manager over a shared table and store.
func NewManager(table ports.TransitionTable, store ports.SnapshotStore, opts ...Option) (*Manager, error) {
	if table == nil {
		return nil, domain.ErrNilTable
	}
	if store == nil {
		return nil, fmt.Errorf("nil snapshot store")
	}

	m := &Manager{
		table:  table,
		store:  store,
		locks:  make(map[string]*lockEntry),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock entry.mu and later call release(sessionID) after
// unlocking.
func (m *Manager) acquire(sessionID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		entry = &lockEntry{}
		m.locks[sessionID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry at zero.
func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		return // Should not happen if paired correctly
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, sessionID)
	}
}

// withLock runs fn while holding the session's lock.
func (m *Manager) withLock(sessionID string, fn func() error) error {
	entry := m.acquire(sessionID)
	entry.mu.Lock()
	err := fn()
	entry.mu.Unlock()
	m.release(sessionID)
	return err
}

// Transition applies a batch of inputs to the named session and persists the
// resulting snapshot. Unknown sessions start fresh at the table's initial
// state. Partial progress from a halted batch is persisted too: the snapshot
// reflects the state reached before the offending symbol, and the returned
// error carries the failure detail.
func (m *Manager) Transition(ctx context.Context, sessionID string, inputs []domain.Input) (domain.Output, *domain.Snapshot, error) {
	var out domain.Output
	var snap *domain.Snapshot
	var terr error

	err := m.withLock(sessionID, func() error {
		machine, err := m.machineFor(ctx, sessionID)
		if err != nil {
			return err
		}
		defer machine.Close()

		out, terr = machine.Transition(ctx, inputs)
		snap = machine.Snapshot()
		if err := m.store.Save(ctx, sessionID, snap); err != nil {
			return fmt.Errorf("failed to persist session %s: %w", sessionID, err)
		}
		return nil
	})
	if err != nil {
		return domain.NoOutput, nil, err
	}
	return out, snap, terr
}

// Trace is Transition with per-step outputs.
func (m *Manager) Trace(ctx context.Context, sessionID string, inputs []domain.Input) ([]domain.Step, *domain.Snapshot, error) {
	var steps []domain.Step
	var snap *domain.Snapshot
	var terr error

	err := m.withLock(sessionID, func() error {
		machine, err := m.machineFor(ctx, sessionID)
		if err != nil {
			return err
		}
		defer machine.Close()

		steps, terr = machine.Trace(ctx, inputs)
		snap = machine.Snapshot()
		if err := m.store.Save(ctx, sessionID, snap); err != nil {
			return fmt.Errorf("failed to persist session %s: %w", sessionID, err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return steps, snap, terr
}

// Peek returns the persisted snapshot without advancing or creating it.
func (m *Manager) Peek(ctx context.Context, sessionID string) (*domain.Snapshot, error) {
	var snap *domain.Snapshot
	err := m.withLock(sessionID, func() error {
		var err error
		snap, err = m.store.Load(ctx, sessionID)
		return err
	})
	return snap, err
}

// End deletes the session from the store.
func (m *Manager) End(ctx context.Context, sessionID string) error {
	return m.withLock(sessionID, func() error {
		return m.store.Delete(ctx, sessionID)
	})
}

// Sessions lists active sessions if the store supports enumeration.
func (m *Manager) Sessions(ctx context.Context) ([]string, error) {
	lister, ok := m.store.(ports.Lister)
	if !ok {
		return nil, fmt.Errorf("store does not support listing sessions")
	}
	return lister.List(ctx)
}

// machineFor rebuilds a machine from the persisted snapshot, or a fresh one
// for unknown sessions. Caller holds the session lock.
func (m *Manager) machineFor(ctx context.Context, sessionID string) (*runtime.Machine, error) {
	opts := []runtime.Option{
		runtime.WithHooks(m.hooks),
		runtime.WithLogger(m.logger.With("session", sessionID)),
	}

	snap, err := m.store.Load(ctx, sessionID)
	switch {
	case err == nil:
		opts = append(opts, runtime.WithSnapshot(snap))
	case errors.Is(err, domain.ErrSessionNotFound):
		m.logger.Debug("starting fresh session", "session", sessionID)
	default:
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	return runtime.NewMachine(m.table, opts...)
}
