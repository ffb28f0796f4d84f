package ports

import (
	"context"

	"github.com/aretw0/mealy/pkg/domain"
)

// SnapshotStore defines the interface for persisting machine snapshots.
// This allows for durable execution, enabling "Stop & Resume" sessions: the
// snapshot carries everything needed to rebuild a machine against the same
// transition table.
type SnapshotStore interface {
	// Save persists the snapshot for a given session ID.
	Save(ctx context.Context, sessionID string, snap *domain.Snapshot) error

	// Load retrieves the snapshot for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.Snapshot, error)

	// Delete removes the snapshot for a given session ID.
	Delete(ctx context.Context, sessionID string) error
}

// Lister is an optional interface for stores that can enumerate sessions.
// Used by introspection surfaces (HTTP session listing, CLI).
type Lister interface {
	List(ctx context.Context) ([]string, error)
}
