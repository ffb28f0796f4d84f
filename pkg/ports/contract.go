package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/mealy/pkg/domain"
)

// RunSnapshotStoreContract runs a suite of tests to verify that a
// SnapshotStore implementation adheres to the defined interface contract.
func RunSnapshotStoreContract(t *testing.T, store SnapshotStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		snap := domain.NewSnapshot(3)
		snap.Steps = 7

		err := store.Save(ctx, sessionID, snap)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, domain.State(3), loaded.Current)
		assert.Equal(t, uint64(7), loaded.Steps)
	})

	t.Run("Load returns a copy", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sessionID, domain.NewSnapshot(1)))

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		loaded.Current = 99

		again, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, domain.State(1), again.Current, "mutating a loaded snapshot must not affect the store")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sessionID, domain.NewSnapshot(0)))
		require.NoError(t, store.Save(ctx, sessionID, &domain.Snapshot{Current: 2, Steps: 4}))

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, domain.State(2), loaded.Current)
		assert.Equal(t, uint64(4), loaded.Steps)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sessionID, domain.NewSnapshot(0)))

		err := store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})
}

// RunTableContract verifies that a TransitionTable implementation honors the
// lookup contract for a known set of rules: every supplied rule resolves to
// its successor, lookups are repeatable, and absent pairs report !ok.
func RunTableContract(t *testing.T, table TransitionTable, rules []domain.Transition) {
	t.Run("Lookup Success", func(t *testing.T) {
		for _, rule := range rules {
			next, ok := table.Lookup(rule.From, rule.Input)
			require.True(t, ok, "expected entry for %s", rule)
			assert.Equal(t, rule.Next(), next)
		}
	})

	t.Run("Lookup Deterministic", func(t *testing.T) {
		for _, rule := range rules {
			first, ok1 := table.Lookup(rule.From, rule.Input)
			second, ok2 := table.Lookup(rule.From, rule.Input)
			require.True(t, ok1 && ok2)
			assert.Equal(t, first, second, "repeated lookups of %s must agree", rule)
		}
	})

	t.Run("Lookup Missing", func(t *testing.T) {
		// A pair far outside any sane alphabet.
		_, ok := table.Lookup(domain.State(1<<30), domain.Input(1<<30))
		assert.False(t, ok, "expected no entry for an out-of-space pair")
	})
}
