package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestNewSQLiteStorage(t *testing.T) {
	t.Run("creates missing directories", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
		store, err := NewSQLiteStorage(dbPath)
		require.NoError(t, err)
		assert.NoError(t, store.Close())
	})

	t.Run("rejects empty path", func(t *testing.T) {
		_, err := NewSQLiteStorage("")
		assert.Error(t, err)
	})
}

func TestMigrateIdempotent(t *testing.T) {
	store := createTestStorage(t)
	// A second run must be a no-op, not a failure.
	assert.NoError(t, store.Migrate(context.Background()))
}
