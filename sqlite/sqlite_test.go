package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/reservo/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pragma(t *testing.T, db *sqlite.DB, name string) string {
	t.Helper()
	var value string
	require.NoError(t, db.QueryRowContext(context.Background(), "PRAGMA "+name).Scan(&value))
	return value
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("in-memory catalog starts empty", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		var n int
		err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM restaurants").Scan(&n)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Equal(t, "1", pragma(t, db, "foreign_keys"))
		assert.Equal(t, "memory", pragma(t, db, "journal_mode"))
	})

	t.Run("catalog file uses WAL and survives reopen", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "reservo.db")
		ctx := context.Background()

		first := sqlite.NewDB(path)
		require.NoError(t, first.Open())
		assert.Equal(t, "wal", pragma(t, first, "journal_mode"))
		svc := sqlite.NewRestaurantService(first)
		r := newRestaurant("joes-pizza", "New York", "Italian")
		require.NoError(t, svc.CreateRestaurant(ctx, r))
		require.NoError(t, first.Close())

		second := sqlite.NewDB(path)
		require.NoError(t, second.Open())
		defer second.Close()
		found, err := sqlite.NewRestaurantService(second).FindRestaurantByID(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, "joes-pizza", found.Name)
	})

	t.Run("fails for a catalog in a missing directory", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(filepath.Join(t.TempDir(), "missing", "reservo.db"))
		assert.Error(t, db.Open())
	})

	t.Run("close before open is a no-op", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, sqlite.NewDB(":memory:").Close())
	})
}
