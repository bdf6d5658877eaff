package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func migrationsDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs("migrations")
	require.NoError(t, err)
	return dir
}

func TestRunMigrationsAndSeed(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "aina.db")

	require.NoError(t, RunMigrations(dbPath, migrationsDir(t)))

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, SeedDefaults(ctx, db))

	var members int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM members`).Scan(&members))
	require.Equal(t, 3, members)

	// Reseeding an already populated database is a no-op.
	require.NoError(t, SeedDefaults(ctx, db))
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM members`).Scan(&members))
	require.Equal(t, 3, members)
}

func TestRunMigrationsWithDB(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "aina.db")

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, RunMigrationsWithDB(db, migrationsDir(t)))

	ctx := context.Background()
	require.NoError(t, SeedDefaults(ctx, db))

	var rooms int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&rooms))
	require.Equal(t, 6, rooms)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "aina.db")

	require.NoError(t, RunMigrations(dbPath, migrationsDir(t)))

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	boom := errors.New("boom")
	err = WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO rooms(id, name) VALUES ('r1', 'Half Written')`)
		if err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var rooms int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM rooms`).Scan(&rooms))
	require.Zero(t, rooms)
}
