package database

import (
	"testing"

	"github.com/diegoclair/send-it-later/migrator/sqlite"
	"github.com/stretchr/testify/require"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	// New pins a single connection, so the in-memory database is shared
	db, err := New(":memory:")
	require.NoError(t, err, "Failed to create test database")

	err = sqlite.Migrate(db.DB())
	require.NoError(t, err, "Failed to run migrations on test database")

	t.Cleanup(func() {
		require.NoError(t, db.Close(), "Failed to close test database")
	})

	return db
}

func countRows(t *testing.T, db *DB, table, teamID string) int {
	t.Helper()

	var n int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE team_id = ?", teamID).Scan(&n)
	require.NoError(t, err)
	return n
}
