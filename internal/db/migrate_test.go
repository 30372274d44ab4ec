package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesTables(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"concepts", "markets", "tribes", "placements", "cohesion_rules"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	assert.NoError(t, Migrate(database))
	assert.NoError(t, Migrate(database))
}

func TestMigrate_PlacementMonthBounds(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO markets (id, name, created_at, updated_at) VALUES ('m1', 'DE', '', '')`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO placements (id, market_id, month, created_at, updated_at)
		VALUES ('p1', 'm1', 12, '', '')`)
	assert.Error(t, err, "month 12 should violate the CHECK constraint")
}
