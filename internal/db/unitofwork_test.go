package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	uow := NewSQLiteUnitOfWork(database)
	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO markets (id, name, created_at, updated_at) VALUES ('m1', 'DE', '', '')`)
		return err
	})
	require.NoError(t, err)

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM markets`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	uow := NewSQLiteUnitOfWork(database)
	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO markets (id, name, created_at, updated_at) VALUES ('m1', 'DE', '', '')`); err != nil {
			return err
		}
		return fmt.Errorf("boom")
	})
	require.Error(t, err)

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM markets`).Scan(&n))
	assert.Equal(t, 0, n, "insert should have been rolled back")
}
