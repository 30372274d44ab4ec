package repository

import (
	"context"
	"testing"

	"github.com/avermeer/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMarketRepo(db)
	ctx := context.Background()

	m := testutil.NewTestMarket("Germany", testutil.WithRegion("DE"))
	require.NoError(t, repo.Create(ctx, m))

	fetched, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Germany", fetched.Name)
	assert.Equal(t, "DE", fetched.Region)
}

func TestMarketRepo_GetByName_CaseInsensitive(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMarketRepo(db)
	ctx := context.Background()

	m := testutil.NewTestMarket("Germany")
	require.NoError(t, repo.Create(ctx, m))

	fetched, err := repo.GetByName(ctx, "germany")
	require.NoError(t, err)
	assert.Equal(t, m.ID, fetched.ID)
}

func TestMarketRepo_Delete_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteMarketRepo(db)

	err := repo.Delete(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTribeRepo_CreateListDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTribeRepo(db)
	ctx := context.Background()

	a := testutil.NewTestTribe("Families")
	b := testutil.NewTestTribe("Students")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, repo.Delete(ctx, a.ID))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Students", list[0].Name)
}
