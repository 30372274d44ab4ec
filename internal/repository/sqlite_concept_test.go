package repository

import (
	"context"
	"testing"

	"github.com/avermeer/cadence/internal/domain"
	"github.com/avermeer/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConceptRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConceptRepo(db)
	ctx := context.Background()

	c := testutil.NewTestConcept("Summer Stories", testutil.WithTags("seasonal", "family"))
	require.NoError(t, repo.Create(ctx, c))

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, fetched.ID)
	assert.Equal(t, "Summer Stories", fetched.Name)
	assert.Equal(t, domain.RoleHero, fetched.Role)
	assert.Equal(t, []string{"seasonal", "family"}, fetched.Tags)
	assert.Equal(t, "#83a598", fetched.Color)
}

func TestConceptRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConceptRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestConceptRepo_List_OrderedByCreation(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConceptRepo(db)
	ctx := context.Background()

	a := testutil.NewTestConcept("A")
	b := testutil.NewTestConcept("B", testutil.WithRole(domain.RoleSupport))
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestConceptRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConceptRepo(db)
	ctx := context.Background()

	c := testutil.NewTestConcept("Draft")
	require.NoError(t, repo.Create(ctx, c))

	c.Name = "Final"
	c.Role = domain.RoleSupport
	c.Tags = []string{"evergreen"}
	require.NoError(t, repo.Update(ctx, c))

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", fetched.Name)
	assert.Equal(t, domain.RoleSupport, fetched.Role)
	assert.Equal(t, []string{"evergreen"}, fetched.Tags)
}

func TestConceptRepo_Update_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConceptRepo(db)

	c := testutil.NewTestConcept("Ghost")
	err := repo.Update(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestConceptRepo_Delete_LeavesPlacementsDangling(t *testing.T) {
	db := testutil.NewTestDB(t)
	concepts := NewSQLiteConceptRepo(db)
	markets := NewSQLiteMarketRepo(db)
	placements := NewSQLitePlacementRepo(db)
	ctx := context.Background()

	c := testutil.NewTestConcept("Joy")
	m := testutil.NewTestMarket("Germany")
	require.NoError(t, concepts.Create(ctx, c))
	require.NoError(t, markets.Create(ctx, m))
	require.NoError(t, placements.Upsert(ctx, testutil.NewTestPlacement(m.ID, 0, testutil.WithConcept(c.ID))))

	require.NoError(t, concepts.Delete(ctx, c.ID))

	// The placement survives with its now-dangling reference.
	p, err := placements.Get(ctx, m.ID, 0)
	require.NoError(t, err)
	require.NotNil(t, p.ConceptID)
	assert.Equal(t, c.ID, *p.ConceptID)
}

func TestConceptRepo_EmptyTagsRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConceptRepo(db)
	ctx := context.Background()

	c := testutil.NewTestConcept("Plain")
	c.Tags = nil
	require.NoError(t, repo.Create(ctx, c))

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.Tags)
}
