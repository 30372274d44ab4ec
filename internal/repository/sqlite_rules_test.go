package repository

import (
	"context"
	"testing"

	"github.com/avermeer/cadence/internal/domain"
	"github.com/avermeer/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesRepo_DefaultsWhenUnset(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRulesRepo(db)

	rules, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCohesionRules(), rules)
}

func TestRulesRepo_UpsertRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRulesRepo(db)
	ctx := context.Background()

	want := domain.CohesionRules{
		MaxHeroConceptsPerMarket:  2,
		MinRepeatsPerHero:         4,
		MinMonthsPlanned:          8,
		MaxTotalConceptsPerMarket: 6,
	}
	require.NoError(t, repo.Upsert(ctx, want))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRulesRepo_UpsertOverwritesSingleton(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteRulesRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, domain.DefaultCohesionRules()))
	updated := domain.CohesionRules{MaxHeroConceptsPerMarket: 1, MinRepeatsPerHero: 1, MinMonthsPlanned: 1, MaxTotalConceptsPerMarket: 1}
	require.NoError(t, repo.Upsert(ctx, updated))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM cohesion_rules`).Scan(&n))
	assert.Equal(t, 1, n)
}
