package service

import (
	"context"
	"testing"

	"github.com/avermeer/cadence/internal/domain"
	"github.com/avermeer/cadence/internal/repository"
	"github.com/avermeer/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRulesService(t *testing.T) RulesService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewRulesService(repository.NewSQLiteRulesRepo(db))
}

func TestRulesService_DefaultsOnEmptyDatabase(t *testing.T) {
	svc := newRulesService(t)

	rules, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCohesionRules(), rules)
}

func TestRulesService_UpdateAndReadBack(t *testing.T) {
	svc := newRulesService(t)
	ctx := context.Background()

	want := domain.CohesionRules{
		MaxHeroConceptsPerMarket:  2,
		MinRepeatsPerHero:         5,
		MinMonthsPlanned:          8,
		MaxTotalConceptsPerMarket: 6,
	}
	require.NoError(t, svc.Update(ctx, want))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRulesService_RejectsInvalidThresholds(t *testing.T) {
	svc := newRulesService(t)
	ctx := context.Background()

	bad := domain.DefaultCohesionRules()
	bad.MinRepeatsPerHero = -1
	assert.Error(t, svc.Update(ctx, bad))

	bad = domain.DefaultCohesionRules()
	bad.MinMonthsPlanned = 13
	assert.Error(t, svc.Update(ctx, bad))
}
