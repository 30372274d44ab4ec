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

func newPlanFixture(t *testing.T) (PlanService, MarketService, ConceptService) {
	t.Helper()
	db := testutil.NewTestDB(t)
	placements := repository.NewSQLitePlacementRepo(db)
	markets := repository.NewSQLiteMarketRepo(db)
	concepts := repository.NewSQLiteConceptRepo(db)
	return NewPlanService(placements, markets), NewMarketService(markets), NewConceptService(concepts)
}

func TestPlanService_SetAndGetPlacement(t *testing.T) {
	plans, markets, concepts := newPlanFixture(t)
	ctx := context.Background()

	m := &domain.Market{Name: "Germany", Region: "DE"}
	require.NoError(t, markets.Create(ctx, m))
	c := &domain.Concept{Name: "Joy", Role: domain.RoleHero}
	require.NoError(t, concepts.Create(ctx, c))

	p := &domain.Placement{MarketID: m.ID, Month: 4, ConceptID: &c.ID, Notes: "spring push"}
	require.NoError(t, plans.SetPlacement(ctx, p))
	assert.NotEmpty(t, p.ID, "id should be generated")

	fetched, err := plans.GetPlacement(ctx, m.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, "spring push", fetched.Notes)
	require.NotNil(t, fetched.ConceptID)
	assert.Equal(t, c.ID, *fetched.ConceptID)
}

func TestPlanService_MonthOutOfRange(t *testing.T) {
	plans, markets, _ := newPlanFixture(t)
	ctx := context.Background()

	m := &domain.Market{Name: "Germany"}
	require.NoError(t, markets.Create(ctx, m))

	err := plans.SetPlacement(ctx, &domain.Placement{MarketID: m.ID, Month: 12})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")

	_, err = plans.GetPlacement(ctx, m.ID, -1)
	assert.Error(t, err)
}

func TestPlanService_UnknownMarket(t *testing.T) {
	plans, _, _ := newPlanFixture(t)

	err := plans.SetPlacement(context.Background(), &domain.Placement{MarketID: "ghost", Month: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPlanService_ClearPlacement(t *testing.T) {
	plans, markets, _ := newPlanFixture(t)
	ctx := context.Background()

	m := &domain.Market{Name: "Germany"}
	require.NoError(t, markets.Create(ctx, m))
	require.NoError(t, plans.SetPlacement(ctx, &domain.Placement{MarketID: m.ID, Month: 2, Notes: "x"}))

	require.NoError(t, plans.ClearPlacement(ctx, m.ID, 2))
	_, err := plans.GetPlacement(ctx, m.ID, 2)
	assert.Error(t, err)
}

func TestPlanService_GetPlan_SparseMapping(t *testing.T) {
	plans, markets, concepts := newPlanFixture(t)
	ctx := context.Background()

	m := &domain.Market{Name: "Germany"}
	require.NoError(t, markets.Create(ctx, m))
	c := &domain.Concept{Name: "Joy", Role: domain.RoleHero}
	require.NoError(t, concepts.Create(ctx, c))

	for _, month := range []int{0, 5, 11} {
		require.NoError(t, plans.SetPlacement(ctx, &domain.Placement{MarketID: m.ID, Month: month, ConceptID: &c.ID}))
	}

	plan, err := plans.GetPlan(ctx, m.ID)
	require.NoError(t, err)
	assert.Len(t, plan, 3)
	_, hasJune := plan[5]
	_, hasJuly := plan[6]
	assert.True(t, hasJune)
	assert.False(t, hasJuly)
}

func TestPlanService_CheckAsset(t *testing.T) {
	plans, markets, _ := newPlanFixture(t)
	ctx := context.Background()

	m := &domain.Market{Name: "Germany"}
	require.NoError(t, markets.Create(ctx, m))
	require.NoError(t, plans.SetPlacement(ctx, &domain.Placement{
		MarketID: m.ID, Month: 3,
		Assets: map[string]bool{"key visual": false},
	}))

	require.NoError(t, plans.CheckAsset(ctx, m.ID, 3, "key visual", true))
	require.NoError(t, plans.CheckAsset(ctx, m.ID, 3, "copy deck", false))

	p, err := plans.GetPlacement(ctx, m.ID, 3)
	require.NoError(t, err)
	assert.True(t, p.Assets["key visual"])
	assert.False(t, p.Assets["copy deck"])
	assert.InDelta(t, 50.0, p.AssetReadiness(), 0.001)
}
