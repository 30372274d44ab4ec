package formatter

import (
	"testing"

	"github.com/avermeer/cadence/internal/cohesion"
	"github.com/avermeer/cadence/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatScore_TableAndIssues(t *testing.T) {
	markets := []*domain.Market{
		{ID: "m1", Name: "Germany", Region: "DE"},
		{ID: "m2", Name: "France", Region: "FR"},
	}
	result := &cohesion.Result{
		Overall: 78,
		ByMarket: map[string]cohesion.MarketResult{
			"m1": {
				Score: 100,
				Stats: cohesion.MarketStats{MonthsPlanned: 12, HeroConceptsUsed: 2, TotalConceptsUsed: 3},
			},
			"m2": {
				Score:  56,
				Stats:  cohesion.MarketStats{MonthsPlanned: 1, HeroConceptsUsed: 1, TotalConceptsUsed: 1},
				Issues: []string{"Only 1/12 months planned (min 10)."},
			},
		},
	}

	out := FormatScore(result, markets)

	assert.Contains(t, out, "Germany (DE)")
	assert.Contains(t, out, "France (FR)")
	assert.Contains(t, out, "100/100")
	assert.Contains(t, out, "56/100")
	assert.Contains(t, out, "Only 1/12 months planned (min 10).")
	assert.Contains(t, out, "78/100")
}

func TestFormatScore_SkipsMarketsWithoutResult(t *testing.T) {
	markets := []*domain.Market{{ID: "mx", Name: "Nordics"}}
	result := &cohesion.Result{Overall: 0, ByMarket: map[string]cohesion.MarketResult{}}

	out := FormatScore(result, markets)
	assert.NotContains(t, out, "Nordics")
}

func TestFormatMarketScore_CleanPlan(t *testing.T) {
	mr := cohesion.MarketResult{
		Score: 100,
		Stats: cohesion.MarketStats{MonthsPlanned: 12, HeroConceptsUsed: 2, TotalConceptsUsed: 4},
	}
	out := FormatMarketScore(mr, &domain.Market{ID: "m1", Name: "Germany", Region: "DE"})

	assert.Contains(t, out, "Germany (DE)")
	assert.Contains(t, out, "No cohesion issues.")
}

func TestRatingIndicator(t *testing.T) {
	assert.Contains(t, RatingIndicator(domain.RatingGreen), "GREEN")
	assert.Contains(t, RatingIndicator(domain.RatingAmber), "AMBER")
	assert.Contains(t, RatingIndicator(domain.RatingRed), "RED")
}
