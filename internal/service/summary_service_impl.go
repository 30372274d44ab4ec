package service

import (
	"context"

	"github.com/avermeer/cadence/internal/cohesion"
	"github.com/avermeer/cadence/internal/domain"
)

type summaryService struct {
	scores ScoreService
}

func NewSummaryService(scores ScoreService) SummaryService {
	return &summaryService{scores: scores}
}

// BuildSummary projects the scored plan into the executive one-pager:
// per-market score, traffic light, hero lineup, asset readiness, and budget.
// It derives everything from the engine result plus the stored plan; no
// scoring logic of its own.
func (s *summaryService) BuildSummary(ctx context.Context) (*Summary, error) {
	state, err := s.scores.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	result := cohesion.Score(*state)

	catalog := make(map[string]domain.Concept, len(state.Concepts))
	for _, c := range state.Concepts {
		catalog[c.ID] = c
	}

	summary := &Summary{
		Overall:       result.Overall,
		OverallRating: domain.RatingForScore(result.Overall),
		Rules:         state.Rules,
	}

	for _, m := range state.Markets {
		ms := MarketSummary{
			Market: m,
			Result: result.ByMarket[m.ID],
		}
		ms.Rating = domain.RatingForScore(ms.Result.Score)

		plan := state.Plans[m.ID]
		seen := make(map[string]bool)
		assetTotal, assetDone := 0, 0
		for month := 0; month < domain.MonthsPerYear; month++ {
			p, ok := plan[month]
			if !ok {
				continue
			}
			for _, done := range p.Assets {
				assetTotal++
				if done {
					assetDone++
				}
			}
			if p.Budget != nil {
				ms.TotalBudget += *p.Budget
			}
			if !p.Planned() || seen[*p.ConceptID] {
				continue
			}
			seen[*p.ConceptID] = true
			if c, ok := catalog[*p.ConceptID]; ok && c.IsHero() {
				ms.HeroLineup = append(ms.HeroLineup, c.Name)
			}
		}
		if assetTotal > 0 {
			ms.AssetReadiness = float64(assetDone) / float64(assetTotal) * 100
		}

		summary.Markets = append(summary.Markets, ms)
	}

	return summary, nil
}
