package service

import (
	"context"

	"github.com/avermeer/cadence/internal/cohesion"
	"github.com/avermeer/cadence/internal/domain"
	"github.com/avermeer/cadence/internal/repository"
)

type scoreService struct {
	concepts   repository.ConceptRepo
	markets    repository.MarketRepo
	placements repository.PlacementRepo
	rules      repository.RulesRepo
}

func NewScoreService(
	concepts repository.ConceptRepo,
	markets repository.MarketRepo,
	placements repository.PlacementRepo,
	rules repository.RulesRepo,
) ScoreService {
	return &scoreService{
		concepts:   concepts,
		markets:    markets,
		placements: placements,
		rules:      rules,
	}
}

func (s *scoreService) Snapshot(ctx context.Context) (*cohesion.State, error) {
	concepts, err := s.concepts.List(ctx)
	if err != nil {
		return nil, err
	}
	markets, err := s.markets.List(ctx)
	if err != nil {
		return nil, err
	}
	placements, err := s.placements.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	rules, err := s.rules.Get(ctx)
	if err != nil {
		return nil, err
	}

	state := &cohesion.State{
		Concepts: make([]domain.Concept, 0, len(concepts)),
		Markets:  make([]domain.Market, 0, len(markets)),
		Plans:    make(map[string]domain.Plan, len(markets)),
		Rules:    rules,
	}
	for _, c := range concepts {
		state.Concepts = append(state.Concepts, *c)
	}
	for _, m := range markets {
		state.Markets = append(state.Markets, *m)
	}
	for _, p := range placements {
		plan, ok := state.Plans[p.MarketID]
		if !ok {
			plan = domain.Plan{}
			state.Plans[p.MarketID] = plan
		}
		plan[p.Month] = *p
	}
	return state, nil
}

func (s *scoreService) Score(ctx context.Context) (*cohesion.Result, error) {
	state, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	result := cohesion.Score(*state)
	return &result, nil
}
