package service

import (
	"context"
	"fmt"

	"github.com/avermeer/cadence/internal/domain"
	"github.com/avermeer/cadence/internal/repository"
)

type rulesService struct {
	rules repository.RulesRepo
}

func NewRulesService(rules repository.RulesRepo) RulesService {
	return &rulesService{rules: rules}
}

func (s *rulesService) Get(ctx context.Context) (domain.CohesionRules, error) {
	return s.rules.Get(ctx)
}

func (s *rulesService) Update(ctx context.Context, rules domain.CohesionRules) error {
	if rules.MaxHeroConceptsPerMarket < 0 || rules.MinRepeatsPerHero < 0 ||
		rules.MinMonthsPlanned < 0 || rules.MaxTotalConceptsPerMarket < 0 {
		return fmt.Errorf("cohesion thresholds must not be negative")
	}
	if rules.MinMonthsPlanned > domain.MonthsPerYear {
		return fmt.Errorf("min months planned must not exceed %d", domain.MonthsPerYear)
	}
	return s.rules.Upsert(ctx, rules)
}
