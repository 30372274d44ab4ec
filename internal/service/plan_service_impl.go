package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avermeer/cadence/internal/domain"
	"github.com/avermeer/cadence/internal/repository"
	"github.com/google/uuid"
)

type planService struct {
	placements repository.PlacementRepo
	markets    repository.MarketRepo
}

func NewPlanService(placements repository.PlacementRepo, markets repository.MarketRepo) PlanService {
	return &planService{placements: placements, markets: markets}
}

func (s *planService) SetPlacement(ctx context.Context, p *domain.Placement) error {
	if !domain.ValidMonth(p.Month) {
		return fmt.Errorf("month %d out of range [0,11]", p.Month)
	}
	if _, err := s.markets.GetByID(ctx, p.MarketID); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return s.placements.Upsert(ctx, p)
}

func (s *planService) GetPlacement(ctx context.Context, marketID string, month int) (*domain.Placement, error) {
	if !domain.ValidMonth(month) {
		return nil, fmt.Errorf("month %d out of range [0,11]", month)
	}
	return s.placements.Get(ctx, marketID, month)
}

func (s *planService) ClearPlacement(ctx context.Context, marketID string, month int) error {
	if !domain.ValidMonth(month) {
		return fmt.Errorf("month %d out of range [0,11]", month)
	}
	return s.placements.Clear(ctx, marketID, month)
}

func (s *planService) GetPlan(ctx context.Context, marketID string) (domain.Plan, error) {
	if _, err := s.markets.GetByID(ctx, marketID); err != nil {
		return nil, err
	}
	placements, err := s.placements.ListByMarket(ctx, marketID)
	if err != nil {
		return nil, err
	}
	plan := domain.Plan{}
	for _, p := range placements {
		plan[p.Month] = *p
	}
	return plan, nil
}

func (s *planService) CheckAsset(ctx context.Context, marketID string, month int, asset string, done bool) error {
	p, err := s.GetPlacement(ctx, marketID, month)
	if err != nil {
		return err
	}
	if p.Assets == nil {
		p.Assets = make(map[string]bool)
	}
	p.Assets[asset] = done
	p.UpdatedAt = time.Now().UTC()
	return s.placements.Upsert(ctx, p)
}
