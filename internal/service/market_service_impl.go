package service

import (
	"context"
	"time"

	"github.com/avermeer/cadence/internal/domain"
	"github.com/avermeer/cadence/internal/repository"
	"github.com/google/uuid"
)

type marketService struct {
	markets repository.MarketRepo
}

func NewMarketService(markets repository.MarketRepo) MarketService {
	return &marketService{markets: markets}
}

func (s *marketService) Create(ctx context.Context, m *domain.Market) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if err := m.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	return s.markets.Create(ctx, m)
}

func (s *marketService) GetByID(ctx context.Context, id string) (*domain.Market, error) {
	return s.markets.GetByID(ctx, id)
}

func (s *marketService) List(ctx context.Context) ([]*domain.Market, error) {
	return s.markets.List(ctx)
}

func (s *marketService) Update(ctx context.Context, m *domain.Market) error {
	if err := m.Validate(); err != nil {
		return err
	}
	m.UpdatedAt = time.Now().UTC()
	return s.markets.Update(ctx, m)
}

// Delete removes the market; its placements cascade away with it.
func (s *marketService) Delete(ctx context.Context, id string) error {
	return s.markets.Delete(ctx, id)
}

type tribeService struct {
	tribes repository.TribeRepo
}

func NewTribeService(tribes repository.TribeRepo) TribeService {
	return &tribeService{tribes: tribes}
}

func (s *tribeService) Create(ctx context.Context, t *domain.Tribe) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if err := t.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tribes.Create(ctx, t)
}

func (s *tribeService) List(ctx context.Context) ([]*domain.Tribe, error) {
	return s.tribes.List(ctx)
}

func (s *tribeService) Delete(ctx context.Context, id string) error {
	return s.tribes.Delete(ctx, id)
}
