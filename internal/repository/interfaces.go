package repository

import (
	"context"

	"github.com/avermeer/cadence/internal/domain"
)

type ConceptRepo interface {
	Create(ctx context.Context, c *domain.Concept) error
	GetByID(ctx context.Context, id string) (*domain.Concept, error)
	List(ctx context.Context) ([]*domain.Concept, error)
	Update(ctx context.Context, c *domain.Concept) error
	Delete(ctx context.Context, id string) error
}

type MarketRepo interface {
	Create(ctx context.Context, m *domain.Market) error
	GetByID(ctx context.Context, id string) (*domain.Market, error)
	GetByName(ctx context.Context, name string) (*domain.Market, error)
	List(ctx context.Context) ([]*domain.Market, error)
	Update(ctx context.Context, m *domain.Market) error
	Delete(ctx context.Context, id string) error
}

type TribeRepo interface {
	Create(ctx context.Context, t *domain.Tribe) error
	GetByID(ctx context.Context, id string) (*domain.Tribe, error)
	List(ctx context.Context) ([]*domain.Tribe, error)
	Delete(ctx context.Context, id string) error
}

type PlacementRepo interface {
	// Upsert inserts or replaces the placement for its (market, month) slot.
	Upsert(ctx context.Context, p *domain.Placement) error
	Get(ctx context.Context, marketID string, month int) (*domain.Placement, error)
	ListByMarket(ctx context.Context, marketID string) ([]*domain.Placement, error)
	ListAll(ctx context.Context) ([]*domain.Placement, error)
	Clear(ctx context.Context, marketID string, month int) error
	DeleteByMarket(ctx context.Context, marketID string) error
}

type RulesRepo interface {
	// Get returns the stored rules, or the documented defaults when no
	// rules row exists yet.
	Get(ctx context.Context) (domain.CohesionRules, error)
	Upsert(ctx context.Context, r domain.CohesionRules) error
}
