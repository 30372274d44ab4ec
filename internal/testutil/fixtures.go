package testutil

import (
	"time"

	"github.com/avermeer/cadence/internal/domain"
	"github.com/google/uuid"
)

// Concept options
type ConceptOption func(*domain.Concept)

func WithRole(r domain.ConceptRole) ConceptOption {
	return func(c *domain.Concept) {
		c.Role = r
	}
}

func WithTags(tags ...string) ConceptOption {
	return func(c *domain.Concept) {
		c.Tags = tags
	}
}

func WithColor(color string) ConceptOption {
	return func(c *domain.Concept) {
		c.Color = color
	}
}

// NewTestConcept builds a hero concept with sensible defaults.
func NewTestConcept(name string, opts ...ConceptOption) *domain.Concept {
	now := time.Now().UTC()
	c := &domain.Concept{
		ID:        uuid.New().String(),
		Name:      name,
		Role:      domain.RoleHero,
		Color:     "#83a598",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Market options
type MarketOption func(*domain.Market)

func WithRegion(region string) MarketOption {
	return func(m *domain.Market) {
		m.Region = region
	}
}

func NewTestMarket(name string, opts ...MarketOption) *domain.Market {
	now := time.Now().UTC()
	m := &domain.Market{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func NewTestTribe(name string) *domain.Tribe {
	now := time.Now().UTC()
	return &domain.Tribe{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Placement options
type PlacementOption func(*domain.Placement)

func WithConcept(conceptID string) PlacementOption {
	return func(p *domain.Placement) {
		p.ConceptID = &conceptID
	}
}

func WithNotes(notes string) PlacementOption {
	return func(p *domain.Placement) {
		p.Notes = notes
	}
}

func WithChannels(channels ...string) PlacementOption {
	return func(p *domain.Placement) {
		p.Channels = channels
	}
}

func WithBudget(budget float64) PlacementOption {
	return func(p *domain.Placement) {
		p.Budget = &budget
	}
}

func WithTribes(tribeIDs ...string) PlacementOption {
	return func(p *domain.Placement) {
		p.TribeIDs = tribeIDs
	}
}

func WithAssets(assets map[string]bool) PlacementOption {
	return func(p *domain.Placement) {
		p.Assets = assets
	}
}

func NewTestPlacement(marketID string, month int, opts ...PlacementOption) *domain.Placement {
	now := time.Now().UTC()
	p := &domain.Placement{
		ID:        uuid.New().String(),
		MarketID:  marketID,
		Month:     month,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
