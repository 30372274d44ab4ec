package service

import (
	"context"
	"time"

	"github.com/avermeer/cadence/internal/domain"
	"github.com/avermeer/cadence/internal/repository"
	"github.com/google/uuid"
)

type conceptService struct {
	concepts repository.ConceptRepo
}

func NewConceptService(concepts repository.ConceptRepo) ConceptService {
	return &conceptService{concepts: concepts}
}

func (s *conceptService) Create(ctx context.Context, c *domain.Concept) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Role == "" {
		c.Role = domain.RoleSupport
	}
	if err := c.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.concepts.Create(ctx, c)
}

func (s *conceptService) GetByID(ctx context.Context, id string) (*domain.Concept, error) {
	return s.concepts.GetByID(ctx, id)
}

func (s *conceptService) List(ctx context.Context) ([]*domain.Concept, error) {
	return s.concepts.List(ctx)
}

func (s *conceptService) Update(ctx context.Context, c *domain.Concept) error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	return s.concepts.Update(ctx, c)
}

// Delete removes the concept from the catalog. Placements referencing it are
// left in place; their references dangle and the scoring engine stops
// counting them as heroes.
func (s *conceptService) Delete(ctx context.Context, id string) error {
	return s.concepts.Delete(ctx, id)
}
