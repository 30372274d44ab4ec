package service

import (
	"context"

	"github.com/avermeer/cadence/internal/cohesion"
	"github.com/avermeer/cadence/internal/domain"
	"github.com/avermeer/cadence/internal/importer"
)

type ConceptService interface {
	Create(ctx context.Context, c *domain.Concept) error
	GetByID(ctx context.Context, id string) (*domain.Concept, error)
	List(ctx context.Context) ([]*domain.Concept, error)
	Update(ctx context.Context, c *domain.Concept) error
	Delete(ctx context.Context, id string) error
}

type MarketService interface {
	Create(ctx context.Context, m *domain.Market) error
	GetByID(ctx context.Context, id string) (*domain.Market, error)
	List(ctx context.Context) ([]*domain.Market, error)
	Update(ctx context.Context, m *domain.Market) error
	Delete(ctx context.Context, id string) error
}

type TribeService interface {
	Create(ctx context.Context, t *domain.Tribe) error
	List(ctx context.Context) ([]*domain.Tribe, error)
	Delete(ctx context.Context, id string) error
}

type PlanService interface {
	// SetPlacement assigns or updates a (market, month) slot; zero-valued
	// optional fields of an existing slot are preserved only if the caller
	// fetched and re-submitted them.
	SetPlacement(ctx context.Context, p *domain.Placement) error
	GetPlacement(ctx context.Context, marketID string, month int) (*domain.Placement, error)
	ClearPlacement(ctx context.Context, marketID string, month int) error
	GetPlan(ctx context.Context, marketID string) (domain.Plan, error)
	// CheckAsset flips one asset checklist entry on a planned slot.
	CheckAsset(ctx context.Context, marketID string, month int, asset string, done bool) error
}

type RulesService interface {
	Get(ctx context.Context) (domain.CohesionRules, error)
	Update(ctx context.Context, rules domain.CohesionRules) error
}

type ScoreService interface {
	// Snapshot assembles the full immutable planning state.
	Snapshot(ctx context.Context) (*cohesion.State, error)
	// Score snapshots the state and runs the cohesion engine over it.
	Score(ctx context.Context) (*cohesion.Result, error)
}

// MarketSummary is one market's line in the executive summary.
type MarketSummary struct {
	Market         domain.Market
	Result         cohesion.MarketResult
	Rating         domain.Rating
	HeroLineup     []string
	AssetReadiness float64
	TotalBudget    float64
}

// Summary is the one-page executive view over the scored plan.
type Summary struct {
	Overall       int
	OverallRating domain.Rating
	Rules         domain.CohesionRules
	Markets       []MarketSummary
}

type SummaryService interface {
	BuildSummary(ctx context.Context) (*Summary, error)
}

// ImportResult holds the outcome of a state import.
type ImportResult struct {
	ConceptCount   int
	MarketCount    int
	TribeCount     int
	PlacementCount int
}

type ImportService interface {
	// ImportState replaces the entire planning state from a JSON document
	// file. The replacement is transactional: on any failure the previous
	// state is kept.
	ImportState(ctx context.Context, filePath string) (*ImportResult, error)
	ImportStateFromDocument(ctx context.Context, doc *importer.StateDocument) (*ImportResult, error)
	// ExportState writes the current planning state to a JSON document file.
	ExportState(ctx context.Context, filePath string) error
}

type SeedService interface {
	// Seed populates an empty database with the demo catalog, markets, and
	// default rules. Returns an error if state already exists.
	Seed(ctx context.Context) error
}
