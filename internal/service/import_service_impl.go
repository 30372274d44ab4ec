package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avermeer/cadence/internal/db"
	"github.com/avermeer/cadence/internal/importer"
	"github.com/avermeer/cadence/internal/repository"
)

type importService struct {
	concepts   repository.ConceptRepo
	markets    repository.MarketRepo
	tribes     repository.TribeRepo
	placements repository.PlacementRepo
	rules      repository.RulesRepo
	uow        db.UnitOfWork
}

func NewImportService(
	concepts repository.ConceptRepo,
	markets repository.MarketRepo,
	tribes repository.TribeRepo,
	placements repository.PlacementRepo,
	rules repository.RulesRepo,
	uow db.UnitOfWork,
) ImportService {
	return &importService{
		concepts:   concepts,
		markets:    markets,
		tribes:     tribes,
		placements: placements,
		rules:      rules,
		uow:        uow,
	}
}

func (s *importService) ImportState(ctx context.Context, filePath string) (*ImportResult, error) {
	doc, err := importer.LoadStateDocument(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading state document: %w", err)
	}
	return s.ImportStateFromDocument(ctx, doc)
}

func (s *importService) ImportStateFromDocument(ctx context.Context, doc *importer.StateDocument) (*ImportResult, error) {
	if errs := importer.ValidateStateDocument(doc); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	state := importer.Convert(doc, time.Now().UTC())

	// Replace the whole planning state in one transaction so a failed
	// import never leaves a half-written mix of old and new state.
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		for _, table := range []string{"placements", "concepts", "markets", "tribes"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clearing %s: %w", table, err)
			}
		}

		concepts := repository.NewSQLiteConceptRepo(tx)
		markets := repository.NewSQLiteMarketRepo(tx)
		tribes := repository.NewSQLiteTribeRepo(tx)
		placements := repository.NewSQLitePlacementRepo(tx)
		rules := repository.NewSQLiteRulesRepo(tx)

		for _, c := range state.Concepts {
			if err := concepts.Create(ctx, c); err != nil {
				return fmt.Errorf("creating concept %q: %w", c.Name, err)
			}
		}
		for _, m := range state.Markets {
			if err := markets.Create(ctx, m); err != nil {
				return fmt.Errorf("creating market %q: %w", m.Name, err)
			}
		}
		for _, t := range state.Tribes {
			if err := tribes.Create(ctx, t); err != nil {
				return fmt.Errorf("creating tribe %q: %w", t.Name, err)
			}
		}
		for _, p := range state.Placements {
			if err := placements.Upsert(ctx, p); err != nil {
				return fmt.Errorf("creating placement (market %s, month %d): %w", p.MarketID, p.Month, err)
			}
		}
		return rules.Upsert(ctx, state.Rules)
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		ConceptCount:   len(state.Concepts),
		MarketCount:    len(state.Markets),
		TribeCount:     len(state.Tribes),
		PlacementCount: len(state.Placements),
	}, nil
}

func (s *importService) ExportState(ctx context.Context, filePath string) error {
	concepts, err := s.concepts.List(ctx)
	if err != nil {
		return err
	}
	markets, err := s.markets.List(ctx)
	if err != nil {
		return err
	}
	tribes, err := s.tribes.List(ctx)
	if err != nil {
		return err
	}
	placements, err := s.placements.ListAll(ctx)
	if err != nil {
		return err
	}
	rules, err := s.rules.Get(ctx)
	if err != nil {
		return err
	}

	doc := importer.ToDocument(&importer.ConvertedState{
		Concepts:   concepts,
		Markets:    markets,
		Tribes:     tribes,
		Placements: placements,
		Rules:      rules,
	})
	return importer.SaveStateDocument(filePath, doc)
}

// Seeding shares the import path: the demo state is just a built-in document.
type seedService struct {
	markets repository.MarketRepo
	imports ImportService
}

func NewSeedService(markets repository.MarketRepo, imports ImportService) SeedService {
	return &seedService{markets: markets, imports: imports}
}

func (s *seedService) Seed(ctx context.Context) error {
	existing, err := s.markets.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return fmt.Errorf("planning state already exists; seed only works on an empty database")
	}
	_, err = s.imports.ImportStateFromDocument(ctx, seedDocument())
	return err
}

func seedDocument() *importer.StateDocument {
	return &importer.StateDocument{
		Version: 1,
		Concepts: []importer.ConceptImport{
			{ID: "seed-joy", Name: "Everyday Joy", Role: "hero", Color: "#fe8019", Tags: []string{"brand", "evergreen"}},
			{ID: "seed-craft", Name: "Craft Stories", Role: "hero", Color: "#b8bb26", Tags: []string{"brand"}},
			{ID: "seed-deals", Name: "Seasonal Deals", Role: "support", Color: "#83a598", Tags: []string{"promo"}},
			{ID: "seed-loyalty", Name: "Loyalty Weeks", Role: "support", Color: "#d3869b"},
		},
		Markets: []importer.MarketImport{
			{ID: "seed-de", Name: "Germany", Region: "DE"},
			{ID: "seed-fr", Name: "France", Region: "FR"},
		},
		Tribes: []importer.TribeImport{
			{ID: "seed-families", Name: "Families"},
			{ID: "seed-makers", Name: "Makers"},
		},
		Plans: map[string]map[string]importer.PlacementImport{
			"seed-de": {
				"0": {ConceptID: "seed-joy", Channels: []string{"social", "retail"}},
				"1": {ConceptID: "seed-joy"},
				"3": {ConceptID: "seed-craft", TribeIDs: []string{"seed-makers"}},
				"4": {ConceptID: "seed-deals"},
				"6": {ConceptID: "seed-joy"},
				"9": {ConceptID: "seed-craft"},
			},
			"seed-fr": {
				"0": {ConceptID: "seed-joy"},
				"5": {ConceptID: "seed-deals"},
			},
		},
	}
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
