package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avermeer/cadence/internal/db"
	"github.com/avermeer/cadence/internal/domain"
)

// SQLiteRulesRepo stores the single global cohesion rules row. When no row
// has been written yet, Get falls back to domain.DefaultCohesionRules.
type SQLiteRulesRepo struct {
	db db.DBTX
}

func NewSQLiteRulesRepo(conn db.DBTX) *SQLiteRulesRepo {
	return &SQLiteRulesRepo{db: conn}
}

func (r *SQLiteRulesRepo) Get(ctx context.Context) (domain.CohesionRules, error) {
	query := `SELECT max_hero_concepts_per_market, min_repeats_per_hero,
		min_months_planned, max_total_concepts_per_market
		FROM cohesion_rules WHERE id = 1`
	var rules domain.CohesionRules
	err := r.db.QueryRowContext(ctx, query).Scan(
		&rules.MaxHeroConceptsPerMarket,
		&rules.MinRepeatsPerHero,
		&rules.MinMonthsPlanned,
		&rules.MaxTotalConceptsPerMarket,
	)
	if err == sql.ErrNoRows {
		return domain.DefaultCohesionRules(), nil
	}
	if err != nil {
		return domain.CohesionRules{}, fmt.Errorf("loading cohesion rules: %w", err)
	}
	return rules, nil
}

func (r *SQLiteRulesRepo) Upsert(ctx context.Context, rules domain.CohesionRules) error {
	query := `INSERT INTO cohesion_rules (id, max_hero_concepts_per_market,
			min_repeats_per_hero, min_months_planned, max_total_concepts_per_market, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			max_hero_concepts_per_market  = excluded.max_hero_concepts_per_market,
			min_repeats_per_hero          = excluded.min_repeats_per_hero,
			min_months_planned            = excluded.min_months_planned,
			max_total_concepts_per_market = excluded.max_total_concepts_per_market,
			updated_at                    = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		rules.MaxHeroConceptsPerMarket,
		rules.MinRepeatsPerHero,
		rules.MinMonthsPlanned,
		rules.MaxTotalConceptsPerMarket,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting cohesion rules: %w", err)
	}
	return nil
}
