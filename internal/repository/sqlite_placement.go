package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avermeer/cadence/internal/db"
	"github.com/avermeer/cadence/internal/domain"
)

// SQLitePlacementRepo implements PlacementRepo using a SQLite database.
// The (market_id, month) pair is unique; Upsert replaces an existing slot.
type SQLitePlacementRepo struct {
	db db.DBTX
}

func NewSQLitePlacementRepo(conn db.DBTX) *SQLitePlacementRepo {
	return &SQLitePlacementRepo{db: conn}
}

const placementColumns = `id, market_id, month, concept_id, notes, channels, budget, tribe_ids, assets, created_at, updated_at`

func (r *SQLitePlacementRepo) Upsert(ctx context.Context, p *domain.Placement) error {
	channels, err := encodeStrings(p.Channels)
	if err != nil {
		return err
	}
	tribes, err := encodeStrings(p.TribeIDs)
	if err != nil {
		return err
	}
	assets, err := encodeAssets(p.Assets)
	if err != nil {
		return err
	}

	query := `INSERT INTO placements (` + placementColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(market_id, month) DO UPDATE SET
			concept_id = excluded.concept_id,
			notes      = excluded.notes,
			channels   = excluded.channels,
			budget     = excluded.budget,
			tribe_ids  = excluded.tribe_ids,
			assets     = excluded.assets,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.MarketID,
		p.Month,
		nullableStrToValue(p.ConceptID),
		p.Notes,
		channels,
		nullableFloatToValue(p.Budget),
		tribes,
		assets,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting placement: %w", err)
	}
	return nil
}

func (r *SQLitePlacementRepo) Get(ctx context.Context, marketID string, month int) (*domain.Placement, error) {
	query := `SELECT ` + placementColumns + ` FROM placements WHERE market_id = ? AND month = ?`
	return scanPlacement(r.db.QueryRowContext(ctx, query, marketID, month))
}

func (r *SQLitePlacementRepo) ListByMarket(ctx context.Context, marketID string) ([]*domain.Placement, error) {
	query := `SELECT ` + placementColumns + ` FROM placements WHERE market_id = ? ORDER BY month`
	rows, err := r.db.QueryContext(ctx, query, marketID)
	if err != nil {
		return nil, fmt.Errorf("listing placements: %w", err)
	}
	defer rows.Close()
	return collectPlacements(rows)
}

func (r *SQLitePlacementRepo) ListAll(ctx context.Context) ([]*domain.Placement, error) {
	query := `SELECT ` + placementColumns + ` FROM placements ORDER BY market_id, month`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing placements: %w", err)
	}
	defer rows.Close()
	return collectPlacements(rows)
}

func (r *SQLitePlacementRepo) Clear(ctx context.Context, marketID string, month int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM placements WHERE market_id = ? AND month = ?`, marketID, month)
	if err != nil {
		return fmt.Errorf("clearing placement: %w", err)
	}
	return nil
}

func (r *SQLitePlacementRepo) DeleteByMarket(ctx context.Context, marketID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM placements WHERE market_id = ?`, marketID)
	if err != nil {
		return fmt.Errorf("deleting placements: %w", err)
	}
	return nil
}

func collectPlacements(rows *sql.Rows) ([]*domain.Placement, error) {
	var placements []*domain.Placement
	for rows.Next() {
		p, err := scanPlacement(rows)
		if err != nil {
			return nil, err
		}
		placements = append(placements, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating placements: %w", err)
	}
	return placements, nil
}

func scanPlacement(row rowScanner) (*domain.Placement, error) {
	var p domain.Placement
	var conceptID sql.NullString
	var budget sql.NullFloat64
	var channels, tribes, assets, createdAt, updatedAt string
	err := row.Scan(&p.ID, &p.MarketID, &p.Month, &conceptID, &p.Notes,
		&channels, &budget, &tribes, &assets, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("placement not found")
		}
		return nil, fmt.Errorf("scanning placement: %w", err)
	}
	p.ConceptID = nullableStrFromColumn(conceptID)
	p.Budget = nullableFloatFromColumn(budget)
	if p.Channels, err = decodeStrings(channels); err != nil {
		return nil, err
	}
	if p.TribeIDs, err = decodeStrings(tribes); err != nil {
		return nil, err
	}
	if p.Assets, err = decodeAssets(assets); err != nil {
		return nil, err
	}
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}
