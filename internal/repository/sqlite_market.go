package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avermeer/cadence/internal/db"
	"github.com/avermeer/cadence/internal/domain"
)

// SQLiteMarketRepo implements MarketRepo using a SQLite database.
type SQLiteMarketRepo struct {
	db db.DBTX
}

// NewSQLiteMarketRepo creates a new SQLiteMarketRepo.
func NewSQLiteMarketRepo(conn db.DBTX) *SQLiteMarketRepo {
	return &SQLiteMarketRepo{db: conn}
}

func (r *SQLiteMarketRepo) Create(ctx context.Context, m *domain.Market) error {
	query := `INSERT INTO markets (id, name, region, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.Name,
		m.Region,
		m.CreatedAt.Format(time.RFC3339),
		m.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting market: %w", err)
	}
	return nil
}

func (r *SQLiteMarketRepo) GetByID(ctx context.Context, id string) (*domain.Market, error) {
	query := `SELECT id, name, region, created_at, updated_at FROM markets WHERE id = ?`
	return scanMarket(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteMarketRepo) GetByName(ctx context.Context, name string) (*domain.Market, error) {
	query := `SELECT id, name, region, created_at, updated_at
		FROM markets WHERE LOWER(name) = LOWER(?)`
	return scanMarket(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteMarketRepo) List(ctx context.Context) ([]*domain.Market, error) {
	query := `SELECT id, name, region, created_at, updated_at FROM markets ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing markets: %w", err)
	}
	defer rows.Close()

	var markets []*domain.Market
	for rows.Next() {
		m, err := scanMarket(rows)
		if err != nil {
			return nil, err
		}
		markets = append(markets, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating markets: %w", err)
	}
	return markets, nil
}

func (r *SQLiteMarketRepo) Update(ctx context.Context, m *domain.Market) error {
	query := `UPDATE markets SET name = ?, region = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, m.Name, m.Region, m.UpdatedAt.Format(time.RFC3339), m.ID)
	if err != nil {
		return fmt.Errorf("updating market: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("market not found")
	}
	return nil
}

func (r *SQLiteMarketRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM markets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting market: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("market not found")
	}
	return nil
}

func scanMarket(row rowScanner) (*domain.Market, error) {
	var m domain.Market
	var createdAt, updatedAt string
	err := row.Scan(&m.ID, &m.Name, &m.Region, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("market not found")
		}
		return nil, fmt.Errorf("scanning market: %w", err)
	}
	m.CreatedAt = parseTime(createdAt)
	m.UpdatedAt = parseTime(updatedAt)
	return &m, nil
}
