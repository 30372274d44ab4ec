package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avermeer/cadence/internal/db"
	"github.com/avermeer/cadence/internal/domain"
)

// SQLiteTribeRepo implements TribeRepo using a SQLite database.
type SQLiteTribeRepo struct {
	db db.DBTX
}

func NewSQLiteTribeRepo(conn db.DBTX) *SQLiteTribeRepo {
	return &SQLiteTribeRepo{db: conn}
}

func (r *SQLiteTribeRepo) Create(ctx context.Context, t *domain.Tribe) error {
	query := `INSERT INTO tribes (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting tribe: %w", err)
	}
	return nil
}

func (r *SQLiteTribeRepo) GetByID(ctx context.Context, id string) (*domain.Tribe, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, created_at, updated_at FROM tribes WHERE id = ?`, id)
	var t domain.Tribe
	var createdAt, updatedAt string
	if err := row.Scan(&t.ID, &t.Name, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("tribe not found")
		}
		return nil, fmt.Errorf("scanning tribe: %w", err)
	}
	t.CreatedAt = parseTime(createdAt)
	t.UpdatedAt = parseTime(updatedAt)
	return &t, nil
}

func (r *SQLiteTribeRepo) List(ctx context.Context) ([]*domain.Tribe, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at, updated_at FROM tribes ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing tribes: %w", err)
	}
	defer rows.Close()

	var tribes []*domain.Tribe
	for rows.Next() {
		var t domain.Tribe
		var createdAt, updatedAt string
		if err := rows.Scan(&t.ID, &t.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning tribe: %w", err)
		}
		t.CreatedAt = parseTime(createdAt)
		t.UpdatedAt = parseTime(updatedAt)
		tribes = append(tribes, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tribes: %w", err)
	}
	return tribes, nil
}

func (r *SQLiteTribeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tribes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting tribe: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("tribe not found")
	}
	return nil
}
