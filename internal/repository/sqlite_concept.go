package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avermeer/cadence/internal/db"
	"github.com/avermeer/cadence/internal/domain"
)

// SQLiteConceptRepo implements ConceptRepo using a SQLite database.
type SQLiteConceptRepo struct {
	db db.DBTX
}

// NewSQLiteConceptRepo creates a new SQLiteConceptRepo.
func NewSQLiteConceptRepo(conn db.DBTX) *SQLiteConceptRepo {
	return &SQLiteConceptRepo{db: conn}
}

func (r *SQLiteConceptRepo) Create(ctx context.Context, c *domain.Concept) error {
	tags, err := encodeStrings(c.Tags)
	if err != nil {
		return err
	}
	query := `INSERT INTO concepts (id, name, role, tags, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		string(c.Role),
		tags,
		c.Color,
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting concept: %w", err)
	}
	return nil
}

func (r *SQLiteConceptRepo) GetByID(ctx context.Context, id string) (*domain.Concept, error) {
	query := `SELECT id, name, role, tags, color, created_at, updated_at
		FROM concepts WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanConcept(row)
}

func (r *SQLiteConceptRepo) List(ctx context.Context) ([]*domain.Concept, error) {
	query := `SELECT id, name, role, tags, color, created_at, updated_at
		FROM concepts ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing concepts: %w", err)
	}
	defer rows.Close()

	var concepts []*domain.Concept
	for rows.Next() {
		c, err := scanConcept(rows)
		if err != nil {
			return nil, err
		}
		concepts = append(concepts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating concepts: %w", err)
	}
	return concepts, nil
}

func (r *SQLiteConceptRepo) Update(ctx context.Context, c *domain.Concept) error {
	tags, err := encodeStrings(c.Tags)
	if err != nil {
		return err
	}
	query := `UPDATE concepts SET name = ?, role = ?, tags = ?, color = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.Name,
		string(c.Role),
		tags,
		c.Color,
		c.UpdatedAt.Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating concept: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("concept not found")
	}
	return nil
}

func (r *SQLiteConceptRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM concepts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting concept: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("concept not found")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConcept(row rowScanner) (*domain.Concept, error) {
	var c domain.Concept
	var role, tags, createdAt, updatedAt string
	err := row.Scan(&c.ID, &c.Name, &role, &tags, &c.Color, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("concept not found")
		}
		return nil, fmt.Errorf("scanning concept: %w", err)
	}
	c.Role = domain.ConceptRole(role)
	c.Tags, err = decodeStrings(tags)
	if err != nil {
		return nil, err
	}
	c.CreatedAt = parseTime(createdAt)
	c.UpdatedAt = parseTime(updatedAt)
	return &c, nil
}
