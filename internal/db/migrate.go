package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// "duplicate column name" errors from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS concepts (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		role       TEXT NOT NULL CHECK(role IN ('hero','support')),
		tags       TEXT NOT NULL DEFAULT '[]',
		color      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS markets (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		region     TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tribes (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// concept_id carries no foreign key on purpose: deleting a concept
	// leaves placements dangling, and the scoring engine treats dangling
	// references as unplanned for hero purposes.
	`CREATE TABLE IF NOT EXISTS placements (
		id         TEXT PRIMARY KEY,
		market_id  TEXT NOT NULL REFERENCES markets(id) ON DELETE CASCADE,
		month      INTEGER NOT NULL CHECK(month >= 0 AND month < 12),
		concept_id TEXT,
		notes      TEXT NOT NULL DEFAULT '',
		channels   TEXT NOT NULL DEFAULT '[]',
		budget     REAL,
		tribe_ids  TEXT NOT NULL DEFAULT '[]',
		assets     TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		UNIQUE(market_id, month)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_placements_market ON placements(market_id)`,

	// Singleton row keyed by id 1.
	`CREATE TABLE IF NOT EXISTS cohesion_rules (
		id                            INTEGER PRIMARY KEY CHECK(id = 1),
		max_hero_concepts_per_market  INTEGER NOT NULL,
		min_repeats_per_hero          INTEGER NOT NULL,
		min_months_planned            INTEGER NOT NULL,
		max_total_concepts_per_market INTEGER NOT NULL,
		updated_at                    TEXT NOT NULL
	)`,
}
