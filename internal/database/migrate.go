package database

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS fetch_history (
		id             UUID PRIMARY KEY,
		account        TEXT NOT NULL,
		outcome        TEXT NOT NULL,
		error_code     TEXT NOT NULL DEFAULT '',
		message        TEXT NOT NULL DEFAULT '',
		fetched_count  INTEGER NOT NULL DEFAULT 0,
		original_count INTEGER NOT NULL DEFAULT 0,
		fetched_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS fetch_history_fetched_at_idx ON fetch_history (fetched_at DESC)`,
}

// Migrate creates the tables the service needs. It is idempotent.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
