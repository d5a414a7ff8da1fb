package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"repodash/internal/database"
	"repodash/internal/domain/repo"
)

// FetchHistoryRepoImpl implements repo.FetchHistoryRepo on Postgres
type FetchHistoryRepoImpl struct {
	conn *sql.DB
}

// NewFetchHistoryRepository creates a new Postgres-backed fetch history
func NewFetchHistoryRepository(db *database.DB) repo.FetchHistoryRepo {
	return &FetchHistoryRepoImpl{conn: db.GetConnection()}
}

// Save appends a record
func (r *FetchHistoryRepoImpl) Save(ctx context.Context, record *repo.FetchRecord) error {
	_, err := r.conn.ExecContext(ctx, `
		INSERT INTO fetch_history
			(id, account, outcome, error_code, message, fetched_count, original_count, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		record.ID,
		record.Account,
		record.Outcome,
		record.ErrorCode,
		record.Message,
		record.FetchedCount,
		record.OriginalCount,
		record.FetchedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert fetch record: %w", err)
	}
	return nil
}

// ListRecent returns up to limit records, newest first
func (r *FetchHistoryRepoImpl) ListRecent(ctx context.Context, limit int) ([]*repo.FetchRecord, error) {
	rows, err := r.conn.QueryContext(ctx, `
		SELECT id, account, outcome, error_code, message, fetched_count, original_count, fetched_at
		FROM fetch_history
		ORDER BY fetched_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query fetch history: %w", err)
	}
	defer rows.Close()

	var records []*repo.FetchRecord
	for rows.Next() {
		var rec repo.FetchRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Account,
			&rec.Outcome,
			&rec.ErrorCode,
			&rec.Message,
			&rec.FetchedCount,
			&rec.OriginalCount,
			&rec.FetchedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fetch record: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fetch history: %w", err)
	}

	return records, nil
}
