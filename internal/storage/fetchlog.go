package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/guttosm/stockpager/internal/domain/models"
)

// FetchLogRepository defines contract for fetch log persistence.
type FetchLogRepository interface {
	InsertFetch(ctx context.Context, rec models.FetchRecord) error
	ListRecentFetches(ctx context.Context, limit int) ([]models.FetchRecord, error)
}

type fetchLogRepository struct {
	db *sql.DB
}

func NewFetchLogRepository(db *sql.DB) FetchLogRepository {
	return &fetchLogRepository{db: db}
}

// InsertFetch records the outcome of one upstream page request.
func (r *fetchLogRepository) InsertFetch(ctx context.Context, rec models.FetchRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO fetch_log (page, status, row_count, latency_ms, fetched_at)
		VALUES ($1, $2, $3, $4, $5)
	`, rec.Page, rec.Status, rec.RowCount, rec.LatencyMs, rec.FetchedAt)
	if err != nil {
		return fmt.Errorf("insert fetch_log: %w", err)
	}
	return nil
}

// ListRecentFetches returns up to limit entries, newest first.
func (r *fetchLogRepository) ListRecentFetches(ctx context.Context, limit int) ([]models.FetchRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, page, status, row_count, latency_ms, fetched_at
		FROM fetch_log
		ORDER BY fetched_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query fetch_log: %w", err)
	}
	defer rows.Close()

	out := make([]models.FetchRecord, 0, limit)
	for rows.Next() {
		var rec models.FetchRecord
		if err := rows.Scan(&rec.ID, &rec.Page, &rec.Status, &rec.RowCount, &rec.LatencyMs, &rec.FetchedAt); err != nil {
			return nil, fmt.Errorf("scan fetch_log: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
