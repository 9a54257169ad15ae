// internal/adapters/db/counter_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
)

// counterRepository implements ports.CounterRepository
type counterRepository struct {
	q      ports.Querier
	logger *slog.Logger
}

// NewCounterRepository creates a new box id counter repository
func NewCounterRepository(q ports.Querier, logger *slog.Logger) ports.CounterRepository {
	return &counterRepository{
		q:      q,
		logger: logger.With(slog.String("repository", "box_id_counters")),
	}
}

// NextSequence increments and returns the counter for date in a single
// upsert, so concurrent callers always receive distinct values.
func (r *counterRepository) NextSequence(ctx context.Context, date time.Time) (int, error) {
	query := `
		INSERT INTO box_id_counters (date, last_seq)
		VALUES ($1, 1)
		ON CONFLICT (date) DO UPDATE SET
			last_seq = box_id_counters.last_seq + 1,
			updated_at = NOW()
		RETURNING last_seq`

	var seq int
	if err := r.q.QueryRow(ctx, query, counterDate(date)).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to increment box id counter: %w", err)
	}
	return seq, nil
}

// NextSequenceFallback reads the counter and writes it back incremented.
// Not safe under concurrency; used only when the upsert path fails.
func (r *counterRepository) NextSequenceFallback(ctx context.Context, date time.Time) (int, error) {
	day := counterDate(date)

	var seq int
	err := r.q.QueryRow(ctx,
		`SELECT last_seq FROM box_id_counters WHERE date = $1`, day,
	).Scan(&seq)
	if err != nil && err != pgx.ErrNoRows {
		return 0, fmt.Errorf("failed to read box id counter: %w", err)
	}

	seq++
	_, err = r.q.Exec(ctx, `
		INSERT INTO box_id_counters (date, last_seq)
		VALUES ($1, $2)
		ON CONFLICT (date) DO UPDATE SET
			last_seq = $2,
			updated_at = NOW()`,
		day, seq)
	if err != nil {
		return 0, fmt.Errorf("failed to write box id counter: %w", err)
	}

	return seq, nil
}

// DeleteOlderThan removes counters for dates before the cutoff
func (r *counterRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx,
		`DELETE FROM box_id_counters WHERE date < $1`, counterDate(cutoff))
	if err != nil {
		return 0, fmt.Errorf("failed to delete old counters: %w", err)
	}

	deleted := tag.RowsAffected()
	if deleted > 0 {
		r.logger.DebugContext(ctx, "old box id counters deleted",
			slog.Int64("count", deleted))
	}

	return deleted, nil
}

// counterDate normalizes to the calendar day the counter is keyed on
func counterDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
