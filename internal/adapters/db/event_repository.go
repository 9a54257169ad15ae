// internal/adapters/db/event_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
)

const eventColumns = `
	event_id, event_seq, client_event_id, event_type, box_id, location_id,
	mode, source_type, source_id, exception_type, warning, reversed, timestamp`

// eventRepository implements ports.EventRepository
type eventRepository struct {
	q      ports.Querier
	logger *slog.Logger
}

// NewEventRepository creates a new event repository
func NewEventRepository(q ports.Querier, logger *slog.Logger) ports.EventRepository {
	return &eventRepository{
		q:      q,
		logger: logger.With(slog.String("repository", "events")),
	}
}

// WithTx returns a copy of the repository bound to the transaction
func (r *eventRepository) WithTx(tx pgx.Tx) ports.EventRepository {
	return &eventRepository{q: tx, logger: r.logger}
}

// Insert appends a new event row. The unique constraint on client_event_id
// surfaces concurrent duplicate submissions as a pg unique violation.
func (r *eventRepository) Insert(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (
			event_id, client_event_id, event_type, box_id, location_id,
			mode, source_type, source_id, exception_type, warning, reversed, timestamp
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING event_seq`

	err := r.q.QueryRow(ctx, query,
		event.EventID, event.ClientEventID, event.EventType, event.BoxID, event.LocationID,
		event.Mode, event.SourceType, nullString(event.SourceID),
		nullExceptionType(event.ExceptionType), nullString(event.Warning),
		event.Reversed, event.Timestamp,
	).Scan(&event.EventSeq)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	r.logger.DebugContext(ctx, "event inserted",
		slog.String("event_id", event.EventID.String()),
		slog.String("box_id", event.BoxID),
		slog.Int64("event_seq", event.EventSeq))

	return nil
}

// FindByID returns the event or (nil, nil) when it does not exist
func (r *eventRepository) FindByID(ctx context.Context, eventID uuid.UUID) (*domain.Event, error) {
	query := `SELECT` + eventColumns + ` FROM events WHERE event_id = $1`
	return r.scanEvent(r.q.QueryRow(ctx, query, eventID))
}

// FindByClientEventID returns the event stored for the idempotency key,
// or (nil, nil) when none exists
func (r *eventRepository) FindByClientEventID(ctx context.Context, clientEventID string) (*domain.Event, error) {
	query := `SELECT` + eventColumns + ` FROM events WHERE client_event_id = $1`
	return r.scanEvent(r.q.QueryRow(ctx, query, clientEventID))
}

// FindByBox returns the box's full history in fold order
func (r *eventRepository) FindByBox(ctx context.Context, boxID string) ([]domain.Event, error) {
	query := `SELECT` + eventColumns + `
		FROM events
		WHERE box_id = $1
		ORDER BY timestamp ASC, event_seq ASC`

	rows, err := r.q.Query(ctx, query, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to query box history: %w", err)
	}
	defer rows.Close()

	return r.collectEvents(rows)
}

// HasInEvent reports whether the box has any non-reversed IN event
func (r *eventRepository) HasInEvent(ctx context.Context, boxID string) (bool, error) {
	query := `SELECT EXISTS(
		SELECT 1 FROM events
		WHERE box_id = $1 AND event_type = 'IN' AND NOT reversed
	)`

	var exists bool
	if err := r.q.QueryRow(ctx, query, boxID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check IN history: %w", err)
	}
	return exists, nil
}

// SetReversed flips the reversed flag, the only permitted event update
func (r *eventRepository) SetReversed(ctx context.Context, eventID uuid.UUID, reversed bool) error {
	tag, err := r.q.Exec(ctx, `UPDATE events SET reversed = $2 WHERE event_id = $1`, eventID, reversed)
	if err != nil {
		return fmt.Errorf("failed to update reversed flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event not found: %s", eventID)
	}
	return nil
}

// List returns recent events matching the filters, newest first
func (r *eventRepository) List(ctx context.Context, params ports.EventListParams) ([]domain.Event, error) {
	builder := squirrel.
		Select("event_id", "event_seq", "client_event_id", "event_type", "box_id", "location_id",
			"mode", "source_type", "source_id", "exception_type", "warning", "reversed", "timestamp").
		From("events").
		PlaceholderFormat(squirrel.Dollar).
		OrderBy("timestamp DESC", "event_seq DESC").
		Limit(uint64(params.Limit))

	if params.BoxID != "" {
		builder = builder.Where(squirrel.Eq{"box_id": params.BoxID})
	}
	if params.ExceptionsOnly {
		builder = builder.Where("exception_type IS NOT NULL")
	}
	if params.Since != nil {
		builder = builder.Where(squirrel.GtOrEq{"timestamp": *params.Since})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build event query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	return r.collectEvents(rows)
}

// CountByTypeSince counts non-reversed events per type since the given time
func (r *eventRepository) CountByTypeSince(ctx context.Context, since time.Time) (map[domain.EventType]int64, error) {
	query := `
		SELECT event_type, COUNT(*)
		FROM events
		WHERE timestamp >= $1 AND NOT reversed
		GROUP BY event_type`

	rows, err := r.q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.EventType]int64)
	for rows.Next() {
		var eventType domain.EventType
		var count int64
		if err := rows.Scan(&eventType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan event count: %w", err)
		}
		counts[eventType] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event counts: %w", err)
	}

	return counts, nil
}

// CountExceptionsSince counts non-reversed tagged events since the given time
func (r *eventRepository) CountExceptionsSince(ctx context.Context, since time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM events
		WHERE timestamp >= $1 AND exception_type IS NOT NULL AND NOT reversed`

	var count int64
	if err := r.q.QueryRow(ctx, query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count exceptions: %w", err)
	}
	return count, nil
}

// StaleBoxIDs finds boxes whose projection lags their latest ledger event
func (r *eventRepository) StaleBoxIDs(ctx context.Context, limit int) ([]string, error) {
	query := `
		SELECT e.box_id
		FROM events e
		LEFT JOIN inventory_state s ON s.box_id = e.box_id
		WHERE NOT e.reversed
		GROUP BY e.box_id, s.last_event_time
		HAVING s.last_event_time IS NULL OR MAX(e.timestamp) > s.last_event_time
		LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale projections: %w", err)
	}
	defer rows.Close()

	var boxIDs []string
	for rows.Next() {
		var boxID string
		if err := rows.Scan(&boxID); err != nil {
			return nil, fmt.Errorf("failed to scan box id: %w", err)
		}
		boxIDs = append(boxIDs, boxID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stale projections: %w", err)
	}

	return boxIDs, nil
}

func (r *eventRepository) collectEvents(rows pgx.Rows) ([]domain.Event, error) {
	var events []domain.Event
	for rows.Next() {
		event, err := r.scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return events, nil
}

func (r *eventRepository) scanEvent(row pgx.Row) (*domain.Event, error) {
	var event domain.Event
	var sourceID, exceptionType, warning *string

	err := row.Scan(
		&event.EventID, &event.EventSeq, &event.ClientEventID, &event.EventType,
		&event.BoxID, &event.LocationID, &event.Mode, &event.SourceType,
		&sourceID, &exceptionType, &warning, &event.Reversed, &event.Timestamp,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan event: %w", err)
	}

	if sourceID != nil {
		event.SourceID = *sourceID
	}
	if exceptionType != nil {
		tag := domain.ExceptionType(*exceptionType)
		event.ExceptionType = &tag
	}
	if warning != nil {
		event.Warning = *warning
	}

	return &event, nil
}

// nullString maps empty strings to NULL
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullExceptionType(t *domain.ExceptionType) *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}
