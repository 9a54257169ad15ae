// internal/adapters/db/state_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
)

// stateRepository implements ports.StateRepository
type stateRepository struct {
	q      ports.Querier
	logger *slog.Logger
}

// NewStateRepository creates a new inventory state repository
func NewStateRepository(q ports.Querier, logger *slog.Logger) ports.StateRepository {
	return &stateRepository{
		q:      q,
		logger: logger.With(slog.String("repository", "inventory_state")),
	}
}

// WithTx returns a copy of the repository bound to the transaction
func (r *stateRepository) WithTx(tx pgx.Tx) ports.StateRepository {
	return &stateRepository{q: tx, logger: r.logger}
}

// Upsert writes the projected state for a box, replacing any previous row
func (r *stateRepository) Upsert(ctx context.Context, state *domain.InventoryState) error {
	query := `
		INSERT INTO inventory_state (
			box_id, status, current_location_id, last_event_time, last_event_type, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		ON CONFLICT (box_id) DO UPDATE SET
			status = EXCLUDED.status,
			current_location_id = EXCLUDED.current_location_id,
			last_event_time = EXCLUDED.last_event_time,
			last_event_type = EXCLUDED.last_event_type,
			updated_at = EXCLUDED.updated_at`

	var lastEventType *string
	if state.LastEventType != nil {
		s := string(*state.LastEventType)
		lastEventType = &s
	}

	_, err := r.q.Exec(ctx, query,
		state.BoxID, state.Status, state.CurrentLocationID,
		state.LastEventTime, lastEventType, state.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert inventory state: %w", err)
	}

	r.logger.DebugContext(ctx, "inventory state upserted",
		slog.String("box_id", state.BoxID),
		slog.String("status", string(state.Status)))

	return nil
}

// FindByBox returns the projected state or (nil, nil) when no projection exists
func (r *stateRepository) FindByBox(ctx context.Context, boxID string) (*domain.InventoryState, error) {
	query := `
		SELECT box_id, status, current_location_id, last_event_time, last_event_type, updated_at
		FROM inventory_state
		WHERE box_id = $1`

	var state domain.InventoryState
	var lastEventType *string

	err := r.q.QueryRow(ctx, query, boxID).Scan(
		&state.BoxID, &state.Status, &state.CurrentLocationID,
		&state.LastEventTime, &lastEventType, &state.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find inventory state: %w", err)
	}

	if lastEventType != nil {
		t := domain.EventType(*lastEventType)
		state.LastEventType = &t
	}

	return &state, nil
}

// List returns a page of inventory rows joined with box, product and location data
func (r *stateRepository) List(ctx context.Context, params ports.InventoryListParams) (*ports.InventoryListResult, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	base := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	applyFilters := func(b squirrel.SelectBuilder) squirrel.SelectBuilder {
		if params.Status != "" {
			b = b.Where(squirrel.Eq{"s.status": params.Status})
		}
		if params.LocationCode != "" {
			b = b.Where(squirrel.Eq{"l.location_code": params.LocationCode})
		}
		if params.Search != "" {
			pattern := "%" + params.Search + "%"
			b = b.Where(squirrel.Or{
				squirrel.ILike{"s.box_id": pattern},
				squirrel.ILike{"p.brand": pattern},
				squirrel.ILike{"p.name": pattern},
				squirrel.ILike{"b.lot_code": pattern},
			})
		}
		return b
	}

	countBuilder := applyFilters(base.
		Select("COUNT(*)").
		From("inventory_state s").
		Join("boxes b ON b.box_id = s.box_id").
		Join("products p ON p.id = b.product_id").
		LeftJoin("locations l ON l.id = s.current_location_id"))

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int64
	if err := r.q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count inventory: %w", err)
	}

	listBuilder := applyFilters(base.
		Select("s.box_id", "p.brand", "p.name", "p.size", "b.lot_code",
			"s.status", "l.location_code", "s.last_event_time", "s.last_event_type").
		From("inventory_state s").
		Join("boxes b ON b.box_id = s.box_id").
		Join("products p ON p.id = b.product_id").
		LeftJoin("locations l ON l.id = s.current_location_id")).
		OrderBy("s.last_event_time DESC NULLS LAST", "s.box_id ASC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize))

	listQuery, listArgs, err := listBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build inventory query: %w", err)
	}

	rows, err := r.q.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	items, err := r.collectRows(rows)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &ports.InventoryListResult{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}, nil
}

// FindAtLocation returns boxes currently at the location, oldest arrivals first
func (r *stateRepository) FindAtLocation(ctx context.Context, locationID uuid.UUID, limit int) ([]ports.InventoryRow, error) {
	query := `
		SELECT s.box_id, p.brand, p.name, p.size, b.lot_code,
			s.status, l.location_code, s.last_event_time, s.last_event_type
		FROM inventory_state s
		JOIN boxes b ON b.box_id = s.box_id
		JOIN products p ON p.id = b.product_id
		LEFT JOIN locations l ON l.id = s.current_location_id
		WHERE s.current_location_id = $1
		ORDER BY s.last_event_time ASC NULLS LAST, s.box_id ASC
		LIMIT $2`

	rows, err := r.q.Query(ctx, query, locationID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query boxes at location: %w", err)
	}
	defer rows.Close()

	return r.collectRows(rows)
}

// CountAtLocation counts boxes currently projected at the location
func (r *stateRepository) CountAtLocation(ctx context.Context, locationID uuid.UUID) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM inventory_state WHERE current_location_id = $1`,
		locationID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count boxes at location: %w", err)
	}
	return count, nil
}

func (r *stateRepository) collectRows(rows pgx.Rows) ([]ports.InventoryRow, error) {
	var items []ports.InventoryRow
	for rows.Next() {
		var row ports.InventoryRow
		var product domain.Product
		var lotCode, lastEventType *string

		err := rows.Scan(
			&row.BoxID, &product.Brand, &product.Name, &product.Size, &lotCode,
			&row.Status, &row.LocationCode, &row.LastEventTime, &lastEventType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}

		row.Product = product.DisplayName()
		if lotCode != nil {
			row.LotCode = *lotCode
		}
		if lastEventType != nil {
			t := domain.EventType(*lastEventType)
			row.LastEventType = &t
		}
		items = append(items, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inventory rows: %w", err)
	}
	return items, nil
}
