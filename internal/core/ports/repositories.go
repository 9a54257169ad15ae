// internal/core/ports/repositories.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
)

// EventRepository is the persistence port for the append-only event ledger.
// Find methods return (nil, nil) when no row matches; services translate
// that into domain.ErrNotFound.
type EventRepository interface {
	// WithTx returns a copy of the repository that executes against tx,
	// so the event append and the projection upsert can share a transaction.
	WithTx(tx pgx.Tx) EventRepository

	Insert(ctx context.Context, event *domain.Event) error
	FindByID(ctx context.Context, eventID uuid.UUID) (*domain.Event, error)
	FindByClientEventID(ctx context.Context, clientEventID string) (*domain.Event, error)
	// FindByBox returns the box's full history, reversed rows included,
	// ordered by timestamp then insertion order.
	FindByBox(ctx context.Context, boxID string) ([]domain.Event, error)
	HasInEvent(ctx context.Context, boxID string) (bool, error)
	SetReversed(ctx context.Context, eventID uuid.UUID, reversed bool) error
	List(ctx context.Context, params EventListParams) ([]domain.Event, error)
	CountByTypeSince(ctx context.Context, since time.Time) (map[domain.EventType]int64, error)
	CountExceptionsSince(ctx context.Context, since time.Time) (int64, error)
	// StaleBoxIDs returns boxes whose latest event is newer than their
	// projection row (or that have no projection row at all).
	StaleBoxIDs(ctx context.Context, limit int) ([]string, error)
}

// StateRepository is the persistence port for the per-box projection
type StateRepository interface {
	WithTx(tx pgx.Tx) StateRepository

	Upsert(ctx context.Context, state *domain.InventoryState) error
	FindByBox(ctx context.Context, boxID string) (*domain.InventoryState, error)
	List(ctx context.Context, params InventoryListParams) (*InventoryListResult, error)
	FindAtLocation(ctx context.Context, locationID uuid.UUID, limit int) ([]InventoryRow, error)
	CountAtLocation(ctx context.Context, locationID uuid.UUID) (int64, error)
}

// BoxRepository is the persistence port for boxes
type BoxRepository interface {
	WithTx(tx pgx.Tx) BoxRepository

	Insert(ctx context.Context, box *domain.Box) error
	FindByID(ctx context.Context, boxID string) (*domain.Box, error)
	FindDetails(ctx context.Context, boxID string) (*BoxDetails, error)
	Exists(ctx context.Context, boxID string) (bool, error)
}

// ProductRepository is the persistence port for products
type ProductRepository interface {
	Insert(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
}

// LocationRepository is the persistence port for locations
type LocationRepository interface {
	Insert(ctx context.Context, location *domain.Location) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Location, error)
	FindByCode(ctx context.Context, code string) (*domain.Location, error)
	FindAll(ctx context.Context) ([]domain.Location, error)
}

// CounterRepository is the persistence port for per-date box id counters
type CounterRepository interface {
	// NextSequence atomically increments and returns the counter for date,
	// creating it on first use. Concurrent callers never observe the same
	// value.
	NextSequence(ctx context.Context, date time.Time) (int, error)
	// NextSequenceFallback is the weaker read-increment-write path used
	// when the atomic upsert is unavailable. Duplicates are possible under
	// true concurrency; callers must log the degraded mode.
	NextSequenceFallback(ctx context.Context, date time.Time) (int, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// BoxDetails joins a box with its product
type BoxDetails struct {
	Box     domain.Box     `json:"box"`
	Product domain.Product `json:"product"`
}

// EventListParams holds filters for listing ledger events
type EventListParams struct {
	BoxID          string
	ExceptionsOnly bool
	Since          *time.Time
	Limit          int
}

// InventoryListParams holds filters for listing projections
type InventoryListParams struct {
	Status       string
	LocationCode string
	Search       string
	Page         int
	PageSize     int
}

// InventoryRow is a projection row joined with box and location detail
type InventoryRow struct {
	BoxID         string            `json:"box_id"`
	Product       string            `json:"product"`
	LotCode       string            `json:"lot_code,omitempty"`
	Status        domain.BoxStatus  `json:"status"`
	LocationCode  *string           `json:"location_code,omitempty"`
	LastEventTime *time.Time        `json:"last_event_time,omitempty"`
	LastEventType *domain.EventType `json:"last_event_type,omitempty"`
}

// InventoryListResult represents paginated projection results
type InventoryListResult struct {
	Items      []InventoryRow `json:"items"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalCount int64          `json:"total_count"`
	TotalPages int            `json:"total_pages"`
}
