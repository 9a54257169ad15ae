// internal/core/ports/services.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
)

// EventService is the application service port for the event ledger:
// idempotent ingestion, undo and projection maintenance.
type EventService interface {
	CreateEvent(ctx context.Context, params CreateEventParams) (*EventResult, error)
	UndoEvent(ctx context.Context, eventID uuid.UUID) (*UndoResult, error)
	ListEvents(ctx context.Context, params EventListParams) ([]domain.Event, error)
	// Reproject refolds a single box's projection from its ledger history.
	Reproject(ctx context.Context, boxID string) (*domain.InventoryState, error)
	// ReconcileStale refolds every box whose projection lags its ledger,
	// returning the number of boxes repaired.
	ReconcileStale(ctx context.Context, limit int) (int, error)
}

// RulesEngine validates a proposed event against the box's projected state.
// A non-nil exception tag with a nil error is a soft exception: the event is
// accepted but recorded with the tag and warning.
type RulesEngine interface {
	Validate(ctx context.Context, mode domain.Mode, eventType domain.EventType, boxID string, locationID *uuid.UUID) (*domain.ExceptionType, string, error)
}

// SequenceAllocator produces unique, human-readable box identifiers
type SequenceAllocator interface {
	AllocateBoxID(ctx context.Context, date time.Time) (string, error)
}

// LocationResolver maps human-entered location codes to internal ids
type LocationResolver interface {
	// Resolve returns ErrNotFound-kind errors for unknown codes.
	Resolve(ctx context.Context, code string) (uuid.UUID, error)
	// ReceivingID returns the id of the reserved RECEIVING location;
	// ok is false when it has not been seeded.
	ReceivingID(ctx context.Context) (uuid.UUID, bool, error)
}

// BoxService manages box creation and lookups
type BoxService interface {
	CreateBox(ctx context.Context, params CreateBoxParams) (*BoxResult, error)
	GetDetails(ctx context.Context, boxID string) (*BoxHistory, error)
}

// LocationService manages locations on top of the resolver contract
type LocationService interface {
	LocationResolver
	Create(ctx context.Context, location *domain.Location) error
	List(ctx context.Context) ([]domain.Location, error)
	Occupancy(ctx context.Context, locationID uuid.UUID) (*LocationOccupancy, error)
}

// ProductService manages the immutable product catalog
type ProductService interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}

// StatsService aggregates operational counters for the floor dashboard
type StatsService interface {
	Today(ctx context.Context) (*TodayStats, error)
}

// CreateEventParams is a candidate event submission
type CreateEventParams struct {
	ClientEventID string            `json:"client_event_id"`
	EventType     domain.EventType  `json:"event_type"`
	BoxID         string            `json:"box_id"`
	LocationCode  string            `json:"location_code,omitempty"`
	Mode          domain.Mode       `json:"mode"`
	SourceType    domain.SourceType `json:"source_type"`
	SourceID      string            `json:"source_id,omitempty"`
}

// EventResult is the outcome of an event submission
type EventResult struct {
	Success       bool                  `json:"success"`
	Message       string                `json:"message"`
	Warning       string                `json:"warning,omitempty"`
	ExceptionType *domain.ExceptionType `json:"exception_type,omitempty"`
	IsDuplicate   bool                  `json:"is_duplicate"`
	Changed       bool                  `json:"changed"`
	EventID       uuid.UUID             `json:"event_id"`
	BoxID         string                `json:"box_id"`
	Product       string                `json:"product"`
	LotCode       string                `json:"lot_code,omitempty"`
}

// UndoResult is the outcome of reversing an event
type UndoResult struct {
	Success         bool             `json:"success"`
	Message         string           `json:"message"`
	BoxID           string           `json:"box_id"`
	Product         string           `json:"product"`
	LotCode         string           `json:"lot_code,omitempty"`
	Status          domain.BoxStatus `json:"status"`
	CurrentLocation string           `json:"current_location,omitempty"`
}

// CreateBoxParams requests allocation of a new box
type CreateBoxParams struct {
	ProductID uuid.UUID `json:"product_id"`
	LotCode   string    `json:"lot_code,omitempty"`
	Date      time.Time `json:"-"`
}

// BoxResult is the outcome of box creation
type BoxResult struct {
	BoxID   string `json:"box_id"`
	QRValue string `json:"qr_value"`
	Product string `json:"product"`
	LotCode string `json:"lot_code,omitempty"`
}

// BoxHistory joins a box with its projection and full event history
type BoxHistory struct {
	Box          domain.Box             `json:"box"`
	Product      domain.Product         `json:"product"`
	State        *domain.InventoryState `json:"state,omitempty"`
	LocationCode *string                `json:"location_code,omitempty"`
	Events       []domain.Event         `json:"events"`
}

// LocationOccupancy reports which boxes a location currently holds
type LocationOccupancy struct {
	Location domain.Location `json:"location"`
	BoxCount int64           `json:"box_count"`
	Boxes    []InventoryRow  `json:"boxes"`
}

// TodayStats is the floor dashboard summary for the current date
type TodayStats struct {
	Received       int64          `json:"received"`
	ToPutAway      int64          `json:"to_put_away"`
	Moved          int64          `json:"moved"`
	Shipped        int64          `json:"shipped"`
	Exceptions     int64          `json:"exceptions"`
	WaitingPutaway []InventoryRow `json:"waiting_putaway"`
}
