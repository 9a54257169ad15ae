// internal/core/services/boxes.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
)

// BoxService creates boxes with allocated identifiers and serves box
// detail lookups including full scan history.
type BoxService struct {
	boxes     ports.BoxRepository
	products  ports.ProductRepository
	events    ports.EventRepository
	states    ports.StateRepository
	locations ports.LocationRepository
	allocator ports.SequenceAllocator
	logger    *slog.Logger
}

// Statically assert that *BoxService implements the BoxService interface.
var _ ports.BoxService = (*BoxService)(nil)

// NewBoxService creates a new box service
func NewBoxService(
	boxes ports.BoxRepository,
	products ports.ProductRepository,
	events ports.EventRepository,
	states ports.StateRepository,
	locations ports.LocationRepository,
	allocator ports.SequenceAllocator,
	logger *slog.Logger,
) *BoxService {
	return &BoxService{
		boxes:     boxes,
		products:  products,
		events:    events,
		states:    states,
		locations: locations,
		allocator: allocator,
		logger:    logger.With(slog.String("service", "boxes")),
	}
}

// CreateBox allocates a new box identifier for the product and stores the box
func (s *BoxService) CreateBox(ctx context.Context, params ports.CreateBoxParams) (*ports.BoxResult, error) {
	product, err := s.products.FindByID(ctx, params.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", params.ProductID, domain.ErrNotFound)
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	boxID, err := s.allocator.AllocateBoxID(ctx, date)
	if err != nil {
		return nil, err
	}

	box := &domain.Box{
		BoxID:     boxID,
		ProductID: product.ID,
		LotCode:   params.LotCode,
		CreatedAt: time.Now().UTC(),
	}
	if err := box.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrValidation)
	}

	if err := s.boxes.Insert(ctx, box); err != nil {
		return nil, fmt.Errorf("failed to create box: %w", err)
	}

	s.logger.InfoContext(ctx, "created box",
		slog.String("box_id", boxID),
		slog.String("product_id", product.ID.String()))

	return &ports.BoxResult{
		BoxID:   boxID,
		QRValue: box.QRValue(),
		Product: product.DisplayName(),
		LotCode: box.LotCode,
	}, nil
}

// GetDetails returns a box with its product, projection and event history
func (s *BoxService) GetDetails(ctx context.Context, boxID string) (*ports.BoxHistory, error) {
	boxID = domain.StripBoxPrefix(boxID)

	details, err := s.boxes.FindDetails(ctx, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up box: %w", err)
	}
	if details == nil {
		return nil, fmt.Errorf("box %s: %w", boxID, domain.ErrNotFound)
	}

	state, err := s.states.FindByBox(ctx, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to load box state: %w", err)
	}

	history, err := s.events.FindByBox(ctx, boxID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event history: %w", err)
	}

	result := &ports.BoxHistory{
		Box:     details.Box,
		Product: details.Product,
		State:   state,
		Events:  history,
	}

	if state != nil && state.CurrentLocationID != nil {
		location, err := s.locations.FindByID(ctx, *state.CurrentLocationID)
		if err == nil && location != nil {
			result.LocationCode = &location.LocationCode
		}
	}

	return result, nil
}
