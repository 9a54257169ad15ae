// internal/core/services/locations.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
)

const receivingCacheKey = "location:receiving_id"

// LocationService resolves human-entered location codes to internal ids and
// manages the location catalog. The RECEIVING id is cached in Redis with an
// in-process copy so scan ingestion does not depend on the cache being up.
type LocationService struct {
	repo   ports.LocationRepository
	states ports.StateRepository
	cache  ports.CacheRepository
	logger *slog.Logger

	mu          sync.RWMutex
	receivingID *uuid.UUID
}

// Statically assert that *LocationService implements the LocationService interface.
var _ ports.LocationService = (*LocationService)(nil)

// NewLocationService creates a new location service
func NewLocationService(repo ports.LocationRepository, states ports.StateRepository, cache ports.CacheRepository, logger *slog.Logger) *LocationService {
	return &LocationService{
		repo:   repo,
		states: states,
		cache:  cache,
		logger: logger.With(slog.String("service", "locations")),
	}
}

// Resolve maps a location code to its id, stripping any scanner prefix
func (s *LocationService) Resolve(ctx context.Context, code string) (uuid.UUID, error) {
	code = domain.StripLocationPrefix(code)
	if code == "" {
		return uuid.Nil, fmt.Errorf("empty location code: %w", domain.ErrNotFound)
	}

	location, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to look up location %s: %w", code, err)
	}
	if location == nil {
		return uuid.Nil, fmt.Errorf("location %s: %w", code, domain.ErrNotFound)
	}

	return location.ID, nil
}

// ReceivingID returns the id of the reserved RECEIVING location.
// ok is false when the location has not been seeded.
func (s *LocationService) ReceivingID(ctx context.Context) (uuid.UUID, bool, error) {
	s.mu.RLock()
	if s.receivingID != nil {
		id := *s.receivingID
		s.mu.RUnlock()
		return id, true, nil
	}
	s.mu.RUnlock()

	if s.cache != nil {
		var cached string
		if err := s.cache.Get(ctx, receivingCacheKey, &cached); err == nil {
			if id, perr := uuid.Parse(cached); perr == nil {
				s.remember(id)
				return id, true, nil
			}
		}
	}

	location, err := s.repo.FindByCode(ctx, domain.ReceivingCode)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to look up receiving location: %w", err)
	}
	if location == nil {
		s.logger.WarnContext(ctx, "receiving location not seeded")
		return uuid.Nil, false, nil
	}

	if s.cache != nil {
		if err := s.cache.SetWithTTL(ctx, receivingCacheKey, location.ID.String(), time.Hour); err != nil {
			s.logger.DebugContext(ctx, "failed to cache receiving location id",
				slog.String("error", err.Error()))
		}
	}
	s.remember(location.ID)

	return location.ID, true, nil
}

func (s *LocationService) remember(id uuid.UUID) {
	s.mu.Lock()
	s.receivingID = &id
	s.mu.Unlock()
}

// Create stores a new location; locations are immutable once created
func (s *LocationService) Create(ctx context.Context, location *domain.Location) error {
	if err := location.Validate(); err != nil {
		return fmt.Errorf("%s: %w", err.Error(), domain.ErrValidation)
	}

	location.PrepareForStorage()

	if err := s.repo.Insert(ctx, location); err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}

	s.logger.InfoContext(ctx, "created location",
		slog.String("location_id", location.ID.String()),
		slog.String("location_code", location.LocationCode))

	return nil
}

// List returns all locations
func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	locations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

// Occupancy reports which boxes a location currently holds
func (s *LocationService) Occupancy(ctx context.Context, locationID uuid.UUID) (*ports.LocationOccupancy, error) {
	location, err := s.repo.FindByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up location: %w", err)
	}
	if location == nil {
		return nil, fmt.Errorf("location %s: %w", locationID, domain.ErrNotFound)
	}

	count, err := s.states.CountAtLocation(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to count boxes at location: %w", err)
	}

	boxes, err := s.states.FindAtLocation(ctx, locationID, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to list boxes at location: %w", err)
	}

	return &ports.LocationOccupancy{
		Location: *location,
		BoxCount: count,
		Boxes:    boxes,
	}, nil
}
