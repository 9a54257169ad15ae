// internal/adapters/db/location_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
)

const locationColumns = `id, zone, aisle, rack, shelf, location_code, is_system_location, created_at`

// locationRepository implements ports.LocationRepository
type locationRepository struct {
	q      ports.Querier
	logger *slog.Logger
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(q ports.Querier, logger *slog.Logger) ports.LocationRepository {
	return &locationRepository{
		q:      q,
		logger: logger.With(slog.String("repository", "locations")),
	}
}

// Insert stores a new location
func (r *locationRepository) Insert(ctx context.Context, location *domain.Location) error {
	query := `
		INSERT INTO locations (id, zone, aisle, rack, shelf, location_code, is_system_location, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.q.Exec(ctx, query,
		location.ID, location.Zone, location.Aisle, location.Rack, location.Shelf,
		location.LocationCode, location.IsSystemLocation, location.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert location: %w", err)
	}

	r.logger.DebugContext(ctx, "location inserted",
		slog.String("location_code", location.LocationCode))

	return nil
}

// FindByID returns the location or (nil, nil) when it does not exist
func (r *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`
	return r.scanLocation(r.q.QueryRow(ctx, query, id))
}

// FindByCode returns the location with the code, or (nil, nil)
func (r *locationRepository) FindByCode(ctx context.Context, code string) (*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE location_code = $1`
	return r.scanLocation(r.q.QueryRow(ctx, query, code))
}

// FindAll returns all locations ordered by code
func (r *locationRepository) FindAll(ctx context.Context) ([]domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations ORDER BY location_code ASC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var locations []domain.Location
	for rows.Next() {
		location, err := r.scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, *location)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locations: %w", err)
	}

	return locations, nil
}

func (r *locationRepository) scanLocation(row pgx.Row) (*domain.Location, error) {
	var location domain.Location
	var zone, aisle, rack, shelf *string

	err := row.Scan(
		&location.ID, &zone, &aisle, &rack, &shelf,
		&location.LocationCode, &location.IsSystemLocation, &location.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan location: %w", err)
	}

	if zone != nil {
		location.Zone = *zone
	}
	if aisle != nil {
		location.Aisle = *aisle
	}
	if rack != nil {
		location.Rack = *rack
	}
	if shelf != nil {
		location.Shelf = *shelf
	}

	return &location, nil
}
