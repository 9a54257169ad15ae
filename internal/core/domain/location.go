// internal/core/domain/location.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReceivingCode is the reserved code of the system location that IN events
// with no explicit destination fall back to.
const ReceivingCode = "RECEIVING"

// Location is a zone/aisle/rack/shelf slot, immutable once created
type Location struct {
	ID               uuid.UUID `json:"id"`
	Zone             string    `json:"zone"`
	Aisle            string    `json:"aisle"`
	Rack             string    `json:"rack"`
	Shelf            string    `json:"shelf"`
	LocationCode     string    `json:"location_code"`
	IsSystemLocation bool      `json:"is_system_location"`
	CreatedAt        time.Time `json:"created_at"`
}

// BuildLocationCode derives the human-readable code {ZONE}{AISLE}-{RACK}-{SHELF}
func BuildLocationCode(zone, aisle, rack, shelf string) string {
	return fmt.Sprintf("%s%s-%s-%s", zone, aisle, rack, shelf)
}

// Validate performs domain validation on the location
func (l *Location) Validate() error {
	if l.IsSystemLocation {
		if l.LocationCode == "" {
			return fmt.Errorf("location_code is required for system locations")
		}
		return nil
	}
	if l.Zone == "" {
		return fmt.Errorf("zone is required")
	}
	if l.Aisle == "" {
		return fmt.Errorf("aisle is required")
	}
	if l.Rack == "" {
		return fmt.Errorf("rack is required")
	}
	if l.Shelf == "" {
		return fmt.Errorf("shelf is required")
	}
	return nil
}

// PrepareForStorage assigns the id, derives the code for non-system
// locations and stamps creation time.
func (l *Location) PrepareForStorage() {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.LocationCode == "" {
		l.LocationCode = BuildLocationCode(l.Zone, l.Aisle, l.Rack, l.Shelf)
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
}
