// internal/core/domain/product.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Product is an immutable catalog entry boxes reference
type Product struct {
	ID        uuid.UUID `json:"id"`
	Brand     string    `json:"brand"`
	Name      string    `json:"name"`
	Size      *string   `json:"size,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate performs domain validation on the product
func (p *Product) Validate() error {
	if p.Brand == "" {
		return fmt.Errorf("brand is required")
	}
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// PrepareForStorage assigns the surrogate id and creation timestamp
func (p *Product) PrepareForStorage() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
}

// DisplayName renders brand, name and size for operator-facing responses
func (p *Product) DisplayName() string {
	if p.Size != nil && *p.Size != "" {
		return fmt.Sprintf("%s %s (%s)", p.Brand, p.Name, *p.Size)
	}
	return fmt.Sprintf("%s %s", p.Brand, p.Name)
}
