// internal/core/domain/box.go
package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Box is a physical unit of inventory, created once and never mutated
type Box struct {
	BoxID     string    `json:"box_id"`
	ProductID uuid.UUID `json:"product_id"`
	LotCode   string    `json:"lot_code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

var boxIDPattern = regexp.MustCompile(`^BX-\d{8}-\d{6}$`)

// FormatBoxID builds a box identifier from its allocation date and the
// per-date sequence number: BX-YYYYMMDD-NNNNNN.
func FormatBoxID(date time.Time, seq int) string {
	return fmt.Sprintf("BX-%s-%06d", date.Format("20060102"), seq)
}

// ValidBoxID reports whether v matches the generated identifier format
func ValidBoxID(v string) bool {
	return boxIDPattern.MatchString(v)
}

// QRValue is the payload encoded on the box label
func (b *Box) QRValue() string {
	return boxQRPrefix + b.BoxID
}

// Validate performs domain validation on the box
func (b *Box) Validate() error {
	if !ValidBoxID(b.BoxID) {
		return fmt.Errorf("invalid box_id format: %s", b.BoxID)
	}
	if b.ProductID == uuid.Nil {
		return fmt.Errorf("product_id is required")
	}
	return nil
}
