package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
)

func TestFormatBoxID(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "BX-20260315-000001", domain.FormatBoxID(date, 1))
	assert.Equal(t, "BX-20260315-000042", domain.FormatBoxID(date, 42))
	assert.Equal(t, "BX-20260315-123456", domain.FormatBoxID(date, 123456))
}

func TestValidBoxID(t *testing.T) {
	assert.True(t, domain.ValidBoxID("BX-20260315-000001"))
	assert.False(t, domain.ValidBoxID("BX-2026315-000001"))
	assert.False(t, domain.ValidBoxID("BOX-20260315-000001"))
	assert.False(t, domain.ValidBoxID("BX-20260315-1"))
	assert.False(t, domain.ValidBoxID(""))
}

func TestBox_QRValue(t *testing.T) {
	box := &domain.Box{BoxID: "BX-20260315-000001"}
	assert.Equal(t, "BOX:BX-20260315-000001", box.QRValue())
}

func TestBox_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		box := &domain.Box{
			BoxID:     "BX-20260315-000001",
			ProductID: uuid.New(),
		}
		assert.NoError(t, box.Validate())
	})

	t.Run("bad_format", func(t *testing.T) {
		box := &domain.Box{BoxID: "not-a-box", ProductID: uuid.New()}
		assert.Error(t, box.Validate())
	})

	t.Run("missing_product", func(t *testing.T) {
		box := &domain.Box{BoxID: "BX-20260315-000001"}
		assert.Error(t, box.Validate())
	})
}

func TestBuildLocationCode(t *testing.T) {
	assert.Equal(t, "A1-2-3", domain.BuildLocationCode("A", "1", "2", "3"))
	assert.Equal(t, "B12-04-01", domain.BuildLocationCode("B", "12", "04", "01"))
}

func TestLocation_PrepareForStorage(t *testing.T) {
	loc := &domain.Location{Zone: "A", Aisle: "1", Rack: "2", Shelf: "3"}

	loc.PrepareForStorage()

	assert.NotEqual(t, uuid.Nil, loc.ID)
	assert.Equal(t, "A1-2-3", loc.LocationCode)
	assert.False(t, loc.CreatedAt.IsZero())
}

func TestLocation_Validate(t *testing.T) {
	t.Run("system_location_needs_only_code", func(t *testing.T) {
		loc := &domain.Location{LocationCode: domain.ReceivingCode, IsSystemLocation: true}
		assert.NoError(t, loc.Validate())
	})

	t.Run("missing_zone", func(t *testing.T) {
		loc := &domain.Location{Aisle: "1", Rack: "2", Shelf: "3"}
		assert.Error(t, loc.Validate())
	})
}
