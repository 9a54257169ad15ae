// internal/adapters/db/box_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/jsalcedo/boxtrack-be/internal/core/domain"
	"github.com/jsalcedo/boxtrack-be/internal/core/ports"
)

// boxRepository implements ports.BoxRepository
type boxRepository struct {
	q      ports.Querier
	logger *slog.Logger
}

// NewBoxRepository creates a new box repository
func NewBoxRepository(q ports.Querier, logger *slog.Logger) ports.BoxRepository {
	return &boxRepository{
		q:      q,
		logger: logger.With(slog.String("repository", "boxes")),
	}
}

// WithTx returns a copy of the repository bound to the transaction
func (r *boxRepository) WithTx(tx pgx.Tx) ports.BoxRepository {
	return &boxRepository{q: tx, logger: r.logger}
}

// Insert stores a new box
func (r *boxRepository) Insert(ctx context.Context, box *domain.Box) error {
	query := `
		INSERT INTO boxes (box_id, product_id, lot_code, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.q.Exec(ctx, query,
		box.BoxID, box.ProductID, nullString(box.LotCode), box.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert box: %w", err)
	}

	r.logger.DebugContext(ctx, "box inserted", slog.String("box_id", box.BoxID))

	return nil
}

// FindByID returns the box or (nil, nil) when it does not exist
func (r *boxRepository) FindByID(ctx context.Context, boxID string) (*domain.Box, error) {
	query := `
		SELECT box_id, product_id, lot_code, created_at
		FROM boxes
		WHERE box_id = $1`

	var box domain.Box
	var lotCode *string

	err := r.q.QueryRow(ctx, query, boxID).Scan(
		&box.BoxID, &box.ProductID, &lotCode, &box.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find box: %w", err)
	}

	if lotCode != nil {
		box.LotCode = *lotCode
	}

	return &box, nil
}

// FindDetails returns the box joined with its product, or (nil, nil)
func (r *boxRepository) FindDetails(ctx context.Context, boxID string) (*ports.BoxDetails, error) {
	query := `
		SELECT b.box_id, b.product_id, b.lot_code, b.created_at,
			p.id, p.brand, p.name, p.size, p.created_at
		FROM boxes b
		JOIN products p ON p.id = b.product_id
		WHERE b.box_id = $1`

	var details ports.BoxDetails
	var lotCode *string

	err := r.q.QueryRow(ctx, query, boxID).Scan(
		&details.Box.BoxID, &details.Box.ProductID, &lotCode, &details.Box.CreatedAt,
		&details.Product.ID, &details.Product.Brand, &details.Product.Name,
		&details.Product.Size, &details.Product.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find box details: %w", err)
	}

	if lotCode != nil {
		details.Box.LotCode = *lotCode
	}

	return &details, nil
}

// Exists reports whether a box with the id has been created
func (r *boxRepository) Exists(ctx context.Context, boxID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM boxes WHERE box_id = $1)`, boxID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check box existence: %w", err)
	}
	return exists, nil
}
