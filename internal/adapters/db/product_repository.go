// internal/adapters/db/product_repository.go
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

// productRepository implements ports.ProductRepository
type productRepository struct {
	q      ports.Querier
	logger *slog.Logger
}

// NewProductRepository creates a new product repository
func NewProductRepository(q ports.Querier, logger *slog.Logger) ports.ProductRepository {
	return &productRepository{
		q:      q,
		logger: logger.With(slog.String("repository", "products")),
	}
}

// Insert stores a new product
func (r *productRepository) Insert(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (id, brand, name, size, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.q.Exec(ctx, query,
		product.ID, product.Brand, product.Name, product.Size, product.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.DebugContext(ctx, "product inserted",
		slog.String("product_id", product.ID.String()),
		slog.String("name", product.Name))

	return nil
}

// FindByID returns the product or (nil, nil) when it does not exist
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `
		SELECT id, brand, name, size, created_at
		FROM products
		WHERE id = $1`

	var product domain.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&product.ID, &product.Brand, &product.Name, &product.Size, &product.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return &product, nil
}

// FindAll returns all products ordered by brand then name
func (r *productRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, brand, name, size, created_at
		FROM products
		ORDER BY brand ASC, name ASC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var product domain.Product
		err := rows.Scan(&product.ID, &product.Brand, &product.Name,
			&product.Size, &product.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}
