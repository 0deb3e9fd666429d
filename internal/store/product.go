package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/wingslabs/inventory-api/internal/domain"
)

// ProductStore defines the interface for product data persistence.
type ProductStore interface {
	// Create saves a new product to the store.
	// It validates the product before writing.
	// Returns validation errors from the domain Product if data is invalid.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by its unique ID.
	// Returns ErrProductNotFound if the product does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)

	// List returns all products, ordered by creation time.
	List(ctx context.Context) ([]*domain.Product, error)

	// Update replaces an existing product's name, description, category,
	// price and quantity in a single write.
	// Returns ErrProductNotFound if the product does not exist.
	// Returns validation errors from the domain Product if data is invalid.
	Update(ctx context.Context, product *domain.Product) error

	// Delete removes a product from the store by its ID.
	// Returns ErrProductNotFound if the product does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// AdjustQuantity applies a signed stock delta as a single atomic
	// conditional update and returns the resulting quantity.
	// Returns ErrProductNotFound if the product does not exist.
	// Returns ErrInsufficientStock if the delta would drive the quantity
	// negative; the stored quantity is left unchanged in that case.
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) (int, error)

	// WithTx returns a new ProductStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) ProductStore
}
