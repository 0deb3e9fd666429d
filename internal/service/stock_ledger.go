package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wingslabs/inventory-api/internal/platform/logger"
	"github.com/wingslabs/inventory-api/internal/store"
)

// StockLedger applies signed quantity deltas to products while preserving the
// core invariant: a product's quantity is never observed negative in any
// committed state.
type StockLedger interface {
	// AddStock increases the product's quantity by delta and returns the new
	// quantity. There is no upper bound.
	// Returns ErrInvalidStockQuantity if delta is not a positive integer.
	// Returns store.ErrProductNotFound if the product does not exist.
	AddStock(ctx context.Context, productID uuid.UUID, delta int) (int, error)

	// DeductStock decreases the product's quantity by delta and returns the
	// new quantity. The stored quantity is left unchanged on failure.
	// Returns ErrInvalidStockQuantity if delta is not a positive integer.
	// Returns store.ErrProductNotFound if the product does not exist.
	// Returns store.ErrInsufficientStock if the current quantity is less
	// than delta.
	DeductStock(ctx context.Context, productID uuid.UUID, delta int) (int, error)
}

// stockLedger is the default StockLedger implementation over a ProductStore.
// The store applies each delta as one atomic conditional update, so two
// concurrent adjustments to the same product cannot lose each other's writes.
type stockLedger struct {
	products store.ProductStore
	logger   *slog.Logger
}

// NewStockLedger creates a StockLedger backed by the given product store.
// If logger is nil, a default logger will be used.
func NewStockLedger(products store.ProductStore, log *slog.Logger) StockLedger {
	if products == nil {
		panic("products store cannot be nil for StockLedger")
	}

	if log == nil {
		log = slog.Default()
	}

	return &stockLedger{
		products: products,
		logger:   log.With(slog.String("component", "stock_ledger")),
	}
}

// AddStock implements StockLedger.AddStock
func (l *stockLedger) AddStock(ctx context.Context, productID uuid.UUID, delta int) (int, error) {
	log := logger.FromContextOrDefault(ctx, l.logger)

	if delta <= 0 {
		log.Debug("rejected non-positive add-stock delta",
			slog.String("product_id", productID.String()),
			slog.Int("delta", delta))
		return 0, ErrInvalidStockQuantity
	}

	return l.products.AdjustQuantity(ctx, productID, delta)
}

// DeductStock implements StockLedger.DeductStock
func (l *stockLedger) DeductStock(ctx context.Context, productID uuid.UUID, delta int) (int, error) {
	log := logger.FromContextOrDefault(ctx, l.logger)

	if delta <= 0 {
		log.Debug("rejected non-positive deduct-stock delta",
			slog.String("product_id", productID.String()),
			slog.Int("delta", delta))
		return 0, ErrInvalidStockQuantity
	}

	return l.products.AdjustQuantity(ctx, productID, -delta)
}
