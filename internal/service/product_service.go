package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wingslabs/inventory-api/internal/domain"
	"github.com/wingslabs/inventory-api/internal/platform/logger"
	"github.com/wingslabs/inventory-api/internal/store"
)

// StockDirection selects whether a stock adjustment adds to or deducts from
// a product's on-hand quantity.
type StockDirection string

// Supported stock adjustment directions.
const (
	StockDirectionAdd    StockDirection = "add"
	StockDirectionDeduct StockDirection = "deduct"
)

// ProductInput carries the writable product fields for create and update
// operations. The ID and timestamps are owned by the service and store.
type ProductInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Quantity    int
}

// ProductService provides CRUD over product records and delegates quantity
// mutation to the stock ledger.
type ProductService interface {
	// List returns all products in store order.
	List(ctx context.Context) ([]*domain.Product, error)

	// Create validates the input, assigns a new ID and stores the product.
	// Returns ErrInvalidProductInput if validation fails.
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)

	// Update performs a full replace of the product's name, description,
	// category, price and quantity, then returns the updated record.
	// Returns store.ErrProductNotFound if no product matches the ID.
	// Returns ErrInvalidProductInput if validation fails.
	Update(ctx context.Context, id uuid.UUID, input ProductInput) (*domain.Product, error)

	// Delete removes the product.
	// Returns store.ErrProductNotFound if no product matches the ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// AdjustStock applies a stock delta in the given direction and returns
	// the updated product, read in the same transaction as the adjustment so
	// the returned quantity matches the committed one.
	// Returns ErrInvalidStockQuantity, store.ErrProductNotFound or
	// store.ErrInsufficientStock as the ledger reports them.
	AdjustStock(ctx context.Context, id uuid.UUID, direction StockDirection, amount int) (*domain.Product, error)
}

// productService is the default ProductService implementation.
type productService struct {
	db       *sql.DB
	products store.ProductStore
	logger   *slog.Logger
}

// NewProductService creates a ProductService over the given product store.
// The database handle is used to open transactions for stock adjustments.
// If logger is nil, a default logger will be used.
func NewProductService(db *sql.DB, products store.ProductStore, log *slog.Logger) ProductService {
	if products == nil {
		panic("products store cannot be nil for ProductService")
	}

	if log == nil {
		log = slog.Default()
	}

	return &productService{
		db:       db,
		products: products,
		logger:   log.With(slog.String("component", "product_service")),
	}
}

// List implements ProductService.List
func (s *productService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}

// Create implements ProductService.Create
func (s *productService) Create(ctx context.Context, input ProductInput) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	product, err := domain.NewProduct(
		input.Name,
		input.Description,
		input.Category,
		input.Price,
		input.Quantity,
	)
	if err != nil {
		log.Debug("product input rejected", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrInvalidProductInput, err)
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Update implements ProductService.Update
func (s *productService) Update(ctx context.Context, id uuid.UUID, input ProductInput) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	product := &domain.Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Quantity:    input.Quantity,
	}

	if err := product.Validate(); err != nil {
		log.Debug("product input rejected",
			slog.String("product_id", id.String()),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrInvalidProductInput, err)
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}

	// Re-read so callers get the store-owned fields (created_at) as well.
	return s.products.GetByID(ctx, id)
}

// Delete implements ProductService.Delete
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.products.Delete(ctx, id)
}

// AdjustStock implements ProductService.AdjustStock
func (s *productService) AdjustStock(
	ctx context.Context,
	id uuid.UUID,
	direction StockDirection,
	amount int,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Reject bad deltas before touching the database; the ledger repeats the
	// check but a transaction is pointless for an invalid request.
	if amount <= 0 {
		return nil, ErrInvalidStockQuantity
	}

	if direction != StockDirectionAdd && direction != StockDirectionDeduct {
		return nil, fmt.Errorf("%w: unsupported direction %q", ErrInvalidStockQuantity, direction)
	}

	var updated *domain.Product
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		products := s.products.WithTx(tx)
		ledger := NewStockLedger(products, s.logger)

		var (
			quantity int
			err      error
		)
		switch direction {
		case StockDirectionAdd:
			quantity, err = ledger.AddStock(ctx, id, amount)
		case StockDirectionDeduct:
			quantity, err = ledger.DeductStock(ctx, id, amount)
		}
		if err != nil {
			return err
		}

		updated, err = products.GetByID(ctx, id)
		if err != nil {
			return err
		}

		log.Debug("stock adjusted",
			slog.String("product_id", id.String()),
			slog.String("direction", string(direction)),
			slog.Int("amount", amount),
			slog.Int("quantity", quantity))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
