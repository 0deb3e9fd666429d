package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/wingslabs/inventory-api/internal/domain"
	"github.com/wingslabs/inventory-api/internal/platform/logger"
	"github.com/wingslabs/inventory-api/internal/store"
)

// PostgresProductStore implements the store.ProductStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProductStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProductStore creates a new PostgreSQL implementation of the
// ProductStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresProductStore(db store.DBTX, logger *slog.Logger) *PostgresProductStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProductStore{
		db:     db,
		logger: logger.With(slog.String("component", "product_store")),
	}
}

// Ensure PostgresProductStore implements store.ProductStore interface
var _ store.ProductStore = (*PostgresProductStore)(nil)

// WithTx implements store.ProductStore.WithTx
// It returns a new store instance scoped to the given transaction.
func (s *PostgresProductStore) WithTx(tx *sql.Tx) store.ProductStore {
	return &PostgresProductStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.ProductStore.Create
// It saves a new product to the database, handling domain validation.
func (s *PostgresProductStore) Create(ctx context.Context, product *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := product.Validate(); err != nil {
		log.Warn("product validation failed during create",
			slog.String("error", err.Error()),
			slog.String("product_id", product.ID.String()))
		return err
	}

	query := `
		INSERT INTO products (id, name, description, category, price, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.Description,
		product.Category,
		product.Price,
		product.Quantity,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create product",
			slog.String("error", err.Error()),
			slog.String("product_id", product.ID.String()))
		return MapError(err)
	}

	log.Info("product created successfully",
		slog.String("product_id", product.ID.String()),
		slog.String("name", product.Name),
		slog.Int("quantity", product.Quantity))
	return nil
}

// GetByID implements store.ProductStore.GetByID
// It retrieves a product by its unique ID.
// Returns store.ErrProductNotFound if the product does not exist.
func (s *PostgresProductStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, category, price, quantity, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var product domain.Product
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Category,
		&product.Price,
		&product.Quantity,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("product not found", slog.String("product_id", id.String()))
			return nil, store.ErrProductNotFound
		}
		log.Error("failed to get product by ID",
			slog.String("error", err.Error()),
			slog.String("product_id", id.String()))
		return nil, MapError(err)
	}

	return &product, nil
}

// List implements store.ProductStore.List
// It returns all products ordered by creation time.
func (s *PostgresProductStore) List(ctx context.Context) ([]*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, category, price, quantity, created_at, updated_at
		FROM products
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list products", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Category,
			&product.Price,
			&product.Quantity,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			log.Error("failed to scan product row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating product rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("products listed", slog.Int("count", len(products)))
	return products, nil
}

// Update implements store.ProductStore.Update
// It performs a full replace of the product's mutable fields.
// Returns store.ErrProductNotFound if the product does not exist.
func (s *PostgresProductStore) Update(ctx context.Context, product *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := product.Validate(); err != nil {
		log.Warn("product validation failed during update",
			slog.String("error", err.Error()),
			slog.String("product_id", product.ID.String()))
		return err
	}

	query := `
		UPDATE products
		SET name = $2, description = $3, category = $4, price = $5, quantity = $6, updated_at = $7
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.Description,
		product.Category,
		product.Price,
		product.Quantity,
		time.Now().UTC(),
	)

	if err != nil {
		log.Error("failed to update product",
			slog.String("error", err.Error()),
			slog.String("product_id", product.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrProductNotFound); err != nil {
		log.Debug("product not found during update",
			slog.String("product_id", product.ID.String()))
		return err
	}

	log.Info("product updated successfully",
		slog.String("product_id", product.ID.String()))
	return nil
}

// Delete implements store.ProductStore.Delete
// It removes a product from the store by its ID.
// Returns store.ErrProductNotFound if the product does not exist.
func (s *PostgresProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete product",
			slog.String("error", err.Error()),
			slog.String("product_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrProductNotFound); err != nil {
		log.Debug("product not found during delete",
			slog.String("product_id", id.String()))
		return err
	}

	log.Info("product deleted successfully", slog.String("product_id", id.String()))
	return nil
}

// AdjustQuantity implements store.ProductStore.AdjustQuantity
// The signed delta is applied as a single conditional UPDATE so concurrent
// adjustments to the same product cannot lose each other's writes, and a
// deduction can never be observed as a negative quantity.
func (s *PostgresProductStore) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE products
		SET quantity = quantity + $2, updated_at = $3
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING quantity
	`

	var quantity int
	err := s.db.QueryRowContext(ctx, query, id, delta, time.Now().UTC()).Scan(&quantity)
	if err == nil {
		log.Info("product quantity adjusted",
			slog.String("product_id", id.String()),
			slog.Int("delta", delta),
			slog.Int("quantity", quantity))
		return quantity, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		log.Error("failed to adjust product quantity",
			slog.String("error", err.Error()),
			slog.String("product_id", id.String()),
			slog.Int("delta", delta))
		return 0, MapError(err)
	}

	// No row matched: either the product is missing or the deduction would
	// drive the quantity negative. Disambiguate with an existence check.
	var exists bool
	if err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`,
		id,
	).Scan(&exists); err != nil {
		log.Error("failed to check product existence after rejected adjustment",
			slog.String("error", err.Error()),
			slog.String("product_id", id.String()))
		return 0, MapError(err)
	}

	if !exists {
		log.Debug("product not found during quantity adjustment",
			slog.String("product_id", id.String()))
		return 0, store.ErrProductNotFound
	}

	log.Debug("stock deduction rejected, insufficient quantity",
		slog.String("product_id", id.String()),
		slog.Int("delta", delta))
	return 0, store.ErrInsufficientStock
}
