package service

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/wingslabs/inventory-api/internal/domain"
	"github.com/wingslabs/inventory-api/internal/store"
)

// MockProductStore is a function-field mock implementation of store.ProductStore.
type MockProductStore struct {
	CreateFn         func(ctx context.Context, product *domain.Product) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListFn           func(ctx context.Context) ([]*domain.Product, error)
	UpdateFn         func(ctx context.Context, product *domain.Product) error
	DeleteFn         func(ctx context.Context, id uuid.UUID) error
	AdjustQuantityFn func(ctx context.Context, id uuid.UUID, delta int) (int, error)
}

var _ store.ProductStore = (*MockProductStore)(nil)

func (m *MockProductStore) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, product)
	}
	return nil
}

func (m *MockProductStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrProductNotFound
}

func (m *MockProductStore) List(ctx context.Context) ([]*domain.Product, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *MockProductStore) Update(ctx context.Context, product *domain.Product) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, product)
	}
	return nil
}

func (m *MockProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *MockProductStore) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	if m.AdjustQuantityFn != nil {
		return m.AdjustQuantityFn(ctx, id, delta)
	}
	return 0, store.ErrProductNotFound
}

func (m *MockProductStore) WithTx(tx *sql.Tx) store.ProductStore {
	return m
}

// MockUserStore is a function-field mock implementation of store.UserStore.
type MockUserStore struct {
	CreateFn  func(ctx context.Context, user *domain.User) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListFn    func(ctx context.Context) ([]*domain.User, error)
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// memProductStore is an in-memory ProductStore with real stock-adjustment
// semantics, used to exercise the ledger across sequences of operations.
type memProductStore struct {
	mu       sync.Mutex
	products map[uuid.UUID]*domain.Product
}

var _ store.ProductStore = (*memProductStore)(nil)

func newMemProductStore() *memProductStore {
	return &memProductStore{products: make(map[uuid.UUID]*domain.Product)}
}

func (m *memProductStore) Create(ctx context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := product.Validate(); err != nil {
		return err
	}
	copied := *product
	m.products[product.ID] = &copied
	return nil
}

func (m *memProductStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, ok := m.products[id]
	if !ok {
		return nil, store.ErrProductNotFound
	}
	copied := *product
	return &copied, nil
}

func (m *memProductStore) List(ctx context.Context) ([]*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Product, 0, len(m.products))
	for _, product := range m.products {
		copied := *product
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memProductStore) Update(ctx context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := product.Validate(); err != nil {
		return err
	}
	existing, ok := m.products[product.ID]
	if !ok {
		return store.ErrProductNotFound
	}
	copied := *product
	copied.CreatedAt = existing.CreatedAt
	m.products[product.ID] = &copied
	return nil
}

func (m *memProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return store.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *memProductStore) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, ok := m.products[id]
	if !ok {
		return 0, store.ErrProductNotFound
	}
	if product.Quantity+delta < 0 {
		return 0, store.ErrInsufficientStock
	}
	product.Quantity += delta
	return product.Quantity, nil
}

func (m *memProductStore) WithTx(tx *sql.Tx) store.ProductStore {
	return m
}
