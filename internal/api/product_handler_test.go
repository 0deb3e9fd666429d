package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wingslabs/inventory-api/internal/domain"
	"github.com/wingslabs/inventory-api/internal/service"
	"github.com/wingslabs/inventory-api/internal/store"
)

// MockProductService is a mock implementation of service.ProductService for testing.
type MockProductService struct {
	ListFn        func(ctx context.Context) ([]*domain.Product, error)
	CreateFn      func(ctx context.Context, input service.ProductInput) (*domain.Product, error)
	UpdateFn      func(ctx context.Context, id uuid.UUID, input service.ProductInput) (*domain.Product, error)
	DeleteFn      func(ctx context.Context, id uuid.UUID) error
	AdjustStockFn func(ctx context.Context, id uuid.UUID, direction service.StockDirection, amount int) (*domain.Product, error)
}

var _ service.ProductService = (*MockProductService)(nil)

func (m *MockProductService) List(ctx context.Context) ([]*domain.Product, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *MockProductService) Create(ctx context.Context, input service.ProductInput) (*domain.Product, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, input)
	}
	return nil, nil
}

func (m *MockProductService) Update(ctx context.Context, id uuid.UUID, input service.ProductInput) (*domain.Product, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, input)
	}
	return nil, nil
}

func (m *MockProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *MockProductService) AdjustStock(
	ctx context.Context,
	id uuid.UUID,
	direction service.StockDirection,
	amount int,
) (*domain.Product, error) {
	if m.AdjustStockFn != nil {
		return m.AdjustStockFn(ctx, id, direction, amount)
	}
	return nil, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newProductRequest builds a request routed through a chi router so that
// URL parameters resolve the way they do in production.
func serveProductRequest(t *testing.T, svc service.ProductService, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewProductHandler(svc, testLogger())

	r := chi.NewRouter()
	r.Get("/api/products", handler.ListProducts)
	r.Post("/api/products", handler.CreateProduct)
	r.Put("/api/products/{id}", handler.UpdateProduct)
	r.Delete("/api/products/{id}", handler.DeleteProduct)
	r.Post("/api/products/{id}/add-stock", handler.AddStock)
	r.Post("/api/products/{id}/deduct-stock", handler.DeductStock)

	var reqBody *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func intPtr(v int) *int { return &v }

func fixedProduct() *domain.Product {
	createdAt := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Product{
		ID:          uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Name:        "Widget",
		Description: "A standard widget",
		Category:    "Tools",
		Price:       10,
		Quantity:    5,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func TestProductHandler_ListProducts(t *testing.T) {
	t.Parallel()

	t.Run("returns_products_array", func(t *testing.T) {
		t.Parallel()

		svc := &MockProductService{
			ListFn: func(ctx context.Context) ([]*domain.Product, error) {
				return []*domain.Product{fixedProduct()}, nil
			},
		}

		w := serveProductRequest(t, svc, http.MethodGet, "/api/products", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var response []ProductResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response, 1)
		assert.Equal(t, "Widget", response[0].Name)
		assert.Equal(t, 5, response[0].Quantity)
	})

	t.Run("empty_store_returns_empty_array_not_null", func(t *testing.T) {
		t.Parallel()

		svc := &MockProductService{
			ListFn: func(ctx context.Context) ([]*domain.Product, error) {
				return nil, nil
			},
		}

		w := serveProductRequest(t, svc, http.MethodGet, "/api/products", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("store_failure_returns_500", func(t *testing.T) {
		t.Parallel()

		svc := &MockProductService{
			ListFn: func(ctx context.Context) ([]*domain.Product, error) {
				return nil, assert.AnError
			},
		}

		w := serveProductRequest(t, svc, http.MethodGet, "/api/products", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestProductHandler_CreateProduct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*MockProductService)
		expectedStatus int
		expectedErrMsg string
	}{
		{
			name: "successful_creation",
			body: ProductRequest{
				Name:     "Widget",
				Category: "Tools",
				Price:    10,
				Quantity: intPtr(5),
			},
			setupMock: func(m *MockProductService) {
				m.CreateFn = func(ctx context.Context, input service.ProductInput) (*domain.Product, error) {
					assert.Equal(t, "Widget", input.Name)
					assert.Equal(t, 5, input.Quantity)
					return fixedProduct(), nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing_name",
			body: ProductRequest{
				Category: "Tools",
				Price:    10,
				Quantity: intPtr(5),
			},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid Name: required field",
		},
		{
			name: "zero_price_rejected",
			body: ProductRequest{
				Name:     "Widget",
				Category: "Tools",
				Price:    0,
				Quantity: intPtr(5),
			},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid Price: required field",
		},
		{
			name: "missing_quantity",
			body: map[string]interface{}{
				"name":     "Widget",
				"category": "Tools",
				"price":    10,
			},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid Quantity: required field",
		},
		{
			name: "zero_quantity_allowed",
			body: ProductRequest{
				Name:     "Widget",
				Category: "Tools",
				Price:    10,
				Quantity: intPtr(0),
			},
			setupMock: func(m *MockProductService) {
				m.CreateFn = func(ctx context.Context, input service.ProductInput) (*domain.Product, error) {
					assert.Equal(t, 0, input.Quantity)
					product := fixedProduct()
					product.Quantity = 0
					return product, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed_json",
			body:           "not json",
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid request format",
		},
		{
			name: "store_failure_returns_500",
			body: ProductRequest{
				Name:     "Widget",
				Category: "Tools",
				Price:    10,
				Quantity: intPtr(5),
			},
			setupMock: func(m *MockProductService) {
				m.CreateFn = func(ctx context.Context, input service.ProductInput) (*domain.Product, error) {
					return nil, assert.AnError
				}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedErrMsg: "Failed to create product",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &MockProductService{}
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			body := tt.body
			if s, ok := body.(string); ok {
				// Raw string payloads are sent as-is to exercise decode errors.
				w := serveRawProductRequest(t, svc, http.MethodPost, "/api/products", s)
				assert.Equal(t, tt.expectedStatus, w.Code)
				return
			}

			w := serveProductRequest(t, svc, http.MethodPost, "/api/products", body)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var response ProductCreatedResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, "Product added successfully", response.Message)
				assert.NotEmpty(t, response.ProductID)
				return
			}

			if tt.expectedErrMsg != "" {
				var response map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedErrMsg, response["error"])
			}
		})
	}
}

func serveRawProductRequest(t *testing.T, svc service.ProductService, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewProductHandler(svc, testLogger())
	r := chi.NewRouter()
	r.Post("/api/products", handler.CreateProduct)

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProductHandler_UpdateProduct(t *testing.T) {
	t.Parallel()

	productID := "22222222-2222-2222-2222-222222222222"

	tests := []struct {
		name           string
		path           string
		body           interface{}
		setupMock      func(*MockProductService)
		expectedStatus int
		expectedErrMsg string
	}{
		{
			name: "successful_update",
			path: "/api/products/" + productID,
			body: ProductRequest{
				Name:     "Widget v2",
				Category: "Tools",
				Price:    12.5,
				Quantity: intPtr(8),
			},
			setupMock: func(m *MockProductService) {
				m.UpdateFn = func(ctx context.Context, id uuid.UUID, input service.ProductInput) (*domain.Product, error) {
					assert.Equal(t, productID, id.String())
					assert.Equal(t, "Widget v2", input.Name)
					return fixedProduct(), nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "nonexistent_product_returns_404",
			path: "/api/products/" + productID,
			body: ProductRequest{
				Name:     "Widget",
				Category: "Tools",
				Price:    10,
				Quantity: intPtr(5),
			},
			setupMock: func(m *MockProductService) {
				m.UpdateFn = func(ctx context.Context, id uuid.UUID, input service.ProductInput) (*domain.Product, error) {
					return nil, store.ErrProductNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
			expectedErrMsg: "Product not found",
		},
		{
			name: "missing_fields_return_400",
			path: "/api/products/" + productID,
			body: ProductRequest{
				Name: "Widget",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "malformed_id_returns_400",
			path: "/api/products/not-a-uuid",
			body: ProductRequest{
				Name:     "Widget",
				Category: "Tools",
				Price:    10,
				Quantity: intPtr(5),
			},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid ID format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &MockProductService{}
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			w := serveProductRequest(t, svc, http.MethodPut, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var response MessageResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, "Product updated successfully", response.Message)
				return
			}

			if tt.expectedErrMsg != "" {
				var response map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedErrMsg, response["error"])
			}
		})
	}
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	t.Parallel()

	productID := "22222222-2222-2222-2222-222222222222"

	t.Run("successful_delete", func(t *testing.T) {
		t.Parallel()

		svc := &MockProductService{
			DeleteFn: func(ctx context.Context, id uuid.UUID) error {
				assert.Equal(t, productID, id.String())
				return nil
			},
		}

		w := serveProductRequest(t, svc, http.MethodDelete, "/api/products/"+productID, nil)

		require.Equal(t, http.StatusOK, w.Code)

		var response MessageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Product deleted successfully", response.Message)
	})

	t.Run("nonexistent_product_returns_404", func(t *testing.T) {
		t.Parallel()

		svc := &MockProductService{
			DeleteFn: func(ctx context.Context, id uuid.UUID) error {
				return store.ErrProductNotFound
			},
		}

		w := serveProductRequest(t, svc, http.MethodDelete, "/api/products/"+productID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductHandler_StockAdjustment(t *testing.T) {
	t.Parallel()

	productID := "22222222-2222-2222-2222-222222222222"

	tests := []struct {
		name            string
		path            string
		body            interface{}
		setupMock       func(*MockProductService)
		expectedStatus  int
		expectedMessage string
		expectedErrMsg  string
	}{
		{
			name: "add_stock_success",
			path: "/api/products/" + productID + "/add-stock",
			body: AdjustStockRequest{Quantity: 3},
			setupMock: func(m *MockProductService) {
				m.AdjustStockFn = func(ctx context.Context, id uuid.UUID, direction service.StockDirection, amount int) (*domain.Product, error) {
					assert.Equal(t, service.StockDirectionAdd, direction)
					assert.Equal(t, 3, amount)
					product := fixedProduct()
					product.Quantity = 8
					return product, nil
				}
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Stock added successfully, new quantity: 8",
		},
		{
			name: "deduct_stock_success",
			path: "/api/products/" + productID + "/deduct-stock",
			body: AdjustStockRequest{Quantity: 8},
			setupMock: func(m *MockProductService) {
				m.AdjustStockFn = func(ctx context.Context, id uuid.UUID, direction service.StockDirection, amount int) (*domain.Product, error) {
					assert.Equal(t, service.StockDirectionDeduct, direction)
					assert.Equal(t, 8, amount)
					product := fixedProduct()
					product.Quantity = 0
					return product, nil
				}
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Stock deducted successfully, new quantity: 0",
		},
		{
			name:           "zero_quantity_rejected_before_service",
			path:           "/api/products/" + productID + "/add-stock",
			body:           AdjustStockRequest{Quantity: 0},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid stock quantity",
		},
		{
			name:           "negative_quantity_rejected_before_service",
			path:           "/api/products/" + productID + "/deduct-stock",
			body:           AdjustStockRequest{Quantity: -5},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Invalid stock quantity",
		},
		{
			name: "insufficient_stock_returns_400",
			path: "/api/products/" + productID + "/deduct-stock",
			body: AdjustStockRequest{Quantity: 20},
			setupMock: func(m *MockProductService) {
				m.AdjustStockFn = func(ctx context.Context, id uuid.UUID, direction service.StockDirection, amount int) (*domain.Product, error) {
					return nil, store.ErrInsufficientStock
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedErrMsg: "Not enough stock to deduct",
		},
		{
			name: "missing_product_returns_404",
			path: "/api/products/" + productID + "/add-stock",
			body: AdjustStockRequest{Quantity: 3},
			setupMock: func(m *MockProductService) {
				m.AdjustStockFn = func(ctx context.Context, id uuid.UUID, direction service.StockDirection, amount int) (*domain.Product, error) {
					return nil, store.ErrProductNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
			expectedErrMsg: "Product not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &MockProductService{}
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			w := serveProductRequest(t, svc, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedMessage != "" {
				var response StockAdjustedResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedMessage, response.Message)
			}

			if tt.expectedErrMsg != "" {
				var response map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedErrMsg, response["error"])
			}
		})
	}
}
