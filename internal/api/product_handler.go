package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/wingslabs/inventory-api/internal/api/shared"
	"github.com/wingslabs/inventory-api/internal/platform/logger"
	"github.com/wingslabs/inventory-api/internal/service"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	products service.ProductService
	logger   *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products service.ProductService, log *slog.Logger) *ProductHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProductHandler")
	}

	return &ProductHandler{
		products: products,
		logger:   log.With(slog.String("component", "product_handler")),
	}
}

// ListProducts handles GET /api/products requests.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	products, err := h.products.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list products")
		return
	}

	response := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, productToResponse(product))
	}

	log.Debug("products listed", slog.Int("count", len(response)))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// CreateProduct handles POST /api/products requests.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	product, err := h.products.Create(r.Context(), service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    *req.Quantity,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create product")
		return
	}

	log.Info("product created",
		slog.String("product_id", product.ID.String()),
		slog.String("name", product.Name))
	shared.RespondWithJSON(w, r, http.StatusCreated, ProductCreatedResponse{
		Message:   "Product added successfully",
		ProductID: product.ID.String(),
	})
}

// UpdateProduct handles PUT /api/products/{id} requests.
// The update is a full replace of the product's writable fields.
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req ProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if _, err := h.products.Update(r.Context(), id, service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    *req.Quantity,
	}); err != nil {
		HandleAPIError(w, r, err, "Failed to update product")
		return
	}

	log.Info("product updated", slog.String("product_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Product updated successfully",
	})
}

// DeleteProduct handles DELETE /api/products/{id} requests.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.products.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete product")
		return
	}

	log.Info("product deleted", slog.String("product_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Product deleted successfully",
	})
}

// AddStock handles POST /api/products/{id}/add-stock requests.
func (h *ProductHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	h.adjustStock(w, r, service.StockDirectionAdd)
}

// DeductStock handles POST /api/products/{id}/deduct-stock requests.
func (h *ProductHandler) DeductStock(w http.ResponseWriter, r *http.Request) {
	h.adjustStock(w, r, service.StockDirectionDeduct)
}

// adjustStock is the shared implementation behind the add-stock and
// deduct-stock endpoints.
func (h *ProductHandler) adjustStock(w http.ResponseWriter, r *http.Request, direction service.StockDirection) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req AdjustStockRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid stock quantity")
		return
	}

	product, err := h.products.AdjustStock(r.Context(), id, direction, req.Quantity)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to adjust product stock")
		return
	}

	verb := "added"
	if direction == service.StockDirectionDeduct {
		verb = "deducted"
	}

	log.Info("stock adjusted",
		slog.String("product_id", id.String()),
		slog.String("direction", string(direction)),
		slog.Int("amount", req.Quantity),
		slog.Int("quantity", product.Quantity))
	shared.RespondWithJSON(w, r, http.StatusOK, StockAdjustedResponse{
		Message: fmt.Sprintf("Stock %s successfully, new quantity: %d", verb, product.Quantity),
		Product: productToResponse(product),
	})
}
