package api

import (
	"time"

	"github.com/wingslabs/inventory-api/internal/domain"
)

// Common request/response structures

// ProductRequest defines the payload for product create and update endpoints.
// Both operations carry the full set of writable fields; update is a full
// replace. Quantity is a pointer so zero survives the required check — a
// sold-out product is still a valid product.
type ProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"    validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Quantity    *int    `json:"quantity"    validate:"required,gte=0"`
}

// AdjustStockRequest defines the payload for the add-stock and deduct-stock
// endpoints. The delta must be a positive integer; direction comes from the
// route.
type AdjustStockRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// ProductResponse represents the response data for a product.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductCreatedResponse defines the successful response for product creation.
type ProductCreatedResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"productId"`
}

// StockAdjustedResponse defines the successful response for stock adjustments.
// The updated product is included so clients can reconcile their local state
// against the committed record instead of patching it optimistically.
type StockAdjustedResponse struct {
	Message string          `json:"message"`
	Product ProductResponse `json:"product"`
}

// MessageResponse defines a bare confirmation response.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateUserRequest defines the payload for the user creation endpoint.
type CreateUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"  validate:"required"`
}

// UserResponse represents the response data for a user.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCreatedResponse defines the successful response for user creation.
type UserCreatedResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// productToResponse converts a domain.Product to a ProductResponse.
func productToResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Price:       product.Price,
		Quantity:    product.Quantity,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// userToResponse converts a domain.User to a UserResponse.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
