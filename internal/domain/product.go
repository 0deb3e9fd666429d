package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common product validation errors
var (
	ErrEmptyProductID       = errors.New("product ID cannot be empty")
	ErrEmptyProductName     = errors.New("product name cannot be empty")
	ErrEmptyProductCategory = errors.New("product category cannot be empty")
	ErrNonPositivePrice     = errors.New("product price must be greater than zero")
	ErrNegativeQuantity     = errors.New("product quantity cannot be negative")
)

// Product represents a single item tracked by the inventory.
// Quantity is the on-hand stock count and must never be negative;
// the stores enforce this on every mutation.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProduct creates a new Product with the given fields.
// It generates a new UUID for the product ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewProduct(name, description, category string, price float64, quantity int) (*Product, error) {
	now := time.Now().UTC()
	product := &Product{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Category:    category,
		Price:       price,
		Quantity:    quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate checks if the Product has valid data.
// Returns an error if any field fails validation.
func (p *Product) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProductID
	}

	if p.Name == "" {
		return ErrEmptyProductName
	}

	if p.Category == "" {
		return ErrEmptyProductCategory
	}

	// The server-side contract adopts the stricter rule: a zero price is
	// rejected, a zero quantity is allowed so sold-out products stay editable.
	if p.Price <= 0 {
		return ErrNonPositivePrice
	}

	if p.Quantity < 0 {
		return ErrNegativeQuantity
	}

	return nil
}
