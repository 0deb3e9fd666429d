package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/wingslabs/inventory-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Users have no update operation; records are created, listed and deleted.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// List returns all users, ordered by creation time.
	List(ctx context.Context) ([]*domain.User, error)

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
