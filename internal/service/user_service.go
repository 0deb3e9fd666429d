package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/wingslabs/inventory-api/internal/domain"
	"github.com/wingslabs/inventory-api/internal/platform/logger"
	"github.com/wingslabs/inventory-api/internal/store"
)

// UserInput carries the writable user fields for the create operation.
type UserInput struct {
	Name  string
	Email string
	Role  string
}

// UserService provides create/list/delete over user records.
// Users have no update operation.
type UserService interface {
	// List returns all users in store order.
	List(ctx context.Context) ([]*domain.User, error)

	// Create validates the input, assigns a new ID and stores the user.
	// Returns ErrInvalidUserInput if validation fails.
	Create(ctx context.Context, input UserInput) (*domain.User, error)

	// Delete removes the user.
	// Returns store.ErrUserNotFound if no user matches the ID; deleting the
	// same ID twice reports the second delete as not found.
	Delete(ctx context.Context, id uuid.UUID) error
}

// userService is the default UserService implementation.
type userService struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewUserService creates a UserService over the given user store.
// If logger is nil, a default logger will be used.
func NewUserService(users store.UserStore, log *slog.Logger) UserService {
	if users == nil {
		panic("users store cannot be nil for UserService")
	}

	if log == nil {
		log = slog.Default()
	}

	return &userService{
		users:  users,
		logger: log.With(slog.String("component", "user_service")),
	}
}

// List implements UserService.List
func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// Create implements UserService.Create
func (s *userService) Create(ctx context.Context, input UserInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(input.Name, input.Email, input.Role)
	if err != nil {
		log.Debug("user input rejected", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrInvalidUserInput, err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete implements UserService.Delete
func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}
