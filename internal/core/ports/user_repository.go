package ports

import (
	"context"

	"github.com/beyond-platform/content-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
// Implementations translate storage errors into domain sentinels at this
// boundary; nothing storage-specific crosses it.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrUserExists when the
	// username is already taken, leaving the existing record untouched.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Update rewrites the stored record. Returns domain.ErrUserNotFound when
	// the id does not exist.
	Update(ctx context.Context, user *domain.User) error
	// Delete removes the user with the given id. Deleting a missing id is a
	// no-op.
	Delete(ctx context.Context, id uint) error
	// List returns all users, most recently created first.
	List(ctx context.Context) ([]domain.User, error)
}
