package ports

import (
	"context"

	"github.com/beyond-platform/content-api/internal/core/domain"
)

type CreateUserInput struct {
	Username string
	Password string
	Role     string
}

type UpdateUserInput struct {
	ID       uint
	Username string
	Role     string
	// Password is re-hashed only when non-empty; otherwise the stored
	// credential is kept.
	Password string
}

// UserService covers account and role-catalog administration. Every operation
// here is admin-only; the router enforces that before the service is reached.
type UserService interface {
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, in UpdateUserInput) (*domain.User, error)
	// DeleteUser removes an account. actorID is the authenticated session's
	// user id; deleting it returns domain.ErrSelfDeletion.
	DeleteUser(ctx context.Context, actorID, id uint) error
	ListUsers(ctx context.Context) ([]domain.User, error)

	ListRoles(ctx context.Context) ([]domain.Role, error)
	CreateRole(ctx context.Context, name string) (*domain.Role, error)
	RenameRole(ctx context.Context, id uint, name string) error
	DeleteRole(ctx context.Context, id uint) error
}
