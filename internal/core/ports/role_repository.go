package ports

import (
	"context"

	"github.com/beyond-platform/content-api/internal/core/domain"
)

// RoleRepository defines the persistence contract for the role catalog.
type RoleRepository interface {
	// Create adds a role. Returns domain.ErrRoleExists for a duplicate name.
	Create(ctx context.Context, name string) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	// Rename changes a role's name. Returns domain.ErrRoleNotFound for a
	// missing id, domain.ErrRoleExists when the new name is taken.
	Rename(ctx context.Context, id uint, name string) error
	// Delete removes a role. Returns domain.ErrRoleInUse while any user still
	// references the role, domain.ErrRoleNotFound for a missing id.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]domain.Role, error)
}
