package domain

import (
	"errors"
	"time"
)

// RoleAdmin is the only role with administrative rights. Every other role in
// the catalog is a standard tier: read-only catalog access plus likes.
const RoleAdmin = "admin"

// DefaultRoles is the catalog seeded on first initialization. Administrators
// may extend it at runtime.
var DefaultRoles = []string{RoleAdmin, "user", "premium", "coach"}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrSelfDeletion       = errors.New("cannot delete the account of the active session")
	ErrRoleExists         = errors.New("role already exists")
	ErrRoleNotFound       = errors.New("role not found")
	ErrRoleInUse          = errors.New("role is still assigned to users")
	ErrForbidden          = errors.New("access forbidden")
	ErrTokenExpired       = errors.New("session expired")
	ErrTokenInvalid       = errors.New("invalid session token")
	ErrValidation         = errors.New("validation failed")
)

// User models an account on the platform. Accounts are created by an
// administrator (or the bootstrap seeder), never by self-service.
type User struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	Salt         string    `json:"-"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Role is a named permission tier. User.Role references a Role by name.
type Role struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
