package ports

import (
	"context"
	"time"

	"github.com/beyond-platform/content-api/internal/core/domain"
)

// AuthService handles the anonymous -> authenticated transition and back.
type AuthService interface {
	// Login verifies the credential and mints a session token. All credential
	// failures surface as domain.ErrInvalidCredentials; whether the username
	// exists is never revealed.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout revokes the session identified by tokenID until expiresAt, after
	// which the token is dead on its own.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}
