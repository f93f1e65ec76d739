package ports

import (
	"context"
	"time"

	"github.com/beyond-platform/content-api/internal/core/domain"
)

// SessionClaims is the decoded, verified content of a session token. The
// server never trusts these fields without checking the signature first.
type SessionClaims struct {
	UserID    uint
	Subject   string
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

// TokenService mints and validates signed session tokens.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify returns the claims carried by a valid token. Failures are
	// domain.ErrTokenExpired or domain.ErrTokenInvalid (tampered signature,
	// foreign secret, malformed token).
	Verify(token string) (*SessionClaims, error)
}

// SessionRevoker tracks tokens invalidated before their natural expiry
// (explicit logout). Entries only need to outlive the token itself.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
