package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionDenylist records tokens revoked by logout before their natural
// expiry. Keys live exactly as long as the token would have; after that the
// verifier's own expiry check takes over.
// Key format: session:revoked:<token_id>
type SessionDenylist struct {
	client *redis.Client
}

// NewSessionDenylist creates a SessionDenylist wrapping the given Redis client.
func NewSessionDenylist(client *redis.Client) *SessionDenylist {
	return &SessionDenylist{client: client}
}

// Revoke marks the token id as dead for the remaining token lifetime.
func (d *SessionDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, d.key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token id has been revoked.
func (d *SessionDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (d *SessionDenylist) key(tokenID string) string {
	return "session:revoked:" + tokenID
}
