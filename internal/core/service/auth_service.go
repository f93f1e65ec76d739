package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/beyond-platform/content-api/internal/core/domain"
	"github.com/beyond-platform/content-api/internal/core/ports"
)

// AuthService implements login and logout.
type AuthService struct {
	users    ports.UserRepository
	hasher   *PasswordHasher
	tokens   ports.TokenService
	sessions ports.SessionRevoker
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher *PasswordHasher,
	tokens ports.TokenService,
	sessions ports.SessionRevoker,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, sessions: sessions, log: log}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same answer as a wrong password: account existence stays hidden.
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.Salt, user.PasswordHash) {
		s.log.Warn().Str("username", username).Msg("failed login attempt")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("login succeeded")
	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Token is already past its expiry; nothing to revoke.
		return nil
	}
	if err := s.sessions.Revoke(ctx, tokenID, ttl); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	s.log.Info().Str("token_id", tokenID).Msg("session revoked")
	return nil
}
