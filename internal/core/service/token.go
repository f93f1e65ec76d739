package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/beyond-platform/content-api/internal/core/domain"
	"github.com/beyond-platform/content-api/internal/core/ports"
)

// TokenService mints and verifies HS256 session tokens. The signing secret is
// loaded once at startup and shared read-only across all verifications.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: secret, ttl: ttl, now: time.Now}
}

// Issue mints a token carrying subject, user id, role, a random token id, and
// an absolute expiry of now + TTL. There is no refresh: expiry forces a full
// re-login.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"uid":  user.ID,
		"role": user.Role,
		"jti":  newTokenID(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the decoded claims. The
// signing algorithm is pinned to HS256; a token re-signed under any other
// method is rejected outright.
func (s *TokenService) Verify(token string) (*ports.SessionClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	jti, _ := claims["jti"].(string)
	uid, _ := claims["uid"].(float64)
	exp, expErr := claims.GetExpirationTime()
	if sub == "" || role == "" || jti == "" || uid < 1 || expErr != nil || exp == nil {
		return nil, domain.ErrTokenInvalid
	}

	return &ports.SessionClaims{
		UserID:    uint(uid),
		Subject:   sub,
		Role:      role,
		TokenID:   jti,
		ExpiresAt: exp.Time,
	}, nil
}

// newTokenID returns a 128-bit random identifier used for revocation.
func newTokenID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
