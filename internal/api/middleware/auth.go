package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/beyond-platform/content-api/internal/core/domain"
	"github.com/beyond-platform/content-api/internal/core/ports"
)

// Auth verifies the bearer token and injects the verified session claims into
// the request context. Any verification failure drops the request back to the
// anonymous state with a 401; the client must log in again.
func Auth(tokens ports.TokenService, sessions ports.SessionRevoker, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			revoked, err := sessions.IsRevoked(c.Request().Context(), claims.TokenID)
			if err != nil {
				// Revocation store unavailable: the signature and expiry have
				// already been checked, so let the request through.
				log.Warn().Err(err).Msg("revocation check failed, token accepted on signature alone")
			} else if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "session revoked")
			}

			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Subject)
			c.Set("role", claims.Role)
			c.Set("token_id", claims.TokenID)
			c.Set("token_expiry", claims.ExpiresAt)

			return next(c)
		}
	}
}
