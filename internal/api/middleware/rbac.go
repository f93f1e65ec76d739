package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/beyond-platform/content-api/internal/core/domain"
)

// RBAC enforces role-based access control. A session whose role is not in the
// allowed set is refused with domain.ErrForbidden, which the central error
// handler renders as 403; the refusal is never silently ignored, and it is
// logged.
func RBAC(log zerolog.Logger, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				username, _ := c.Get("username").(string)
				log.Warn().
					Str("username", username).
					Str("role", role).
					Str("method", c.Request().Method).
					Str("path", c.Path()).
					Msg("operation refused: insufficient role")
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
