package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the verified session identity injected by the Auth
// middleware and performs a fast-fail check before any service call: a
// non-empty role and a positive user id prove the middleware ran.
func ctxIdentity(c echo.Context) (userID uint, username, role string, err error) {
	userID, _ = c.Get("user_id").(uint)
	username, _ = c.Get("username").(string)
	role, _ = c.Get("role").(string)
	if userID == 0 || role == "" {
		return 0, "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, username, role, nil
}

// ctxSession extracts the token id and expiry needed to revoke the current
// session.
func ctxSession(c echo.Context) (tokenID string, expiresAt time.Time, err error) {
	tokenID, _ = c.Get("token_id").(string)
	expiresAt, _ = c.Get("token_expiry").(time.Time)
	if tokenID == "" || expiresAt.IsZero() {
		return "", time.Time{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return tokenID, expiresAt, nil
}
