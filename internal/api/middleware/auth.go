package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wellness/portal/internal/core/ports"
)

// Context keys set by Auth.
const (
	SessionKey = "session"
	EmailKey   = "email"
	RoleKey    = "role"
)

// Auth resolves the bearer token to a live session and injects it into the
// context. Revoked or expired sessions are rejected even when the token
// signature is still valid.
func Auth(sessions ports.SessionService) echo.MiddlewareFunc {
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

			session, err := sessions.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
			}

			c.Set(SessionKey, session)
			c.Set(EmailKey, session.Email)
			c.Set(RoleKey, session.Role)

			return next(c)
		}
	}
}
