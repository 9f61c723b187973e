package middleware

import (
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/wellness/portal/internal/core/domain"
)

// RBAC lets the request through only when the session role set by Auth is
// one of roles. A route group without Auth in front of it is always denied.
func RBAC(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(RoleKey).(domain.Role)
			if !ok || !slices.Contains(roles, role) {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
