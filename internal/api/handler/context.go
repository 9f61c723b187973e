package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/wellness/portal/internal/api/middleware"
	"github.com/wellness/portal/internal/core/domain"
)

// ctxSession returns the session injected by the Auth middleware. Its absence
// means the route was registered without the middleware, so the request is
// treated as unauthenticated.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session, ok := c.Get(middleware.SessionKey).(*domain.Session)
	if !ok || session == nil {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}
