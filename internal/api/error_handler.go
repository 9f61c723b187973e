package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wellness/portal/internal/core/domain"
	"github.com/wellness/portal/internal/infrastructure/inference"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

// domainStatus lists the sentinel errors with a fixed status. The domain
// message is safe to show to the client.
var domainStatus = []struct {
	err  error
	code int
}{
	{domain.ErrEmptyField, http.StatusBadRequest},
	{domain.ErrInvalidEmail, http.StatusBadRequest},
	{domain.ErrWeakPassword, http.StatusBadRequest},
	{domain.ErrPasswordMismatch, http.StatusBadRequest},
	{domain.ErrMissingField, http.StatusBadRequest},
	{domain.ErrInvalidRole, http.StatusBadRequest},
	{domain.ErrEmailTaken, http.StatusConflict},
	{domain.ErrDuplicateEmail, http.StatusConflict},
	{domain.ErrForbiddenRole, http.StatusForbidden},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrSessionNotFound, http.StatusUnauthorized},
	{domain.ErrAccountNotFound, http.StatusNotFound},
	{domain.ErrArticleNotFound, http.StatusNotFound},
	{domain.ErrOutOfRange, http.StatusUnprocessableEntity},
	{domain.ErrUnknownValue, http.StatusUnprocessableEntity},
	{domain.ErrUnknownClass, http.StatusBadGateway},
	{inference.ErrNotConfigured, http.StatusServiceUnavailable},
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	for _, ds := range domainStatus {
		if errors.Is(err, ds.err) {
			return ds.code, err.Error()
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
