package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wellness/portal/internal/api/metrics"
	"github.com/wellness/portal/internal/core/domain"
	"github.com/wellness/portal/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	sessions    ports.SessionService
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// Signup creates a new user account.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup form"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err := h.authService.CreateAccount(c.Request().Context(), ports.SignupInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            domain.Role(req.Role),
	})
	metrics.SignupsTotal.WithLabelValues(signupResult(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, signupResponse{Email: req.Email, Role: domain.RoleUser})
}

// CheckSignup reports, without touching the store, whether the email and
// password would pass the signup shape rules.
//
// @Summary      Check signup fields
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupCheckRequest  true  "Email and password to check"
// @Success      200   {object}  signupCheckResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/signup/check [post]
func (h *AuthHandler) CheckSignup(c echo.Context) error {
	var req signupCheckRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	resp := signupCheckResponse{
		Valid:         true,
		EmailAccepted: domain.IsValidEmail(req.Email),
		Password:      domain.CheckPassword(req.Password),
	}
	if err := c.Validate(&req); err != nil {
		resp.Valid = false
		resp.Message = err.Error()
	}
	return c.JSON(http.StatusOK, resp)
}

// Login verifies credentials and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	ctx := c.Request().Context()
	account, err := h.authService.Authenticate(ctx, ports.LoginInput{
		Email:         req.Email,
		Password:      req.Password,
		RequestedRole: domain.Role(req.Role),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	token, session, err := h.sessions.Start(ctx, account)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Account:   account,
	})
}

// Logout ends the current session.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.sessions.End(c.Request().Context(), session.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the identity bound to the current session.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{
		Email:     session.Email,
		Role:      session.Role,
		ExpiresAt: session.ExpiresAt,
	})
}

func signupResult(err error) string {
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, domain.ErrEmptyField):
		return "empty_field"
	case errors.Is(err, domain.ErrInvalidEmail):
		return "invalid_email"
	case errors.Is(err, domain.ErrWeakPassword):
		return "weak_password"
	case errors.Is(err, domain.ErrPasswordMismatch):
		return "password_mismatch"
	case errors.Is(err, domain.ErrEmailTaken):
		return "email_taken"
	case errors.Is(err, domain.ErrForbiddenRole), errors.Is(err, domain.ErrInvalidRole):
		return "invalid_role"
	default:
		return "error"
	}
}
