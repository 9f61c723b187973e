package ports

import (
	"context"

	"github.com/wellness/portal/internal/core/domain"
)

// SignupInput carries the signup form.
type SignupInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	Role            domain.Role
}

// LoginInput carries the login form. RequestedRole only informs UI routing;
// the stored role is authoritative.
type LoginInput struct {
	Email         string
	Password      string
	RequestedRole domain.Role
}

type AuthService interface {
	CreateAccount(ctx context.Context, in SignupInput) error
	Authenticate(ctx context.Context, in LoginInput) (*domain.Account, error)
}
