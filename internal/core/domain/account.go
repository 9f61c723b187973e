package domain

import (
	"errors"
	"time"
)

// Role is an account's authorization level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var (
	ErrEmptyField         = errors.New("email and password cannot be empty")
	ErrInvalidEmail       = errors.New("email must end with " + AcceptedEmailSuffix)
	ErrWeakPassword       = errors.New("password must contain upper and lower case letters and a digit, and no symbols")
	ErrPasswordMismatch   = errors.New("password and confirmation do not match")
	ErrEmailTaken         = errors.New("email already exists")
	ErrDuplicateEmail     = errors.New("duplicate email")
	ErrForbiddenRole      = errors.New("cannot sign up with admin role")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("account not found")
)

// ParseRole converts a raw role string into a Role. An empty string maps to
// RoleUser, the only role available to self-registration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "", RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", ErrInvalidRole
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Account is a registered user. PasswordDigest never leaves the process.
type Account struct {
	Email          string    `json:"email"`
	PasswordDigest string    `json:"-"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// IsAdmin reports whether the account may manage articles.
func (a *Account) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}
