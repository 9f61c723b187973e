package domain

import (
	"errors"
	"time"
)

var (
	ErrSessionNotFound = errors.New("session not found or expired")
	ErrForbidden       = errors.New("access forbidden")
)

// Session binds an authenticated account to a bearer token for a bounded
// lifetime. It is created at login and destroyed at logout or expiry.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
