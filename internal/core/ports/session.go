package ports

import (
	"context"
	"time"

	"github.com/wellness/portal/internal/core/domain"
)

// SessionStore keeps live sessions until they expire or are revoked.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session, ttl time.Duration) error
	// Get returns domain.ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionService issues and resolves bearer tokens bound to sessions.
type SessionService interface {
	Start(ctx context.Context, account *domain.Account) (string, *domain.Session, error)
	Resolve(ctx context.Context, token string) (*domain.Session, error)
	End(ctx context.Context, sessionID string) error
}
