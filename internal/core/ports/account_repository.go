package ports

import (
	"context"

	"github.com/wellness/portal/internal/core/domain"
)

// AccountRepository persists accounts keyed by email.
type AccountRepository interface {
	Exists(ctx context.Context, email string) (bool, error)
	// Insert stores a new account. The uniqueness check and the write happen
	// as one unit; a lost race returns domain.ErrDuplicateEmail.
	Insert(ctx context.Context, account *domain.Account) error
	// FindByEmail returns domain.ErrAccountNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
}
