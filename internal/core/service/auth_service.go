package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/wellness/portal/internal/core/domain"
	"github.com/wellness/portal/internal/core/ports"
)

// AuthOptions tunes AuthService behaviour.
type AuthOptions struct {
	// StrictLoginShape applies the signup email and password composition
	// rules at login before the digest is checked. With it off, login only
	// checks the digest so accounts created under older rules can sign in.
	StrictLoginShape bool
}

// AuthService implements account creation and credential verification. It
// holds no state of its own; all persistence goes through the repository.
type AuthService struct {
	repo   ports.AccountRepository
	hasher ports.PasswordHasher
	audit  ports.AuditSink
	opts   AuthOptions
	log    zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, hasher ports.PasswordHasher, audit ports.AuditSink, opts AuthOptions, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, audit: audit, opts: opts, log: log}
}

// CreateAccount registers a new user. Checks run in a fixed order so the
// caller always sees the first failing rule.
func (s *AuthService) CreateAccount(ctx context.Context, in ports.SignupInput) error {
	if in.Email == "" || in.Password == "" {
		return domain.ErrEmptyField
	}
	if !domain.IsValidEmail(in.Email) {
		return domain.ErrInvalidEmail
	}
	if !domain.IsValidPassword(in.Password) {
		return domain.ErrWeakPassword
	}
	if in.Password != in.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}

	exists, err := s.repo.Exists(ctx, in.Email)
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	if exists {
		return domain.ErrEmailTaken
	}

	if in.Role == domain.RoleAdmin {
		return domain.ErrForbiddenRole
	}
	if in.Role != "" && !in.Role.Valid() {
		return domain.ErrInvalidRole
	}

	digest, err := s.hasher.Digest(in.Password)
	if err != nil {
		return fmt.Errorf("create account: digest: %w", err)
	}

	account := &domain.Account{
		Email:          in.Email,
		PasswordDigest: digest,
		Role:           domain.RoleUser,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("create account: %w", err)
	}

	s.record(domain.AuditSignup, in.Email, "")
	s.log.Info().Str("email", in.Email).Msg("account created")
	return nil
}

// Authenticate verifies the credentials and returns the stored account. The
// requested role never overrides the persisted one.
func (s *AuthService) Authenticate(ctx context.Context, in ports.LoginInput) (*domain.Account, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrEmptyField
	}
	if s.opts.StrictLoginShape {
		if !domain.IsValidEmail(in.Email) {
			return nil, domain.ErrInvalidEmail
		}
		if !domain.IsValidPassword(in.Password) {
			return nil, domain.ErrWeakPassword
		}
	}

	account, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.loginFailed(in.Email, "unknown email")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if !s.hasher.Matches(account.PasswordDigest, in.Password) {
		s.loginFailed(in.Email, "password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	if in.RequestedRole != "" && in.RequestedRole != account.Role {
		s.log.Debug().
			Str("email", in.Email).
			Str("requested_role", string(in.RequestedRole)).
			Str("role", string(account.Role)).
			Msg("requested role differs from stored role")
	}

	s.record(domain.AuditLogin, in.Email, string(account.Role))
	return account, nil
}

// EnsureAdmin creates an admin account unless one already exists for email.
// It is the only path that can create admins and is meant for start-up
// bootstrap, never for request handling.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return domain.ErrEmptyField
	}
	exists, err := s.repo.Exists(ctx, email)
	if err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	if exists {
		return nil
	}

	digest, err := s.hasher.Digest(password)
	if err != nil {
		return fmt.Errorf("ensure admin: digest: %w", err)
	}
	err = s.repo.Insert(ctx, &domain.Account{
		Email:          email,
		PasswordDigest: digest,
		Role:           domain.RoleAdmin,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil && !errors.Is(err, domain.ErrDuplicateEmail) {
		return fmt.Errorf("ensure admin: %w", err)
	}

	s.log.Info().Str("email", email).Msg("admin account ensured")
	return nil
}

func (s *AuthService) loginFailed(email, reason string) {
	s.record(domain.AuditLoginFailed, email, reason)
	s.log.Info().Str("email", email).Str("reason", reason).Msg("login failed")
}

func (s *AuthService) record(kind domain.AuditKind, email, detail string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{Kind: kind, Email: email, Detail: detail, At: time.Now().UTC()})
}
