package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wellness/portal/internal/core/domain"
	"github.com/wellness/portal/internal/core/ports"
)

// SessionService issues HS256 bearer tokens whose jti names a session kept
// in the store. A token is only honoured while its session still exists, so
// logout revokes it before expiry.
type SessionService struct {
	store     ports.SessionStore
	audit     ports.AuditSink
	jwtSecret string
	ttl       time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

func NewSessionService(store ports.SessionStore, audit ports.AuditSink, jwtSecret string, ttl time.Duration, log zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{
		store:     store,
		audit:     audit,
		jwtSecret: jwtSecret,
		ttl:       ttl,
		log:       log,
		now:       time.Now,
	}
}

// Start opens a session for an authenticated account and returns its token.
func (s *SessionService) Start(ctx context.Context, account *domain.Account) (string, *domain.Session, error) {
	now := s.now().UTC()
	session := &domain.Session{
		ID:        uuid.NewString(),
		Email:     account.Email,
		Role:      account.Role,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.store.Save(ctx, session, s.ttl); err != nil {
		return "", nil, fmt.Errorf("start session: %w", err)
	}

	token, err := s.generateToken(session)
	if err != nil {
		_ = s.store.Delete(ctx, session.ID)
		return "", nil, fmt.Errorf("start session: sign token: %w", err)
	}

	s.log.Info().Str("email", session.Email).Str("session_id", session.ID).Msg("session started")
	return token, session, nil
}

// Resolve validates the token and returns the live session it refers to.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid || claims.ID == "" {
		return nil, domain.ErrSessionNotFound
	}

	session, err := s.store.Get(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	if session.Email != claims.Subject || session.Expired(s.now()) {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// End destroys the session. Ending an unknown session is not an error.
func (s *SessionService) End(ctx context.Context, sessionID string) error {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return fmt.Errorf("end session: %w", err)
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("end session: %w", err)
	}

	if session != nil {
		if s.audit != nil {
			s.audit.Record(domain.AuditEvent{Kind: domain.AuditLogout, Email: session.Email, At: s.now().UTC()})
		}
		s.log.Info().Str("email", session.Email).Str("session_id", sessionID).Msg("session ended")
	}
	return nil
}

func (s *SessionService) generateToken(session *domain.Session) (string, error) {
	claims := sessionClaims{
		Role: string(session.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   session.Email,
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
