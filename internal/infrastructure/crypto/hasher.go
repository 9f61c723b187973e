package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/wellness/portal/internal/core/ports"
)

// Hasher kinds accepted by New.
const (
	KindSHA256 = "sha256"
	KindBcrypt = "bcrypt"
)

// New returns the hasher registered under kind. An empty kind selects SHA-256.
func New(kind string) (ports.PasswordHasher, error) {
	switch kind {
	case "", KindSHA256:
		return SHA256Hasher{}, nil
	case KindBcrypt:
		return BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", kind)
	}
}

// SHA256Hasher produces the unsalted lowercase-hex SHA-256 of the password.
// Digests are 64 characters and stable across processes, so accounts written
// by earlier deployments keep working.
type SHA256Hasher struct{}

func (SHA256Hasher) Digest(plaintext string) (string, error) {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256Hasher) Matches(digest, plaintext string) bool {
	got, _ := h.Digest(plaintext)
	return subtle.ConstantTimeCompare([]byte(got), []byte(digest)) == 1
}

// BcryptHasher stores salted bcrypt hashes.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Digest(plaintext string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

func (BcryptHasher) Matches(digest, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
