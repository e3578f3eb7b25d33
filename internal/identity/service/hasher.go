package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	autherror "github.com/codewise-hub/identity-service/internal/errors"
	"github.com/codewise-hub/identity-service/pkg/constant"
)

// PasswordHasher wraps bcrypt with a fixed work factor. Digests embed a
// random salt, so hashing the same plaintext twice yields different
// digests; Verify is the only way to relate plaintext and digest.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = constant.DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash refuses empty plaintext so an account intended to have a password
// can never end up with a digest of nothing.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", autherror.ErrPasswordRequired
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(digest), nil
}

func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
