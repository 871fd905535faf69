// Package crypto hashes user credentials with bcrypt.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"economia/src/core/domain"
)

// BcryptHasher implements ports.PasswordHasher.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using the given work factor.
// Costs outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of plain. Passwords longer than bcrypt's
// 72 byte limit are a validation error on senha.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	if len(plain) > domain.MaxPasswordBytes {
		return "", domain.NewValidationError("senha", fmt.Sprintf("Senha deve ter no máximo %d bytes", domain.MaxPasswordBytes))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plain matches hash.
func (h *BcryptHasher) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
