package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/medicore/clinic-system/internal/core/domain"
)

// BcryptHasher implements password hashing with bcrypt. The salt is
// generated per call and embedded in the record; comparison inside bcrypt
// is constant-time.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given cost. Costs outside
// bcrypt's supported range fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(plaintext, record string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(record), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		// Anything else is a structural problem with the stored record
		// (truncated, wrong prefix, unknown version).
		return false, fmt.Errorf("%w: %v", domain.ErrInvalidHashFormat, err)
	}
}
