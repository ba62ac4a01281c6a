package hash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type BcryptHasher struct {
	cost int
}

var _ Hasher = (*BcryptHasher)(nil)

// NewBcryptHasher returns a hasher with the given cost, clamped to bcrypt's supported range.
func NewBcryptHasher(cost int) *BcryptHasher {
	cost = max(cost, bcrypt.MinCost)
	cost = min(cost, bcrypt.MaxCost)
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %d bytes", ErrPasswordTooLong, len(plain))
	}
	if err != nil {
		return "", fmt.Errorf("bcrypt hash with cost %d: %w", h.cost, err)
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Verify(plain, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("bcrypt compare: %w", err)
}
