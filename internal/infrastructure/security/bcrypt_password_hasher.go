package security

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/HiI2O/lunch-hub/internal/domain/service"
)

const bcryptCost = 12

// BcryptPasswordHasher implements service.PasswordHasher with bcrypt at
// cost 12. Hash mismatch is a negative result, not an error.
type BcryptPasswordHasher struct{}

func NewBcryptPasswordHasher() *BcryptPasswordHasher {
	return &BcryptPasswordHasher{}
}

var _ service.PasswordHasher = (*BcryptPasswordHasher)(nil)

func (h *BcryptPasswordHasher) Hash(ctx context.Context, plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptPasswordHasher) Compare(ctx context.Context, plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
