package service

import (
	"context"

	"github.com/HiI2O/lunch-hub/internal/domain/entity"
	"github.com/HiI2O/lunch-hub/internal/domain/errs"
)

// AuthenticationService verifies a user's plaintext credentials against
// the stored hash.
type AuthenticationService struct {
	hasher PasswordHasher
}

func NewAuthenticationService(hasher PasswordHasher) *AuthenticationService {
	return &AuthenticationService{hasher: hasher}
}

// VerifyCredentials returns false (not an error) on a wrong password; the
// caller decides failure semantics. It fails outright when the user is
// not in a loginable state, so we never run a hash comparison against a
// missing hash.
func (s *AuthenticationService) VerifyCredentials(ctx context.Context, user *entity.User, plainPassword string) (bool, error) {
	if !user.CanLogin() {
		return false, errs.Validation("User cannot login")
	}
	hash := user.PasswordHash()
	if hash == nil {
		return false, nil
	}
	return s.hasher.Compare(ctx, plainPassword, hash.Value())
}
