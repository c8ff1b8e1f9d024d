package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
	"github.com/HiI2O/lunch-hub/internal/domain/service"
	"github.com/HiI2O/lunch-hub/internal/domain/valueobject"
)

// ChangePasswordUseCase is the authenticated self-service password change.
// The current password must verify before anything is written.
type ChangePasswordUseCase struct {
	users  repository.UserRepository
	hasher service.PasswordHasher
	auth   *service.AuthenticationService
	logger *logrus.Logger
}

func NewChangePasswordUseCase(
	users repository.UserRepository,
	hasher service.PasswordHasher,
	auth *service.AuthenticationService,
	logger *logrus.Logger,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{users: users, hasher: hasher, auth: auth, logger: logger}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errs.NotFound("User", userID)
	}

	valid, err := uc.auth.VerifyCredentials(ctx, user, currentPassword)
	if err != nil {
		return err
	}
	if !valid {
		return errs.Validation("Current password is incorrect")
	}

	hashed, err := uc.hasher.Hash(ctx, newPassword)
	if err != nil {
		return err
	}
	newHash, err := valueobject.NewPasswordHash(hashed)
	if err != nil {
		return err
	}

	if err := user.ChangePassword(newHash); err != nil {
		return err
	}
	if err := uc.users.Save(ctx, user); err != nil {
		return err
	}
	drainEvents(uc.logger, user)
	return nil
}
