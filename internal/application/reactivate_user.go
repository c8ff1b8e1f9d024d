package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
)

// ReactivateUserUseCase brings a deactivated user back to ACTIVE.
type ReactivateUserUseCase struct {
	users  repository.UserRepository
	logger *logrus.Logger
}

func NewReactivateUserUseCase(users repository.UserRepository, logger *logrus.Logger) *ReactivateUserUseCase {
	return &ReactivateUserUseCase{users: users, logger: logger}
}

func (uc *ReactivateUserUseCase) Execute(ctx context.Context, userID string) error {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errs.NotFound("User", userID)
	}

	if err := user.Reactivate(); err != nil {
		return err
	}
	if err := uc.users.Save(ctx, user); err != nil {
		return err
	}
	drainEvents(uc.logger, user)
	return nil
}
