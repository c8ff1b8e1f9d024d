package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
)

// DeactivateUserUseCase deactivates a user and deletes all of their
// sessions. The user state is saved first; session deletion follows.
type DeactivateUserUseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	logger   *logrus.Logger
}

func NewDeactivateUserUseCase(users repository.UserRepository, sessions repository.SessionRepository, logger *logrus.Logger) *DeactivateUserUseCase {
	return &DeactivateUserUseCase{users: users, sessions: sessions, logger: logger}
}

func (uc *DeactivateUserUseCase) Execute(ctx context.Context, userID string) error {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errs.NotFound("User", userID)
	}

	if err := user.Deactivate(); err != nil {
		return err
	}
	if err := uc.users.Save(ctx, user); err != nil {
		return err
	}
	drainEvents(uc.logger, user)

	return uc.sessions.DeleteAllByUserID(ctx, userID)
}
