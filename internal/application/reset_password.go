package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
	"github.com/HiI2O/lunch-hub/internal/domain/service"
	"github.com/HiI2O/lunch-hub/internal/domain/valueobject"
)

// ResetPasswordUseCase consumes a reset token, replaces the password, and
// force-logs-out the user everywhere: a password reset always terminates
// every existing session.
type ResetPasswordUseCase struct {
	users       repository.UserRepository
	resetTokens repository.PasswordResetTokenRepository
	hasher      service.PasswordHasher
	sessions    repository.SessionRepository
	logger      *logrus.Logger
}

func NewResetPasswordUseCase(
	users repository.UserRepository,
	resetTokens repository.PasswordResetTokenRepository,
	hasher service.PasswordHasher,
	sessions repository.SessionRepository,
	logger *logrus.Logger,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{users: users, resetTokens: resetTokens, hasher: hasher, sessions: sessions, logger: logger}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, token, newPassword string) error {
	record, err := uc.resetTokens.FindByToken(ctx, token)
	if err != nil {
		return err
	}
	if record == nil {
		return errs.NotFound("PasswordResetToken", token)
	}

	if record.Token.IsExpired(time.Now()) {
		return errs.Validation("Password reset token has expired")
	}

	user, err := uc.users.FindByID(ctx, record.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return errs.NotFound("User", record.UserID)
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

	if err := uc.resetTokens.DeleteByUserID(ctx, record.UserID); err != nil {
		return err
	}
	return uc.sessions.DeleteAllByUserID(ctx, record.UserID)
}
