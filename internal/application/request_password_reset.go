package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/HiI2O/lunch-hub/internal/domain/repository"
	"github.com/HiI2O/lunch-hub/internal/domain/valueobject"
	"github.com/HiI2O/lunch-hub/pkg/mailer/templates"
)

// RequestPasswordResetUseCase issues a 1-hour reset token and emails the
// reset link. An unknown email or an inactive user returns success with
// no side effects so callers cannot probe which addresses exist.
type RequestPasswordResetUseCase struct {
	users       repository.UserRepository
	resetTokens repository.PasswordResetTokenRepository
	email       EmailService
	appURL      string
}

func NewRequestPasswordResetUseCase(
	users repository.UserRepository,
	resetTokens repository.PasswordResetTokenRepository,
	email EmailService,
	appURL string,
) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{users: users, resetTokens: resetTokens, email: email, appURL: appURL}
}

func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, email string) error {
	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	if !user.IsActive() {
		return nil
	}

	token := valueobject.NewPasswordResetToken()
	record := repository.PasswordResetTokenRecord{
		ID:     uuid.NewString(),
		UserID: user.ID(),
		Token:  token,
	}
	if err := uc.resetTokens.Save(ctx, record); err != nil {
		return err
	}

	resetURL := uc.appURL + "/reset-password?token=" + token.Token()
	html, err := templates.PasswordResetHTML(resetURL)
	if err != nil {
		return err
	}
	return uc.email.Send(ctx, EmailMessage{
		To:      user.Email().Value(),
		Subject: templates.SubjectPasswordReset,
		HTML:    html,
	})
}
