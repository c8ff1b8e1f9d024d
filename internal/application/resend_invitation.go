package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
	"github.com/HiI2O/lunch-hub/pkg/mailer/templates"
)

// ResendInvitationUseCase rotates the invitation token and re-sends the
// activation email. The previous token stops working.
type ResendInvitationUseCase struct {
	users  repository.UserRepository
	email  EmailService
	appURL string
	logger *logrus.Logger
}

func NewResendInvitationUseCase(users repository.UserRepository, email EmailService, appURL string, logger *logrus.Logger) *ResendInvitationUseCase {
	return &ResendInvitationUseCase{users: users, email: email, appURL: appURL, logger: logger}
}

func (uc *ResendInvitationUseCase) Execute(ctx context.Context, userID string) error {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errs.NotFound("User", userID)
	}

	if err := user.RefreshInvitationToken(); err != nil {
		return err
	}
	if err := uc.users.Save(ctx, user); err != nil {
		return err
	}
	drainEvents(uc.logger, user)

	activationURL := uc.appURL + "/activate?token=" + invitationTokenOf(user)
	html, err := templates.InvitationHTML(activationURL)
	if err != nil {
		return err
	}
	return uc.email.Send(ctx, EmailMessage{
		To:      user.Email().Value(),
		Subject: templates.SubjectInvitationResend,
		HTML:    html,
	})
}
