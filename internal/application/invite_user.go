package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/HiI2O/lunch-hub/internal/domain/entity"
	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
	"github.com/HiI2O/lunch-hub/internal/domain/valueobject"
	"github.com/HiI2O/lunch-hub/pkg/mailer/templates"
)

// InviteUserResult identifies the invited user.
type InviteUserResult struct {
	UserID string
	Email  string
}

// InviteUserUseCase is the admin-initiated path into the user lifecycle.
// No rate limiting: the route is admin-gated.
type InviteUserUseCase struct {
	users  repository.UserRepository
	email  EmailService
	appURL string
	logger *logrus.Logger
}

func NewInviteUserUseCase(users repository.UserRepository, email EmailService, appURL string, logger *logrus.Logger) *InviteUserUseCase {
	return &InviteUserUseCase{users: users, email: email, appURL: appURL, logger: logger}
}

func (uc *InviteUserUseCase) Execute(ctx context.Context, email, role, invitedBy string) (*InviteUserResult, error) {
	exists, err := uc.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.Conflictf("User with email %s already exists", email)
	}

	address, err := valueobject.NewEmailAddress(email)
	if err != nil {
		return nil, err
	}
	userRole, err := valueobject.NewRole(role)
	if err != nil {
		return nil, err
	}

	user := entity.InviteUser(uuid.NewString(), address, userRole, invitedBy)
	if err := uc.users.Save(ctx, user); err != nil {
		return nil, err
	}
	drainEvents(uc.logger, user)

	activationURL := uc.appURL + "/activate?token=" + invitationTokenOf(user)
	html, err := templates.InvitationHTML(activationURL)
	if err != nil {
		return nil, err
	}
	if err := uc.email.Send(ctx, EmailMessage{
		To:      email,
		Subject: templates.SubjectInvitation,
		HTML:    html,
	}); err != nil {
		return nil, err
	}

	return &InviteUserResult{UserID: user.ID(), Email: email}, nil
}
