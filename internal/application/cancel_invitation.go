package application

import (
	"context"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
)

// CancelInvitationUseCase withdraws a pending invitation, leaving the
// user DEACTIVATED.
type CancelInvitationUseCase struct {
	users repository.UserRepository
}

func NewCancelInvitationUseCase(users repository.UserRepository) *CancelInvitationUseCase {
	return &CancelInvitationUseCase{users: users}
}

func (uc *CancelInvitationUseCase) Execute(ctx context.Context, userID string) error {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errs.NotFound("User", userID)
	}

	if err := user.CancelInvitation(); err != nil {
		return err
	}
	return uc.users.Save(ctx, user)
}
