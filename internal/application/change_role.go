package application

import (
	"context"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
	"github.com/HiI2O/lunch-hub/internal/domain/valueobject"
)

// ChangeRoleUseCase reassigns a user's role. Role changes emit no event.
type ChangeRoleUseCase struct {
	users repository.UserRepository
}

func NewChangeRoleUseCase(users repository.UserRepository) *ChangeRoleUseCase {
	return &ChangeRoleUseCase{users: users}
}

func (uc *ChangeRoleUseCase) Execute(ctx context.Context, userID, newRole string) error {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errs.NotFound("User", userID)
	}

	role, err := valueobject.NewRole(newRole)
	if err != nil {
		return err
	}
	if err := user.ChangeRole(role); err != nil {
		return err
	}
	return uc.users.Save(ctx, user)
}
