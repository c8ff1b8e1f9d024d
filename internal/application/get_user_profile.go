package application

import (
	"context"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
)

type GetUserProfileUseCase struct {
	users repository.UserRepository
}

func NewGetUserProfileUseCase(users repository.UserRepository) *GetUserProfileUseCase {
	return &GetUserProfileUseCase{users: users}
}

func (uc *GetUserProfileUseCase) Execute(ctx context.Context, userID string) (*UserProfile, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NotFound("User", userID)
	}
	profile := profileOf(user)
	return &profile, nil
}
