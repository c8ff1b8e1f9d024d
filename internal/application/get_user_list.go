package application

import (
	"context"

	"github.com/HiI2O/lunch-hub/internal/domain/repository"
)

// GetUserListUseCase returns every user as an admin-facing projection.
type GetUserListUseCase struct {
	users repository.UserRepository
}

func NewGetUserListUseCase(users repository.UserRepository) *GetUserListUseCase {
	return &GetUserListUseCase{users: users}
}

func (uc *GetUserListUseCase) Execute(ctx context.Context) ([]UserProfile, error) {
	users, err := uc.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]UserProfile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, profileOf(user))
	}
	return profiles, nil
}
