package application

import (
	"context"

	"github.com/HiI2O/lunch-hub/internal/domain/repository"
)

// ForceLogoutUseCase deletes every session for a user without touching
// the user record.
type ForceLogoutUseCase struct {
	sessions repository.SessionRepository
}

func NewForceLogoutUseCase(sessions repository.SessionRepository) *ForceLogoutUseCase {
	return &ForceLogoutUseCase{sessions: sessions}
}

func (uc *ForceLogoutUseCase) Execute(ctx context.Context, userID string) error {
	return uc.sessions.DeleteAllByUserID(ctx, userID)
}
