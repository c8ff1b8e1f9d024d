package application

import (
	"context"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
)

// LogoutUseCase revokes and removes a session. The revoked state is saved
// before the delete so a crash in between leaves a revoked-but-present
// record rather than a silently vanished one.
type LogoutUseCase struct {
	sessions repository.SessionRepository
}

func NewLogoutUseCase(sessions repository.SessionRepository) *LogoutUseCase {
	return &LogoutUseCase{sessions: sessions}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, sessionID string) error {
	session, err := uc.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return errs.NotFound("Session", sessionID)
	}

	if err := session.Revoke(); err != nil {
		return err
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return err
	}
	return uc.sessions.Delete(ctx, sessionID)
}
