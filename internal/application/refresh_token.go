package application

import (
	"context"
	"time"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
)

// RefreshTokenUseCase exchanges a valid refresh token for a new access
// token. The session keeps its original refresh token: the pair generated
// here is not rotated into the store, only its access half is returned.
type RefreshTokenUseCase struct {
	sessions repository.SessionRepository
	users    repository.UserRepository
	tokens   TokenService
}

func NewRefreshTokenUseCase(
	sessions repository.SessionRepository,
	users repository.UserRepository,
	tokens TokenService,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{sessions: sessions, users: users, tokens: tokens}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, refreshToken string) (string, error) {
	session, err := uc.sessions.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if session == nil {
		return "", errs.Validation("Invalid refresh token")
	}

	// Revoked and expired are indistinguishable to the caller.
	if !session.IsValid(time.Now()) {
		return "", errs.Validation("Session is no longer valid")
	}

	user, err := uc.users.FindByID(ctx, session.UserID())
	if err != nil {
		return "", err
	}
	if user == nil {
		// A vanished user record reads as an invalid token to the
		// client, not as a missing resource.
		return "", errs.Validation("User not found for session")
	}

	pair, err := uc.tokens.GenerateTokenPair(ctx, TokenPayload{
		UserID: user.ID(),
		Email:  user.Email().Value(),
		Role:   user.Role().Value(),
	})
	if err != nil {
		return "", err
	}

	if err := session.UpdateLastAccessed(); err != nil {
		return "", err
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return "", err
	}

	return pair.AccessToken, nil
}
