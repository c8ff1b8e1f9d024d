package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/HiI2O/lunch-hub/internal/domain/entity"
	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
	"github.com/HiI2O/lunch-hub/internal/domain/service"
	"github.com/HiI2O/lunch-hub/internal/domain/valueobject"
)

// ActivateUserUseCase consumes an invitation token, sets the user's
// credentials, and logs the user in immediately afterwards.
type ActivateUserUseCase struct {
	users       repository.UserRepository
	sessions    repository.SessionRepository
	tokens      TokenService
	hasher      service.PasswordHasher
	invitations *service.InvitationService
	logger      *logrus.Logger
}

func NewActivateUserUseCase(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	tokens TokenService,
	hasher service.PasswordHasher,
	invitations *service.InvitationService,
	logger *logrus.Logger,
) *ActivateUserUseCase {
	return &ActivateUserUseCase{users: users, sessions: sessions, tokens: tokens, hasher: hasher, invitations: invitations, logger: logger}
}

func (uc *ActivateUserUseCase) Execute(ctx context.Context, token, password, displayName string) (*AuthResult, error) {
	user, err := uc.users.FindByInvitationToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NotFound("User", token)
	}

	// The lookup already filtered by token; the service still re-checks
	// status, value, and expiry.
	if err := uc.invitations.ValidateInvitationToken(user, token); err != nil {
		return nil, err
	}

	hashed, err := uc.hasher.Hash(ctx, password)
	if err != nil {
		return nil, err
	}
	passwordHash, err := valueobject.NewPasswordHash(hashed)
	if err != nil {
		return nil, err
	}
	name, err := valueobject.NewDisplayName(displayName)
	if err != nil {
		return nil, err
	}

	if err := user.Activate(passwordHash, name); err != nil {
		return nil, err
	}
	if err := uc.users.Save(ctx, user); err != nil {
		return nil, err
	}
	drainEvents(uc.logger, user)

	pair, err := uc.tokens.GenerateTokenPair(ctx, TokenPayload{
		UserID: user.ID(),
		Email:  user.Email().Value(),
		Role:   user.Role().Value(),
	})
	if err != nil {
		return nil, err
	}

	session := entity.NewSession(uuid.NewString(), user.ID(), pair.RefreshToken, time.Now().Add(sessionExpiry))
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return &AuthResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         authUserOf(user),
	}, nil
}
