package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/HiI2O/lunch-hub/internal/domain/entity"
	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
	"github.com/HiI2O/lunch-hub/internal/domain/service"
)

const (
	maxAuthAttempts   = 10
	authWindowSeconds = 900 // 15 minutes
	sessionExpiry     = 7 * 24 * time.Hour
)

// LoginUseCase verifies credentials and issues a token pair plus a fresh
// session. Attempts are rate-limited per email before any credential
// check happens.
type LoginUseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	tokens   TokenService
	limiter  RateLimiter
	auth     *service.AuthenticationService
}

func NewLoginUseCase(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	tokens TokenService,
	limiter RateLimiter,
	auth *service.AuthenticationService,
) *LoginUseCase {
	return &LoginUseCase{users: users, sessions: sessions, tokens: tokens, limiter: limiter, auth: auth}
}

func (uc *LoginUseCase) Execute(ctx context.Context, email, password string) (*AuthResult, error) {
	rateLimitKey := "login:attempts:" + email

	limited, err := uc.limiter.IsRateLimited(ctx, rateLimitKey, maxAuthAttempts, authWindowSeconds)
	if err != nil {
		return nil, err
	}
	if limited {
		return nil, errs.Validation("Too many login attempts. Please try again later.")
	}

	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Not incrementing the attempt counter here: only credential
		// failures count against the window.
		return nil, errs.NotFound("User", email)
	}

	valid, err := uc.auth.VerifyCredentials(ctx, user, password)
	if err != nil {
		return nil, err
	}
	if !valid {
		if err := uc.limiter.Increment(ctx, rateLimitKey, authWindowSeconds); err != nil {
			return nil, err
		}
		return nil, errs.Validation("Invalid credentials")
	}

	if err := uc.limiter.Reset(ctx, rateLimitKey); err != nil {
		return nil, err
	}

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

	user.UpdateLastLogin()
	if err := uc.users.Save(ctx, user); err != nil {
		return nil, err
	}

	return &AuthResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         authUserOf(user),
	}, nil
}
