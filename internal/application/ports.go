package application

import "context"

// TokenPayload is the claim set carried by both access and refresh tokens.
type TokenPayload struct {
	UserID string
	Email  string
	Role   string
}

// TokenPair is a freshly issued access + refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService signs and verifies JWTs. Access tokens live ~15 minutes,
// refresh tokens 7 days; the lifetimes must match the refresh cookie
// max-age set by the presentation layer.
type TokenService interface {
	GenerateTokenPair(ctx context.Context, payload TokenPayload) (TokenPair, error)
	VerifyAccessToken(ctx context.Context, token string) (TokenPayload, error)
	VerifyRefreshToken(ctx context.Context, token string) (TokenPayload, error)
}

// EmailMessage is a single outbound email.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
}

// EmailService delivers email. Failures propagate as use-case failures;
// they are never swallowed here.
type EmailService interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// RateLimiter is a per-key counter with a TTL window, not a token bucket.
type RateLimiter interface {
	IsRateLimited(ctx context.Context, key string, maxAttempts, windowSeconds int) (bool, error)
	Increment(ctx context.Context, key string, windowSeconds int) error
	Reset(ctx context.Context, key string) error
}
