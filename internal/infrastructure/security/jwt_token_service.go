package security

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/HiI2O/lunch-hub/internal/application"
)

// JWTTokenService signs and verifies HS256 tokens. Access and refresh
// tokens use separate secrets so a leaked access secret cannot mint
// refresh tokens.
type JWTTokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewJWTTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTTokenService {
	return &JWTTokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

var _ application.TokenService = (*JWTTokenService)(nil)

type claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (s *JWTTokenService) GenerateTokenPair(ctx context.Context, payload application.TokenPayload) (application.TokenPair, error) {
	access, err := sign(payload, s.accessSecret, s.accessTTL)
	if err != nil {
		return application.TokenPair{}, err
	}
	refresh, err := sign(payload, s.refreshSecret, s.refreshTTL)
	if err != nil {
		return application.TokenPair{}, err
	}
	return application.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *JWTTokenService) VerifyAccessToken(ctx context.Context, token string) (application.TokenPayload, error) {
	return verify(token, s.accessSecret)
}

func (s *JWTTokenService) VerifyRefreshToken(ctx context.Context, token string) (application.TokenPayload, error) {
	return verify(token, s.refreshSecret)
}

func sign(payload application.TokenPayload, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	c := &claims{
		UserID: payload.UserID,
		Email:  payload.Email,
		Role:   payload.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(secret)
}

func verify(token string, secret []byte) (application.TokenPayload, error) {
	c := &claims{}
	parsed, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return application.TokenPayload{}, err
	}
	if !parsed.Valid {
		return application.TokenPayload{}, errors.New("invalid token")
	}
	return application.TokenPayload{UserID: c.UserID, Email: c.Email, Role: c.Role}, nil
}
