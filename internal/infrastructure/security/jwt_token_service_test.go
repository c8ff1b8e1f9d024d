package security

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HiI2O/lunch-hub/internal/application"
)

func newTestService() *JWTTokenService {
	return NewJWTTokenService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestTokenPairRoundTrip(t *testing.T) {
	svc := newTestService()
	payload := application.TokenPayload{UserID: "user-1", Email: "taro@example.com", Role: "STAFF"}

	pair, err := svc.GenerateTokenPair(context.Background(), payload)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	got, err := svc.VerifyAccessToken(context.Background(), pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	got, err = svc.VerifyRefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	svc := newTestService()
	pair, err := svc.GenerateTokenPair(context.Background(), application.TokenPayload{UserID: "user-1"})
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(context.Background(), pair.RefreshToken)
	assert.Error(t, err)
	_, err = svc.VerifyRefreshToken(context.Background(), pair.AccessToken)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	pair, err := newTestService().GenerateTokenPair(context.Background(), application.TokenPayload{UserID: "user-1"})
	require.NoError(t, err)

	other := NewJWTTokenService("different-secret", "refresh-secret", time.Minute, time.Minute)
	_, err = other.VerifyAccessToken(context.Background(), pair.AccessToken)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := NewJWTTokenService("access-secret", "refresh-secret", -time.Minute, -time.Minute)
	pair, err := svc.GenerateTokenPair(context.Background(), application.TokenPayload{UserID: "user-1"})
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(context.Background(), pair.AccessToken)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := newTestService().VerifyAccessToken(context.Background(), "not.a.jwt")
	assert.Error(t, err)
}
