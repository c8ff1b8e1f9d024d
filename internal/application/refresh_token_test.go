package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HiI2O/lunch-hub/internal/domain/entity"
	"github.com/HiI2O/lunch-hub/internal/domain/errs"
)

func newRefreshFixture(c *calls) (*RefreshTokenUseCase, *fakeUserRepo, *fakeSessionRepo) {
	users := newFakeUserRepo(c)
	sessions := newFakeSessionRepo(c)
	uc := NewRefreshTokenUseCase(sessions, users, &fakeTokenService{calls: c})
	return uc, users, sessions
}

func TestRefreshTokenSuccessKeepsRefreshToken(t *testing.T) {
	c := &calls{}
	uc, users, sessions := newRefreshFixture(c)
	users.add(newActiveUser(t, "user-1", "taro@example.com"))
	session := entity.NewSession("sess-1", "user-1", "old-refresh", time.Now().Add(time.Hour))
	sessions.add(session)

	accessToken, err := uc.Execute(context.Background(), "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "access-user-1", accessToken)

	// No rotation: the stored session still answers to the original
	// refresh token, and the freshly generated one is not indexed.
	stored, err := sessions.FindByRefreshToken(context.Background(), "old-refresh")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "old-refresh", stored.RefreshToken())
	missing, err := sessions.FindByRefreshToken(context.Background(), "refresh-user-1")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRefreshTokenUnknown(t *testing.T) {
	c := &calls{}
	uc, _, _ := newRefreshFixture(c)

	_, err := uc.Execute(context.Background(), "no-such-token")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Equal(t, "Invalid refresh token", err.Error())
}

func TestRefreshTokenRevokedSession(t *testing.T) {
	c := &calls{}
	uc, users, sessions := newRefreshFixture(c)
	users.add(newActiveUser(t, "user-1", "taro@example.com"))
	session := entity.NewSession("sess-1", "user-1", "old-refresh", time.Now().Add(time.Hour))
	require.NoError(t, session.Revoke())
	sessions.add(session)

	_, err := uc.Execute(context.Background(), "old-refresh")
	require.Error(t, err)
	assert.Equal(t, "Session is no longer valid", err.Error())
}

func TestRefreshTokenExpiredSession(t *testing.T) {
	c := &calls{}
	uc, users, sessions := newRefreshFixture(c)
	users.add(newActiveUser(t, "user-1", "taro@example.com"))
	sessions.add(entity.NewSession("sess-1", "user-1", "old-refresh", time.Now().Add(-time.Minute)))

	_, err := uc.Execute(context.Background(), "old-refresh")
	require.Error(t, err)
	assert.Equal(t, "Session is no longer valid", err.Error())
}

func TestRefreshTokenMissingUser(t *testing.T) {
	c := &calls{}
	uc, _, sessions := newRefreshFixture(c)
	sessions.add(entity.NewSession("sess-1", "ghost", "old-refresh", time.Now().Add(time.Hour)))

	_, err := uc.Execute(context.Background(), "old-refresh")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Equal(t, "User not found for session", err.Error())
}
