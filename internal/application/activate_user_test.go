package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/internal/domain/service"
)

func newActivateFixture(c *calls) (*ActivateUserUseCase, *fakeUserRepo, *fakeSessionRepo) {
	users := newFakeUserRepo(c)
	sessions := newFakeSessionRepo(c)
	tokens := &fakeTokenService{calls: c}
	uc := NewActivateUserUseCase(users, sessions, tokens, &fakeHasher{calls: c}, service.NewInvitationService(), nil)
	return uc, users, sessions
}

func TestActivateUserSuccess(t *testing.T) {
	c := &calls{}
	uc, users, sessions := newActivateFixture(c)
	user := newInvitedUser(t, "user-1", "taro@example.com")
	users.add(user)
	token := user.InvitationToken().Token()

	result, err := uc.Execute(context.Background(), token, "Str0ng!pass", "山田 太郎")
	require.NoError(t, err)

	assert.True(t, user.IsActive())
	assert.Nil(t, user.InvitationToken())
	require.NotNil(t, user.DisplayName())
	assert.Equal(t, "山田 太郎", user.DisplayName().Value())
	require.NotNil(t, user.PasswordHash())

	assert.Equal(t, "access-user-1", result.AccessToken)
	assert.Equal(t, "山田 太郎", result.User.DisplayName)

	// Activation logs the user in: a session exists for the new pair.
	session, err := sessions.FindByRefreshToken(context.Background(), "refresh-user-1")
	require.NoError(t, err)
	require.NotNil(t, session)
}

func TestActivateUserUnknownToken(t *testing.T) {
	c := &calls{}
	uc, _, _ := newActivateFixture(c)

	_, err := uc.Execute(context.Background(), "9b2d9f3e-0000-4000-8000-000000000000", "Str0ng!pass", "山田 太郎")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestActivateUserAlreadyActive(t *testing.T) {
	c := &calls{}
	uc, users, _ := newActivateFixture(c)
	invited := newInvitedUser(t, "user-1", "taro@example.com")
	token := invited.InvitationToken().Token()
	users.add(invited)
	// Activate out-of-band; the repo still finds the user by the stale
	// token index, so the service guard must reject it.
	active := newActiveUser(t, "user-1", "taro@example.com")
	users.byToken[token] = active

	_, err := uc.Execute(context.Background(), token, "Str0ng!pass", "山田 太郎")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Equal(t, "User is not in invited status", err.Error())
}

func TestActivateUserInvalidDisplayName(t *testing.T) {
	c := &calls{}
	uc, users, sessions := newActivateFixture(c)
	user := newInvitedUser(t, "user-1", "taro@example.com")
	users.add(user)

	_, err := uc.Execute(context.Background(), user.InvitationToken().Token(), "Str0ng!pass", "bad<name>")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.True(t, user.IsInvited())
	assert.Empty(t, sessions.byID)
}
