package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HiI2O/lunch-hub/internal/domain/entity"
	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
	"github.com/HiI2O/lunch-hub/internal/domain/valueobject"
)

func newResetFixture(c *calls) (*ResetPasswordUseCase, *fakeUserRepo, *fakeResetTokenRepo, *fakeSessionRepo) {
	users := newFakeUserRepo(c)
	resetTokens := newFakeResetTokenRepo(c)
	sessions := newFakeSessionRepo(c)
	uc := NewResetPasswordUseCase(users, resetTokens, &fakeHasher{calls: c}, sessions, nil)
	return uc, users, resetTokens, sessions
}

func TestResetPasswordClearsTokensAndSessions(t *testing.T) {
	c := &calls{}
	uc, users, resetTokens, sessions := newResetFixture(c)
	user := newActiveUser(t, "user-1", "taro@example.com")
	users.add(user)
	sessions.add(entity.NewSession("sess-1", "user-1", "refresh-1", time.Now().Add(time.Hour)))
	sessions.add(entity.NewSession("sess-2", "user-1", "refresh-2", time.Now().Add(time.Hour)))

	token := valueobject.NewPasswordResetToken()
	require.NoError(t, resetTokens.Save(context.Background(), repository.PasswordResetTokenRecord{
		ID: "prt-1", UserID: "user-1", Token: token,
	}))
	c.names = nil

	err := uc.Execute(context.Background(), token.Token(), "N3w!password")
	require.NoError(t, err)

	// User saved first, then reset tokens purged, then every session.
	assert.Equal(t, []string{
		"resetTokens.FindByToken",
		"users.FindByID",
		"hasher.Hash",
		"users.Save",
		"resetTokens.DeleteByUserID",
		"sessions.DeleteAllByUserID",
	}, c.names)
	assert.Empty(t, resetTokens.byToken)
	assert.Empty(t, sessions.byID)
}

func TestResetPasswordUnknownToken(t *testing.T) {
	c := &calls{}
	uc, _, _, _ := newResetFixture(c)

	err := uc.Execute(context.Background(), "no-such-token", "N3w!password")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestResetPasswordExpiredToken(t *testing.T) {
	c := &calls{}
	uc, users, resetTokens, _ := newResetFixture(c)
	users.add(newActiveUser(t, "user-1", "taro@example.com"))

	expired, err := valueobject.ReconstructPasswordResetToken(
		"9b2d9f3e-1111-4222-8333-444455556666", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	require.NoError(t, resetTokens.Save(context.Background(), repository.PasswordResetTokenRecord{
		ID: "prt-1", UserID: "user-1", Token: expired,
	}))

	err = uc.Execute(context.Background(), expired.Token(), "N3w!password")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Equal(t, "Password reset token has expired", err.Error())
	// The expired token is not consumed; cleanup never ran.
	assert.NotEmpty(t, resetTokens.byToken)
}

func TestResetPasswordInvitedUserFails(t *testing.T) {
	c := &calls{}
	uc, users, resetTokens, _ := newResetFixture(c)
	users.add(newInvitedUser(t, "user-1", "taro@example.com"))

	token := valueobject.NewPasswordResetToken()
	require.NoError(t, resetTokens.Save(context.Background(), repository.PasswordResetTokenRecord{
		ID: "prt-1", UserID: "user-1", Token: token,
	}))

	err := uc.Execute(context.Background(), token.Token(), "N3w!password")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}
