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

func TestLogoutSavesRevokedStateBeforeDelete(t *testing.T) {
	c := &calls{}
	sessions := newFakeSessionRepo(c)
	session := entity.NewSession("sess-1", "user-1", "refresh-1", time.Now().Add(time.Hour))
	sessions.add(session)
	uc := NewLogoutUseCase(sessions)

	err := uc.Execute(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.True(t, session.IsRevoked())
	assert.Equal(t, []string{"sessions.FindByID", "sessions.Save", "sessions.Delete"}, c.names)
	assert.Equal(t, []string{"sess-1"}, sessions.deleted)
}

func TestLogoutUnknownSession(t *testing.T) {
	c := &calls{}
	sessions := newFakeSessionRepo(c)
	uc := NewLogoutUseCase(sessions)

	err := uc.Execute(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestLogoutAlreadyRevokedSession(t *testing.T) {
	c := &calls{}
	sessions := newFakeSessionRepo(c)
	session := entity.NewSession("sess-1", "user-1", "refresh-1", time.Now().Add(time.Hour))
	require.NoError(t, session.Revoke())
	sessions.add(session)
	uc := NewLogoutUseCase(sessions)

	err := uc.Execute(context.Background(), "sess-1")
	require.Error(t, err)
	assert.Equal(t, "Session is already revoked", err.Error())
	assert.Empty(t, sessions.deleted)
}
