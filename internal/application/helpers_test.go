package application

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HiI2O/lunch-hub/internal/domain/entity"
	"github.com/HiI2O/lunch-hub/internal/domain/valueobject"
)

func newInvitedUser(t *testing.T, id, email string) *entity.User {
	t.Helper()
	address, err := valueobject.NewEmailAddress(email)
	require.NoError(t, err)
	user := entity.InviteUser(id, address, valueobject.MustRole(valueobject.RoleGeneralUser), "admin-1")
	user.ClearDomainEvents()
	return user
}

func newActiveUser(t *testing.T, id, email string) *entity.User {
	t.Helper()
	user := newInvitedUser(t, id, email)
	hash, err := valueobject.NewPasswordHash(bcryptStub)
	require.NoError(t, err)
	name, err := valueobject.NewDisplayName("山田 太郎")
	require.NoError(t, err)
	require.NoError(t, user.Activate(hash, name))
	user.ClearDomainEvents()
	return user
}

func newDeactivatedUser(t *testing.T, id, email string) *entity.User {
	t.Helper()
	user := newActiveUser(t, id, email)
	require.NoError(t, user.Deactivate())
	user.ClearDomainEvents()
	return user
}
