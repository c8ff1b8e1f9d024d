package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/pkg/mailer/templates"
)

func newSignUpFixture(c *calls) (*SelfSignUpUseCase, *fakeUserRepo, *fakeEmailService, *fakeLimiter) {
	users := newFakeUserRepo(c)
	email := &fakeEmailService{calls: c}
	limiter := newFakeLimiter(c)
	uc := NewSelfSignUpUseCase(users, email, limiter, "123456", "https://lunch.example.com", nil)
	return uc, users, email, limiter
}

func TestSelfSignUpSuccess(t *testing.T) {
	c := &calls{}
	uc, users, email, limiter := newSignUpFixture(c)

	err := uc.Execute(context.Background(), "hanako@example.com", "123456")
	require.NoError(t, err)

	user := users.byEmail["hanako@example.com"]
	require.NotNil(t, user)
	assert.True(t, user.IsInvited())
	assert.Equal(t, "GENERAL_USER", user.Role().Value())
	assert.Empty(t, user.InvitedBy())

	require.Len(t, email.sent, 1)
	assert.Equal(t, "hanako@example.com", email.sent[0].To)
	assert.Equal(t, templates.SubjectActivation, email.sent[0].Subject)
	token := user.InvitationToken()
	require.NotNil(t, token)
	assert.True(t, strings.Contains(email.sent[0].HTML, "https://lunch.example.com/activate?token="+token.Token()))

	// The attempt was counted even though it succeeded.
	assert.Equal(t, 1, limiter.increments["signup:attempts:hanako@example.com"])
}

func TestSelfSignUpWrongPinCountsAttemptFirst(t *testing.T) {
	c := &calls{}
	uc, users, email, limiter := newSignUpFixture(c)

	err := uc.Execute(context.Background(), "hanako@example.com", "000000")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Equal(t, "Invalid company PIN", err.Error())

	// Increment happens before the PIN comparison.
	require.GreaterOrEqual(t, len(c.names), 2)
	assert.Equal(t, "limiter.IsRateLimited", c.names[0])
	assert.Equal(t, "limiter.Increment", c.names[1])
	assert.Equal(t, 1, limiter.increments["signup:attempts:hanako@example.com"])

	assert.Empty(t, users.saved)
	assert.Empty(t, email.sent)
}

func TestSelfSignUpRateLimited(t *testing.T) {
	c := &calls{}
	uc, _, _, limiter := newSignUpFixture(c)
	limiter.limited["signup:attempts:hanako@example.com"] = true

	err := uc.Execute(context.Background(), "hanako@example.com", "123456")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Empty(t, limiter.increments)
}

func TestSelfSignUpDuplicateEmail(t *testing.T) {
	c := &calls{}
	uc, users, email, _ := newSignUpFixture(c)
	users.add(newActiveUser(t, "user-1", "hanako@example.com"))

	err := uc.Execute(context.Background(), "hanako@example.com", "123456")
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
	assert.Empty(t, email.sent)
}

func TestConstantTimeCompare(t *testing.T) {
	assert.True(t, constantTimeCompare("123456", "123456"))
	assert.False(t, constantTimeCompare("123457", "123456"))
	assert.False(t, constantTimeCompare("12345", "123456"))
	assert.False(t, constantTimeCompare("", "123456"))
	assert.True(t, constantTimeCompare("", ""))
}
