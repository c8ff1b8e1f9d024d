package valueobject

import (
	"time"

	"github.com/google/uuid"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
)

const passwordResetTokenTTL = 1 * time.Hour

// PasswordResetToken is a short-lived credential gating a password reset.
type PasswordResetToken struct {
	token     string
	expiresAt time.Time
}

// NewPasswordResetToken issues a fresh token with the default 1-hour expiry.
func NewPasswordResetToken() PasswordResetToken {
	return PasswordResetToken{
		token:     uuid.NewString(),
		expiresAt: time.Now().Add(passwordResetTokenTTL),
	}
}

// ReconstructPasswordResetToken rebuilds a token from persisted fields.
func ReconstructPasswordResetToken(token string, expiresAt time.Time) (PasswordResetToken, error) {
	if !uuidRegex.MatchString(token) {
		return PasswordResetToken{}, errs.Validationf("Invalid password reset token format: %s", token)
	}
	return PasswordResetToken{token: token, expiresAt: expiresAt}, nil
}

func (t PasswordResetToken) Token() string        { return t.token }
func (t PasswordResetToken) ExpiresAt() time.Time { return t.expiresAt }

func (t PasswordResetToken) IsExpired(now time.Time) bool {
	return !now.Before(t.expiresAt)
}

func (t PasswordResetToken) Equals(other PasswordResetToken) bool {
	return t.token == other.token && t.expiresAt.Equal(other.expiresAt)
}
