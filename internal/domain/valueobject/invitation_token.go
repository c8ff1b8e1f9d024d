package valueobject

import (
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
)

var uuidRegex = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

const invitationTokenTTL = 48 * time.Hour

// InvitationToken is a single-use, time-boxed credential gating account
// activation. Present on a user only while the user is INVITED.
type InvitationToken struct {
	token     string
	expiresAt time.Time
}

// NewInvitationToken issues a fresh token with the default 48-hour expiry.
func NewInvitationToken() InvitationToken {
	return InvitationToken{
		token:     uuid.NewString(),
		expiresAt: time.Now().Add(invitationTokenTTL),
	}
}

// ReconstructInvitationToken rebuilds a token from persisted fields.
func ReconstructInvitationToken(token string, expiresAt time.Time) (InvitationToken, error) {
	if !uuidRegex.MatchString(token) {
		return InvitationToken{}, errs.Validationf("Invalid invitation token format: %s", token)
	}
	return InvitationToken{token: token, expiresAt: expiresAt}, nil
}

func (t InvitationToken) Token() string        { return t.token }
func (t InvitationToken) ExpiresAt() time.Time { return t.expiresAt }

func (t InvitationToken) IsExpired(now time.Time) bool {
	return !now.Before(t.expiresAt)
}

func (t InvitationToken) Equals(other InvitationToken) bool {
	return t.token == other.token && t.expiresAt.Equal(other.expiresAt)
}
