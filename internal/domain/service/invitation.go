package service

import (
	"time"

	"github.com/HiI2O/lunch-hub/internal/domain/entity"
	"github.com/HiI2O/lunch-hub/internal/domain/errs"
)

// InvitationService validates a provided invitation token against a user.
type InvitationService struct{}

func NewInvitationService() *InvitationService {
	return &InvitationService{}
}

// ValidateInvitationToken re-checks status, presence, exact token value,
// and expiry even when the caller already looked the user up by token.
// Each failure has a distinct message but the same error kind.
func (s *InvitationService) ValidateInvitationToken(user *entity.User, token string) error {
	if !user.IsInvited() {
		return errs.Validation("User is not in invited status")
	}
	invitationToken := user.InvitationToken()
	if invitationToken == nil {
		return errs.Validation("User has no invitation token")
	}
	if invitationToken.Token() != token {
		return errs.Validation("Invalid invitation token")
	}
	if invitationToken.IsExpired(time.Now()) {
		return errs.Validation("Invitation token has expired")
	}
	return nil
}
