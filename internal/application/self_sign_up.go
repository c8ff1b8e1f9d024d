package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/HiI2O/lunch-hub/internal/domain/entity"
	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
	"github.com/HiI2O/lunch-hub/internal/domain/valueobject"
	"github.com/HiI2O/lunch-hub/pkg/mailer/templates"
)

// SelfSignUpUseCase registers a new GENERAL_USER gated by the shared
// company PIN, then emails the activation link.
type SelfSignUpUseCase struct {
	users      repository.UserRepository
	email      EmailService
	limiter    RateLimiter
	companyPin string
	appURL     string
	logger     *logrus.Logger
}

func NewSelfSignUpUseCase(
	users repository.UserRepository,
	email EmailService,
	limiter RateLimiter,
	companyPin string,
	appURL string,
	logger *logrus.Logger,
) *SelfSignUpUseCase {
	return &SelfSignUpUseCase{users: users, email: email, limiter: limiter, companyPin: companyPin, appURL: appURL, logger: logger}
}

func (uc *SelfSignUpUseCase) Execute(ctx context.Context, email, pin string) error {
	rateLimitKey := "signup:attempts:" + email

	limited, err := uc.limiter.IsRateLimited(ctx, rateLimitKey, maxAuthAttempts, authWindowSeconds)
	if err != nil {
		return err
	}
	if limited {
		return errs.Validation("Too many signup attempts. Please try again later.")
	}

	// Count the attempt before the PIN check so wrong-PIN retries burn
	// the budget.
	if err := uc.limiter.Increment(ctx, rateLimitKey, authWindowSeconds); err != nil {
		return err
	}

	if !constantTimeCompare(pin, uc.companyPin) {
		return errs.Validation("Invalid company PIN")
	}

	exists, err := uc.users.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return errs.Conflictf("User with email %s already exists", email)
	}

	address, err := valueobject.NewEmailAddress(email)
	if err != nil {
		return err
	}
	user := entity.SelfSignUpUser(uuid.NewString(), address)

	if err := uc.users.Save(ctx, user); err != nil {
		return err
	}
	drainEvents(uc.logger, user)

	activationURL := uc.appURL + "/activate?token=" + invitationTokenOf(user)
	html, err := templates.ActivationHTML(activationURL)
	if err != nil {
		return err
	}
	return uc.email.Send(ctx, EmailMessage{
		To:      email,
		Subject: templates.SubjectActivation,
		HTML:    html,
	})
}

// constantTimeCompare walks the full input even on a length mismatch so
// neither content nor length leaks through timing.
func constantTimeCompare(a, b string) bool {
	if len(a) != len(b) {
		result := len(a) ^ len(b)
		for i := 0; i < len(a); i++ {
			var bc byte
			if len(b) > 0 {
				bc = b[i%len(b)]
			}
			result |= int(a[i]) ^ int(bc)
		}
		return result == 0
	}
	result := 0
	for i := 0; i < len(a); i++ {
		result |= int(a[i]) ^ int(b[i])
	}
	return result == 0
}

func invitationTokenOf(user *entity.User) string {
	if token := user.InvitationToken(); token != nil {
		return token.Token()
	}
	return ""
}
