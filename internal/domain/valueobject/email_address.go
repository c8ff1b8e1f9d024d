package valueobject

import (
	"regexp"
	"strings"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EmailAddress is a normalized (trimmed, lowercased) email address.
// A constructed EmailAddress is always valid.
type EmailAddress struct {
	value string
}

func NewEmailAddress(email string) (EmailAddress, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(normalized) {
		return EmailAddress{}, errs.Validationf("Invalid email format: %s", email)
	}
	return EmailAddress{value: normalized}, nil
}

func (e EmailAddress) Value() string { return e.value }

func (e EmailAddress) Equals(other EmailAddress) bool { return e.value == other.value }
