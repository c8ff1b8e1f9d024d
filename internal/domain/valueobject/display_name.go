package valueobject

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
)

// Letters, digits, spaces, middle dot, prolonged sound mark, hyphen.
var displayNameRegex = regexp.MustCompile(`^[\p{L}\p{N}\s・ー-]+$`)

const (
	displayNameMinLength = 1
	displayNameMaxLength = 50
)

// DisplayName is a user-facing name between 1 and 50 characters.
type DisplayName struct {
	value string
}

func NewDisplayName(name string) (DisplayName, error) {
	trimmed := strings.TrimSpace(name)
	length := utf8.RuneCountInString(trimmed)
	if length < displayNameMinLength || length > displayNameMaxLength {
		return DisplayName{}, errs.Validationf(
			"Display name must be between %d and %d characters",
			displayNameMinLength, displayNameMaxLength,
		)
	}
	if !displayNameRegex.MatchString(trimmed) {
		return DisplayName{}, errs.Validation(
			"Display name can only contain letters, numbers, spaces, middle dot, and prolonged sound mark",
		)
	}
	return DisplayName{value: trimmed}, nil
}

func (d DisplayName) Value() string { return d.value }

func (d DisplayName) Equals(other DisplayName) bool { return d.value == other.value }
