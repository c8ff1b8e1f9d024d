package valueobject

import (
	"regexp"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
)

var bcryptRegex = regexp.MustCompile(`^\$2[aby]\$\d{2}\$.{53}$`)

// PasswordHash holds a bcrypt-shaped password hash. The hashing itself is
// a capability of the infrastructure; this type only guards the shape so
// plaintext can never be stored by mistake.
type PasswordHash struct {
	value string
}

func NewPasswordHash(hash string) (PasswordHash, error) {
	if !bcryptRegex.MatchString(hash) {
		return PasswordHash{}, errs.Validation("Invalid password hash format")
	}
	return PasswordHash{value: hash}, nil
}

func (p PasswordHash) Value() string { return p.value }

func (p PasswordHash) Equals(other PasswordHash) bool { return p.value == other.value }
