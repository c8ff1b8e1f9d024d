package valueobject

import "github.com/HiI2O/lunch-hub/internal/domain/errs"

const (
	StatusInvited     = "INVITED"
	StatusActive      = "ACTIVE"
	StatusDeactivated = "DEACTIVATED"
)

// UserStatus is the user lifecycle state: INVITED -> ACTIVE <-> DEACTIVATED.
type UserStatus struct {
	value string
}

func NewUserStatus(status string) (UserStatus, error) {
	switch status {
	case StatusInvited, StatusActive, StatusDeactivated:
		return UserStatus{value: status}, nil
	}
	return UserStatus{}, errs.Validationf("Invalid user status: %s", status)
}

func (s UserStatus) Value() string { return s.value }

func (s UserStatus) IsInvited() bool     { return s.value == StatusInvited }
func (s UserStatus) IsActive() bool      { return s.value == StatusActive }
func (s UserStatus) IsDeactivated() bool { return s.value == StatusDeactivated }

func (s UserStatus) Equals(other UserStatus) bool { return s.value == other.value }
