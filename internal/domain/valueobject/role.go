package valueobject

import "github.com/HiI2O/lunch-hub/internal/domain/errs"

const (
	RoleGeneralUser   = "GENERAL_USER"
	RoleStaff         = "STAFF"
	RoleAdministrator = "ADMINISTRATOR"
)

// Role is one of the three authorization roles.
type Role struct {
	value string
}

func NewRole(role string) (Role, error) {
	switch role {
	case RoleGeneralUser, RoleStaff, RoleAdministrator:
		return Role{value: role}, nil
	}
	return Role{}, errs.Validationf("Invalid role: %s", role)
}

// MustRole is for role literals known at compile time (seeds, tests).
func MustRole(role string) Role {
	r, err := NewRole(role)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Role) Value() string { return r.value }

func (r Role) IsAdministrator() bool { return r.value == RoleAdministrator }
func (r Role) IsStaff() bool         { return r.value == RoleStaff }
func (r Role) IsGeneralUser() bool   { return r.value == RoleGeneralUser }

func (r Role) Equals(other Role) bool { return r.value == other.value }
