package entity

import (
	"time"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/internal/domain/event"
	"github.com/HiI2O/lunch-hub/internal/domain/valueobject"
)

// User is the aggregate root for identity and access. Its lifecycle is a
// state machine: INVITED -> ACTIVE <-> DEACTIVATED, with INVITED ->
// DEACTIVATED reachable by cancelling the invitation. PasswordHash and
// DisplayName are nil exactly while INVITED; InvitationToken is non-nil
// exactly while INVITED. All transitions are guarded and emit domain
// events that accumulate on the instance until drained.
type User struct {
	id              string
	email           valueobject.EmailAddress
	displayName     *valueobject.DisplayName
	passwordHash    *valueobject.PasswordHash
	role            valueobject.Role
	status          valueobject.UserStatus
	invitationToken *valueobject.InvitationToken
	invitedBy       string
	invitedAt       time.Time
	activatedAt     time.Time
	lastLoginAt     time.Time
	createdAt       time.Time
	updatedAt       time.Time
	version         int

	events []event.DomainEvent
}

// InviteUser creates a new INVITED user with a fresh invitation token.
// invitedBy is the inviting administrator's ID, empty for system seeds.
func InviteUser(id string, email valueobject.EmailAddress, role valueobject.Role, invitedBy string) *User {
	now := time.Now()
	token := valueobject.NewInvitationToken()
	u := &User{
		id:              id,
		email:           email,
		role:            role,
		status:          mustStatus(valueobject.StatusInvited),
		invitationToken: &token,
		invitedBy:       invitedBy,
		invitedAt:       now,
		createdAt:       now,
		updatedAt:       now,
	}
	u.record(event.NewUserInvited(id, email.Value(), token.Token()))
	return u
}

// SelfSignUpUser creates a new INVITED user from self-service signup.
// The role is always GENERAL_USER and there is no inviting user.
func SelfSignUpUser(id string, email valueobject.EmailAddress) *User {
	u := InviteUser(id, email, valueobject.MustRole(valueobject.RoleGeneralUser), "")
	return u
}

// UserReconstructParams carries persisted fields back into the aggregate.
type UserReconstructParams struct {
	ID              string
	Email           valueobject.EmailAddress
	DisplayName     *valueobject.DisplayName
	PasswordHash    *valueobject.PasswordHash
	Role            valueobject.Role
	Status          valueobject.UserStatus
	InvitationToken *valueobject.InvitationToken
	InvitedBy       string
	InvitedAt       time.Time
	ActivatedAt     time.Time
	LastLoginAt     time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int
}

// ReconstructUser rebuilds an aggregate from persistence without guards
// or events.
func ReconstructUser(p UserReconstructParams) *User {
	return &User{
		id:              p.ID,
		email:           p.Email,
		displayName:     p.DisplayName,
		passwordHash:    p.PasswordHash,
		role:            p.Role,
		status:          p.Status,
		invitationToken: p.InvitationToken,
		invitedBy:       p.InvitedBy,
		invitedAt:       p.InvitedAt,
		activatedAt:     p.ActivatedAt,
		lastLoginAt:     p.LastLoginAt,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
		version:         p.Version,
	}
}

func (u *User) ID() string                                    { return u.id }
func (u *User) Email() valueobject.EmailAddress               { return u.email }
func (u *User) DisplayName() *valueobject.DisplayName         { return u.displayName }
func (u *User) PasswordHash() *valueobject.PasswordHash       { return u.passwordHash }
func (u *User) Role() valueobject.Role                        { return u.role }
func (u *User) Status() valueobject.UserStatus                { return u.status }
func (u *User) InvitationToken() *valueobject.InvitationToken { return u.invitationToken }
func (u *User) InvitedBy() string                             { return u.invitedBy }
func (u *User) InvitedAt() time.Time                          { return u.invitedAt }
func (u *User) ActivatedAt() time.Time                        { return u.activatedAt }
func (u *User) LastLoginAt() time.Time                        { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time                          { return u.createdAt }
func (u *User) UpdatedAt() time.Time                          { return u.updatedAt }
func (u *User) Version() int                                  { return u.version }

// Activate consumes the invitation token, sets credentials, and moves the
// user to ACTIVE.
func (u *User) Activate(passwordHash valueobject.PasswordHash, displayName valueobject.DisplayName) error {
	if !u.status.IsInvited() {
		return errs.Validation("Only invited users can be activated")
	}
	if u.invitationToken != nil && u.invitationToken.IsExpired(time.Now()) {
		return errs.Validation("Invitation token has expired")
	}
	now := time.Now()
	u.passwordHash = &passwordHash
	u.displayName = &displayName
	u.status = mustStatus(valueobject.StatusActive)
	u.invitationToken = nil
	u.activatedAt = now
	u.updatedAt = now
	u.record(event.NewUserActivated(u.id))
	return nil
}

func (u *User) ChangePassword(newHash valueobject.PasswordHash) error {
	if !u.status.IsActive() {
		return errs.Validation("Only active users can change password")
	}
	u.passwordHash = &newHash
	u.updatedAt = time.Now()
	u.record(event.NewPasswordChanged(u.id))
	return nil
}

// ChangeRole intentionally emits no event; role changes are not
// event-sourced in this design.
func (u *User) ChangeRole(newRole valueobject.Role) error {
	if !u.status.IsActive() {
		return errs.Validation("Only active users can have their role changed")
	}
	u.role = newRole
	u.updatedAt = time.Now()
	return nil
}

func (u *User) Deactivate() error {
	if !u.status.IsActive() {
		return errs.Validation("Only active users can be deactivated")
	}
	u.status = mustStatus(valueobject.StatusDeactivated)
	u.updatedAt = time.Now()
	u.record(event.NewUserDeactivated(u.id))
	return nil
}

func (u *User) Reactivate() error {
	if !u.status.IsDeactivated() {
		return errs.Validation("Only deactivated users can be reactivated")
	}
	u.status = mustStatus(valueobject.StatusActive)
	u.updatedAt = time.Now()
	u.record(event.NewUserReactivated(u.id))
	return nil
}

// RefreshInvitationToken issues a new token for an invitation resend.
func (u *User) RefreshInvitationToken() error {
	if !u.status.IsInvited() {
		return errs.Validation("Only invited users can have their token refreshed")
	}
	token := valueobject.NewInvitationToken()
	u.invitationToken = &token
	u.updatedAt = time.Now()
	u.record(event.NewUserInvited(u.id, u.email.Value(), token.Token()))
	return nil
}

// CancelInvitation clears the token and moves the user to DEACTIVATED
// without ever having been active. No event.
func (u *User) CancelInvitation() error {
	if !u.status.IsInvited() {
		return errs.Validation("Only invited users can have their invitation cancelled")
	}
	u.invitationToken = nil
	u.status = mustStatus(valueobject.StatusDeactivated)
	u.updatedAt = time.Now()
	return nil
}

// UpdateLastLogin stamps the login time. No state guard, no event.
func (u *User) UpdateLastLogin() {
	now := time.Now()
	u.lastLoginAt = now
	u.updatedAt = now
}

func (u *User) IsActive() bool  { return u.status.IsActive() }
func (u *User) IsInvited() bool { return u.status.IsInvited() }

// CanLogin reports whether credential verification may even be attempted.
func (u *User) CanLogin() bool {
	return u.status.IsActive() && u.passwordHash != nil
}

func (u *User) HasRole(role string) bool {
	return u.role.Value() == role
}

func (u *User) record(e event.DomainEvent) {
	u.events = append(u.events, e)
}

// DomainEvents returns the accumulated events without clearing them.
func (u *User) DomainEvents() []event.DomainEvent {
	return u.events
}

// PullDomainEvents drains the accumulated events; the application layer
// calls this after a successful save.
func (u *User) PullDomainEvents() []event.DomainEvent {
	events := u.events
	u.events = nil
	return events
}

// ClearDomainEvents discards accumulated events without dispatch (seeds).
func (u *User) ClearDomainEvents() {
	u.events = nil
}

func mustStatus(status string) valueobject.UserStatus {
	s, err := valueobject.NewUserStatus(status)
	if err != nil {
		panic(err)
	}
	return s
}
