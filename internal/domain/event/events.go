package event

import "time"

// DomainEvent is an immutable record of an aggregate state change.
// Events accumulate on the aggregate; the application layer drains them
// after persistence for later dispatch.
type DomainEvent interface {
	EventName() string
	AggregateID() string
	OccurredOn() time.Time
}

type base struct {
	aggregateID string
	occurredOn  time.Time
}

func (b base) AggregateID() string   { return b.aggregateID }
func (b base) OccurredOn() time.Time { return b.occurredOn }

func newBase(aggregateID string) base {
	return base{aggregateID: aggregateID, occurredOn: time.Now()}
}

// UserInvited is emitted on invite, self-signup, and invitation resend.
// It carries the invitation token so the outer layer can build the
// activation link.
type UserInvited struct {
	base
	Email           string
	InvitationToken string
}

func NewUserInvited(aggregateID, email, invitationToken string) UserInvited {
	return UserInvited{base: newBase(aggregateID), Email: email, InvitationToken: invitationToken}
}

func (UserInvited) EventName() string { return "UserInvited" }

type UserActivated struct {
	base
}

func NewUserActivated(aggregateID string) UserActivated {
	return UserActivated{base: newBase(aggregateID)}
}

func (UserActivated) EventName() string { return "UserActivated" }

type PasswordChanged struct {
	base
}

func NewPasswordChanged(aggregateID string) PasswordChanged {
	return PasswordChanged{base: newBase(aggregateID)}
}

func (PasswordChanged) EventName() string { return "PasswordChanged" }

type UserDeactivated struct {
	base
}

func NewUserDeactivated(aggregateID string) UserDeactivated {
	return UserDeactivated{base: newBase(aggregateID)}
}

func (UserDeactivated) EventName() string { return "UserDeactivated" }

type UserReactivated struct {
	base
}

func NewUserReactivated(aggregateID string) UserReactivated {
	return UserReactivated{base: newBase(aggregateID)}
}

func (UserReactivated) EventName() string { return "UserReactivated" }
