package application

import (
	"time"

	"github.com/HiI2O/lunch-hub/internal/domain/entity"
)

// AuthUser is the public user projection returned with issued tokens.
type AuthUser struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

// AuthResult is the shape shared by login and activation.
type AuthResult struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"-"`
	User         AuthUser `json:"user"`
}

// UserProfile is the admin-facing projection of a user.
type UserProfile struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"displayName"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func authUserOf(user *entity.User) AuthUser {
	return AuthUser{
		ID:          user.ID(),
		Email:       user.Email().Value(),
		DisplayName: displayNameOf(user),
		Role:        user.Role().Value(),
	}
}

func profileOf(user *entity.User) UserProfile {
	var lastLogin *time.Time
	if t := user.LastLoginAt(); !t.IsZero() {
		lastLogin = &t
	}
	return UserProfile{
		ID:          user.ID(),
		Email:       user.Email().Value(),
		DisplayName: displayNameOf(user),
		Role:        user.Role().Value(),
		Status:      user.Status().Value(),
		LastLoginAt: lastLogin,
		CreatedAt:   user.CreatedAt(),
	}
}

func displayNameOf(user *entity.User) string {
	if name := user.DisplayName(); name != nil {
		return name.Value()
	}
	return ""
}
