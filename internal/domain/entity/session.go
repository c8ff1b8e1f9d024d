package entity

import (
	"time"

	"github.com/HiI2O/lunch-hub/internal/domain/errs"
)

// Session binds a refresh token to a user. Revocation is terminal: a
// revoked session can never be un-revoked, and revoking twice is an
// error rather than a no-op so double-revoke bugs surface early.
type Session struct {
	id             string
	userID         string
	refreshToken   string
	isRevoked      bool
	createdAt      time.Time
	lastAccessedAt time.Time
	expiresAt      time.Time
}

func NewSession(id, userID, refreshToken string, expiresAt time.Time) *Session {
	now := time.Now()
	return &Session{
		id:             id,
		userID:         userID,
		refreshToken:   refreshToken,
		createdAt:      now,
		lastAccessedAt: now,
		expiresAt:      expiresAt,
	}
}

// SessionReconstructParams carries persisted fields back into the aggregate.
type SessionReconstructParams struct {
	ID             string
	UserID         string
	RefreshToken   string
	IsRevoked      bool
	CreatedAt      time.Time
	LastAccessedAt time.Time
	ExpiresAt      time.Time
}

func ReconstructSession(p SessionReconstructParams) *Session {
	return &Session{
		id:             p.ID,
		userID:         p.UserID,
		refreshToken:   p.RefreshToken,
		isRevoked:      p.IsRevoked,
		createdAt:      p.CreatedAt,
		lastAccessedAt: p.LastAccessedAt,
		expiresAt:      p.ExpiresAt,
	}
}

func (s *Session) ID() string                { return s.id }
func (s *Session) UserID() string            { return s.userID }
func (s *Session) RefreshToken() string      { return s.refreshToken }
func (s *Session) IsRevoked() bool           { return s.isRevoked }
func (s *Session) CreatedAt() time.Time      { return s.createdAt }
func (s *Session) LastAccessedAt() time.Time { return s.lastAccessedAt }
func (s *Session) ExpiresAt() time.Time      { return s.expiresAt }

func (s *Session) Revoke() error {
	if s.isRevoked {
		return errs.Validation("Session is already revoked")
	}
	s.isRevoked = true
	return nil
}

func (s *Session) UpdateLastAccessed() error {
	if s.isRevoked {
		return errs.Validation("Cannot update revoked session")
	}
	s.lastAccessedAt = time.Now()
	return nil
}

// IsValid reports whether the session may still be used: not revoked and
// not past its expiry.
func (s *Session) IsValid(now time.Time) bool {
	return !s.isRevoked && now.Before(s.expiresAt)
}

func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.expiresAt)
}
