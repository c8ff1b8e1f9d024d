package repository

import (
	"context"

	"github.com/HiI2O/lunch-hub/internal/domain/valueobject"
)

// PasswordResetTokenRecord links a reset token to the requesting user.
// A user may hold several concurrent records; no single-token invariant
// is enforced at this layer.
type PasswordResetTokenRecord struct {
	ID     string
	UserID string
	Token  valueobject.PasswordResetToken
}

// PasswordResetTokenRepository persists reset token records. FindByToken
// returns (nil, nil) when the token does not exist.
type PasswordResetTokenRepository interface {
	Save(ctx context.Context, record PasswordResetTokenRecord) error
	FindByToken(ctx context.Context, token string) (*PasswordResetTokenRecord, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
