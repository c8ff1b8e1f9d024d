package repository

import (
	"context"

	"github.com/HiI2O/lunch-hub/internal/domain/entity"
)

// SessionRepository persists Session aggregates. Lookups return (nil, nil)
// when the session does not exist.
type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session) error
	FindByID(ctx context.Context, id string) (*entity.Session, error)
	FindByRefreshToken(ctx context.Context, token string) (*entity.Session, error)
	FindByUserID(ctx context.Context, userID string) ([]*entity.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteAllByUserID(ctx context.Context, userID string) error
}
