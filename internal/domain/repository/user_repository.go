package repository

import (
	"context"

	"github.com/HiI2O/lunch-hub/internal/domain/entity"
)

// UserRepository persists User aggregates. Save upserts by ID and bumps
// the optimistic-concurrency version; lookups return (nil, nil) when the
// user does not exist.
type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByInvitationToken(ctx context.Context, token string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
}
