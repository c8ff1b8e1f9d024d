package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/HiI2O/lunch-hub/internal/domain/repository"
	"github.com/HiI2O/lunch-hub/internal/domain/valueobject"
)

// PasswordResetTokenRepository is the pgx-backed implementation of
// repository.PasswordResetTokenRepository.
type PasswordResetTokenRepository struct {
	pool *pgxpool.Pool
}

func NewPasswordResetTokenRepository(pool *pgxpool.Pool) *PasswordResetTokenRepository {
	return &PasswordResetTokenRepository{pool: pool}
}

var _ repository.PasswordResetTokenRepository = (*PasswordResetTokenRepository)(nil)

func (r *PasswordResetTokenRepository) Save(ctx context.Context, record repository.PasswordResetTokenRecord) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO password_reset_tokens (id, user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		record.ID, record.UserID, record.Token.Token(), record.Token.ExpiresAt(), time.Now())
	return err
}

func (r *PasswordResetTokenRepository) FindByToken(ctx context.Context, token string) (*repository.PasswordResetTokenRecord, error) {
	var (
		id, userID, raw string
		expiresAt       time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, token, expires_at FROM password_reset_tokens WHERE token = $1`,
		token).Scan(&id, &userID, &raw, &expiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	vo, err := valueobject.ReconstructPasswordResetToken(raw, expiresAt)
	if err != nil {
		return nil, err
	}
	return &repository.PasswordResetTokenRecord{ID: id, UserID: userID, Token: vo}, nil
}

func (r *PasswordResetTokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM password_reset_tokens WHERE user_id = $1`, userID)
	return err
}
