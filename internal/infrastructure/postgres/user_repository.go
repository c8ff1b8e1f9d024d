package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/HiI2O/lunch-hub/internal/domain/entity"
	"github.com/HiI2O/lunch-hub/internal/domain/errs"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
	"github.com/HiI2O/lunch-hub/internal/domain/valueobject"
)

const userColumns = `id, email, display_name, password_hash, role, status,
	invitation_token, invitation_token_expires_at, invited_by,
	invited_at, activated_at, last_login_at, created_at, updated_at, version`

// UserRepository is the pgx-backed implementation of
// repository.UserRepository. Save enforces optimistic locking on the
// version column; a stale write surfaces as a CONFLICT error.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Save(ctx context.Context, user *entity.User) error {
	row := newUserRow(user)
	if user.Version() == 0 {
		_, err := r.pool.Exec(ctx, `
			INSERT INTO users (`+userColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, 1)`,
			row.id, row.email, row.displayName, row.passwordHash, row.role, row.status,
			row.invitationToken, row.invitationTokenExpiresAt, row.invitedBy,
			row.invitedAt, row.activatedAt, row.lastLoginAt, row.createdAt, row.updatedAt)
		return err
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET
			email = $2, display_name = $3, password_hash = $4, role = $5, status = $6,
			invitation_token = $7, invitation_token_expires_at = $8, invited_by = $9,
			invited_at = $10, activated_at = $11, last_login_at = $12,
			created_at = $13, updated_at = $14, version = version + 1
		WHERE id = $1 AND version = $15`,
		row.id, row.email, row.displayName, row.passwordHash, row.role, row.status,
		row.invitationToken, row.invitationTokenExpiresAt, row.invitedBy,
		row.invitedAt, row.activatedAt, row.lastLoginAt, row.createdAt, row.updatedAt,
		user.Version())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.Conflictf("User %s was modified concurrently", user.ID())
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) FindByInvitationToken(ctx context.Context, token string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE invitation_token = $1`, token)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	user, err := scanUser(r.pool.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

type userRow struct {
	id                       string
	email                    string
	displayName              *string
	passwordHash             *string
	role                     string
	status                   string
	invitationToken          *string
	invitationTokenExpiresAt *time.Time
	invitedBy                *string
	invitedAt                *time.Time
	activatedAt              *time.Time
	lastLoginAt              *time.Time
	createdAt                time.Time
	updatedAt                time.Time
	version                  int
}

func newUserRow(user *entity.User) userRow {
	row := userRow{
		id:        user.ID(),
		email:     user.Email().Value(),
		role:      user.Role().Value(),
		status:    user.Status().Value(),
		createdAt: user.CreatedAt(),
		updatedAt: user.UpdatedAt(),
	}
	if dn := user.DisplayName(); dn != nil {
		v := dn.Value()
		row.displayName = &v
	}
	if ph := user.PasswordHash(); ph != nil {
		v := ph.Value()
		row.passwordHash = &v
	}
	if t := user.InvitationToken(); t != nil {
		tok := t.Token()
		exp := t.ExpiresAt()
		row.invitationToken = &tok
		row.invitationTokenExpiresAt = &exp
	}
	if by := user.InvitedBy(); by != "" {
		row.invitedBy = &by
	}
	row.invitedAt = nullableTime(user.InvitedAt())
	row.activatedAt = nullableTime(user.ActivatedAt())
	row.lastLoginAt = nullableTime(user.LastLoginAt())
	return row
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var r userRow
	err := row.Scan(&r.id, &r.email, &r.displayName, &r.passwordHash, &r.role, &r.status,
		&r.invitationToken, &r.invitationTokenExpiresAt, &r.invitedBy,
		&r.invitedAt, &r.activatedAt, &r.lastLoginAt, &r.createdAt, &r.updatedAt, &r.version)
	if err != nil {
		return nil, err
	}
	return r.toEntity()
}

func (r userRow) toEntity() (*entity.User, error) {
	email, err := valueobject.NewEmailAddress(r.email)
	if err != nil {
		return nil, err
	}
	role, err := valueobject.NewRole(r.role)
	if err != nil {
		return nil, err
	}
	status, err := valueobject.NewUserStatus(r.status)
	if err != nil {
		return nil, err
	}
	params := entity.UserReconstructParams{
		ID:        r.id,
		Email:     email,
		Role:      role,
		Status:    status,
		CreatedAt: r.createdAt,
		UpdatedAt: r.updatedAt,
		Version:   r.version,
	}
	if r.displayName != nil {
		dn, err := valueobject.NewDisplayName(*r.displayName)
		if err != nil {
			return nil, err
		}
		params.DisplayName = &dn
	}
	if r.passwordHash != nil {
		ph, err := valueobject.NewPasswordHash(*r.passwordHash)
		if err != nil {
			return nil, err
		}
		params.PasswordHash = &ph
	}
	if r.invitationToken != nil && r.invitationTokenExpiresAt != nil {
		token, err := valueobject.ReconstructInvitationToken(*r.invitationToken, *r.invitationTokenExpiresAt)
		if err != nil {
			return nil, err
		}
		params.InvitationToken = &token
	}
	if r.invitedBy != nil {
		params.InvitedBy = *r.invitedBy
	}
	params.InvitedAt = timeOrZero(r.invitedAt)
	params.ActivatedAt = timeOrZero(r.activatedAt)
	params.LastLoginAt = timeOrZero(r.lastLoginAt)
	return entity.ReconstructUser(params), nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
