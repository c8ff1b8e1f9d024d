package application

import (
	"context"

	"github.com/HiI2O/lunch-hub/internal/domain/entity"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
)

// calls records the order of repository and port invocations so tests
// can assert sequencing, not just effects.
type calls struct {
	names []string
}

func (c *calls) record(name string) {
	c.names = append(c.names, name)
}

type fakeUserRepo struct {
	calls   *calls
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
	byToken map[string]*entity.User
	saved   []*entity.User
}

func newFakeUserRepo(c *calls) *fakeUserRepo {
	return &fakeUserRepo{
		calls:   c,
		byID:    map[string]*entity.User{},
		byEmail: map[string]*entity.User{},
		byToken: map[string]*entity.User{},
	}
}

func (r *fakeUserRepo) add(user *entity.User) {
	r.byID[user.ID()] = user
	r.byEmail[user.Email().Value()] = user
	if token := user.InvitationToken(); token != nil {
		r.byToken[token.Token()] = user
	}
}

func (r *fakeUserRepo) Save(ctx context.Context, user *entity.User) error {
	r.calls.record("users.Save")
	r.saved = append(r.saved, user)
	r.add(user)
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	r.calls.record("users.FindByID")
	return r.byID[id], nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.calls.record("users.FindByEmail")
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) FindByInvitationToken(ctx context.Context, token string) (*entity.User, error) {
	r.calls.record("users.FindByInvitationToken")
	return r.byToken[token], nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.calls.record("users.ExistsByEmail")
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	r.calls.record("users.FindAll")
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

type fakeSessionRepo struct {
	calls          *calls
	byID           map[string]*entity.Session
	byRefreshToken map[string]*entity.Session
	deleted        []string
	deletedUsers   []string
}

func newFakeSessionRepo(c *calls) *fakeSessionRepo {
	return &fakeSessionRepo{
		calls:          c,
		byID:           map[string]*entity.Session{},
		byRefreshToken: map[string]*entity.Session{},
	}
}

func (r *fakeSessionRepo) add(s *entity.Session) {
	r.byID[s.ID()] = s
	r.byRefreshToken[s.RefreshToken()] = s
}

func (r *fakeSessionRepo) Save(ctx context.Context, s *entity.Session) error {
	r.calls.record("sessions.Save")
	r.add(s)
	return nil
}

func (r *fakeSessionRepo) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	r.calls.record("sessions.FindByID")
	return r.byID[id], nil
}

func (r *fakeSessionRepo) FindByRefreshToken(ctx context.Context, token string) (*entity.Session, error) {
	r.calls.record("sessions.FindByRefreshToken")
	return r.byRefreshToken[token], nil
}

func (r *fakeSessionRepo) FindByUserID(ctx context.Context, userID string) ([]*entity.Session, error) {
	r.calls.record("sessions.FindByUserID")
	var out []*entity.Session
	for _, s := range r.byID {
		if s.UserID() == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	r.calls.record("sessions.Delete")
	if s, ok := r.byID[id]; ok {
		delete(r.byRefreshToken, s.RefreshToken())
		delete(r.byID, id)
	}
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeSessionRepo) DeleteAllByUserID(ctx context.Context, userID string) error {
	r.calls.record("sessions.DeleteAllByUserID")
	for id, s := range r.byID {
		if s.UserID() == userID {
			delete(r.byRefreshToken, s.RefreshToken())
			delete(r.byID, id)
		}
	}
	r.deletedUsers = append(r.deletedUsers, userID)
	return nil
}

type fakeResetTokenRepo struct {
	calls   *calls
	byToken map[string]repository.PasswordResetTokenRecord
	deleted []string
}

func newFakeResetTokenRepo(c *calls) *fakeResetTokenRepo {
	return &fakeResetTokenRepo{calls: c, byToken: map[string]repository.PasswordResetTokenRecord{}}
}

func (r *fakeResetTokenRepo) Save(ctx context.Context, record repository.PasswordResetTokenRecord) error {
	r.calls.record("resetTokens.Save")
	r.byToken[record.Token.Token()] = record
	return nil
}

func (r *fakeResetTokenRepo) FindByToken(ctx context.Context, token string) (*repository.PasswordResetTokenRecord, error) {
	r.calls.record("resetTokens.FindByToken")
	record, ok := r.byToken[token]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (r *fakeResetTokenRepo) DeleteByUserID(ctx context.Context, userID string) error {
	r.calls.record("resetTokens.DeleteByUserID")
	for token, record := range r.byToken {
		if record.UserID == userID {
			delete(r.byToken, token)
		}
	}
	r.deleted = append(r.deleted, userID)
	return nil
}

type fakeTokenService struct {
	calls *calls
	pairs int
}

func (s *fakeTokenService) GenerateTokenPair(ctx context.Context, payload TokenPayload) (TokenPair, error) {
	s.calls.record("tokens.GenerateTokenPair")
	s.pairs++
	return TokenPair{
		AccessToken:  "access-" + payload.UserID,
		RefreshToken: "refresh-" + payload.UserID,
	}, nil
}

func (s *fakeTokenService) VerifyAccessToken(ctx context.Context, token string) (TokenPayload, error) {
	return TokenPayload{}, nil
}

func (s *fakeTokenService) VerifyRefreshToken(ctx context.Context, token string) (TokenPayload, error) {
	return TokenPayload{}, nil
}

type fakeEmailService struct {
	calls *calls
	sent  []EmailMessage
}

func (s *fakeEmailService) Send(ctx context.Context, msg EmailMessage) error {
	s.calls.record("email.Send")
	s.sent = append(s.sent, msg)
	return nil
}

type fakeLimiter struct {
	calls      *calls
	limited    map[string]bool
	increments map[string]int
	resets     []string
}

func newFakeLimiter(c *calls) *fakeLimiter {
	return &fakeLimiter{calls: c, limited: map[string]bool{}, increments: map[string]int{}}
}

func (l *fakeLimiter) IsRateLimited(ctx context.Context, key string, maxAttempts, windowSeconds int) (bool, error) {
	l.calls.record("limiter.IsRateLimited")
	return l.limited[key], nil
}

func (l *fakeLimiter) Increment(ctx context.Context, key string, windowSeconds int) error {
	l.calls.record("limiter.Increment")
	l.increments[key]++
	return nil
}

func (l *fakeLimiter) Reset(ctx context.Context, key string) error {
	l.calls.record("limiter.Reset")
	l.resets = append(l.resets, key)
	return nil
}

// fakeHasher hashes by prefixing; Compare accepts hashes it produced.
// Stored hashes still need the bcrypt shape, so tests that build users
// use bcryptHash instead.
type fakeHasher struct {
	calls *calls
}

const bcryptStub = "$2b$12$C6UzMDM.H6dfI/f/IKxGhuPpkuTrdSuLxMRTTSHypwW3O0X8tW1Gm"

func (h *fakeHasher) Hash(ctx context.Context, plain string) (string, error) {
	if h.calls != nil {
		h.calls.record("hasher.Hash")
	}
	return bcryptStub, nil
}

func (h *fakeHasher) Compare(ctx context.Context, plain, hash string) (bool, error) {
	if h.calls != nil {
		h.calls.record("hasher.Compare")
	}
	return plain == "correct horse", nil
}
