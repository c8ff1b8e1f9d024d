package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/HiI2O/lunch-hub/internal/domain/entity"
	"github.com/HiI2O/lunch-hub/internal/domain/repository"
)

// sessionTTL caps every Redis key backing a session. It matches the
// session expiry so Redis self-cleans abandoned sessions.
const sessionTTL = 7 * 24 * time.Hour

const (
	sessionKeyPrefix = "session:"
	refreshKeyPrefix = "refreshToken:"
)

func sessionKey(id string) string      { return sessionKeyPrefix + id }
func refreshKey(token string) string   { return refreshKeyPrefix + token }
func userSessionsKey(id string) string { return "user:" + id + ":sessions" }

type sessionData struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	RefreshToken   string    `json:"refreshToken"`
	IsRevoked      bool      `json:"isRevoked"`
	CreatedAt      time.Time `json:"createdAt"`
	LastAccessedAt time.Time `json:"lastAccessedAt"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

// SessionRepository stores sessions in Redis under three key families:
// the session document itself, a refresh-token index pointing at the
// session ID, and a per-user set of session IDs for bulk revocation.
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

var _ repository.SessionRepository = (*SessionRepository)(nil)

func (r *SessionRepository) Save(ctx context.Context, session *entity.Session) error {
	data := sessionData{
		ID:             session.ID(),
		UserID:         session.UserID(),
		RefreshToken:   session.RefreshToken(),
		IsRevoked:      session.IsRevoked(),
		CreatedAt:      session.CreatedAt(),
		LastAccessedAt: session.LastAccessedAt(),
		ExpiresAt:      session.ExpiresAt(),
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKey(data.ID), raw, sessionTTL)
	pipe.Set(ctx, refreshKey(data.RefreshToken), data.ID, sessionTTL)
	pipe.SAdd(ctx, userSessionsKey(data.UserID), data.ID)
	pipe.Expire(ctx, userSessionsKey(data.UserID), sessionTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return unmarshalSession(raw)
}

func (r *SessionRepository) FindByRefreshToken(ctx context.Context, token string) (*entity.Session, error) {
	id, err := r.client.Get(ctx, refreshKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *SessionRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Session, error) {
	ids, err := r.client.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	var sessions []*entity.Session
	for _, id := range ids {
		session, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if session != nil {
			sessions = append(sessions, session)
		}
	}
	return sessions, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	session, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}
	pipe := r.client.Pipeline()
	pipe.Del(ctx, sessionKey(id))
	pipe.Del(ctx, refreshKey(session.RefreshToken()))
	pipe.SRem(ctx, userSessionsKey(session.UserID()), id)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *SessionRepository) DeleteAllByUserID(ctx context.Context, userID string) error {
	sessions, err := r.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	pipe := r.client.Pipeline()
	for _, session := range sessions {
		pipe.Del(ctx, sessionKey(session.ID()))
		pipe.Del(ctx, refreshKey(session.RefreshToken()))
	}
	pipe.Del(ctx, userSessionsKey(userID))
	_, err = pipe.Exec(ctx)
	return err
}

func unmarshalSession(raw []byte) (*entity.Session, error) {
	var data sessionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return entity.ReconstructSession(entity.SessionReconstructParams{
		ID:             data.ID,
		UserID:         data.UserID,
		RefreshToken:   data.RefreshToken,
		IsRevoked:      data.IsRevoked,
		CreatedAt:      data.CreatedAt,
		LastAccessedAt: data.LastAccessedAt,
		ExpiresAt:      data.ExpiresAt,
	}), nil
}
