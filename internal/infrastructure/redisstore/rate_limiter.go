package redisstore

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/HiI2O/lunch-hub/internal/application"
)

// RateLimiter is a fixed-window attempt counter in Redis. The window
// starts on the first increment; the key expires on its own, so a quiet
// caller never needs an explicit reset.
type RateLimiter struct {
	client *redis.Client
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client}
}

var _ application.RateLimiter = (*RateLimiter)(nil)

func (l *RateLimiter) IsRateLimited(ctx context.Context, key string, maxAttempts, windowSeconds int) (bool, error) {
	raw, err := l.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		return false, err
	}
	return count >= maxAttempts, nil
}

func (l *RateLimiter) Increment(ctx context.Context, key string, windowSeconds int) error {
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		return l.client.Expire(ctx, key, time.Duration(windowSeconds)*time.Second).Err()
	}
	return nil
}

func (l *RateLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, key).Err()
}
