package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	MaxLoginAttempts   = 5
	LoginAttemptWindow = 10 * time.Minute
)

func LoginAttemptsKey(email string) string {
	return "auth:login:attempts:" + email
}

func NewRedisClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
}

// LoginLimiter counts failed logins per email inside a fixed window.
type LoginLimiter struct {
	client redis.Cmdable
	max    int64
	window time.Duration
}

func NewLoginLimiter(client redis.Cmdable) *LoginLimiter {
	return &LoginLimiter{client: client, max: MaxLoginAttempts, window: LoginAttemptWindow}
}

func (l *LoginLimiter) Blocked(ctx context.Context, email string) (bool, error) {
	cnt, err := l.client.Get(ctx, LoginAttemptsKey(email)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return cnt >= l.max, nil
}

func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := LoginAttemptsKey(email)
	val, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if val == 1 {
		return l.client.Expire(ctx, key, l.window).Err()
	}
	return nil
}

func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, LoginAttemptsKey(email)).Err()
}
