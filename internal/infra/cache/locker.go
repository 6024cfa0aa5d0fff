package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"room-reservation/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultPollInterval = 50 * time.Millisecond

var ErrLockNotOwned = errors.New("lock not owned by this client")

// RedisLocker is a SET NX lock keyed by name and owned by a random token.
type RedisLocker struct {
	client       redis.Cmdable
	pollInterval time.Duration
}

func NewRedisLocker(client redis.Cmdable) *RedisLocker {
	return &RedisLocker{
		client:       client,
		pollInterval: defaultPollInterval,
	}
}

// TryLock makes a single attempt and reports the owner token on success.
func (l *RedisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, string, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return false, "", err
	}
	if !ok {
		return false, "", nil
	}
	return true, token, nil
}

// Unlock deletes key only while it still holds token.
func (l *RedisLocker) Unlock(ctx context.Context, key, token string) error {
	stored, err := l.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}
	if stored != token {
		return ErrLockNotOwned
	}
	return l.client.Del(ctx, key).Err()
}

// Acquire waits up to ttl for key. The returned release func is safe to call once.
func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	deadline := time.Now().Add(ttl)
	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	for {
		ok, token, err := l.TryLock(ctx, key, ttl)
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				// the request context may already be canceled
				if err := l.Unlock(context.WithoutCancel(ctx), key, token); err != nil {
					slog.Warn("failed to release lock", "key", key, "error", err.Error())
				}
			}, nil
		}
		if time.Now().After(deadline) {
			return nil, commands.ErrLockNotAcquired
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
