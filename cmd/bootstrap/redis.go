package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"room-reservation/internal/infra/cache"
	"room-reservation/internal/infra/outbox"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewSubmissionLocker,
		NewLeaderLock,
	),
)

// NewRedisClient returns nil when Redis is disabled; callers fall back to
// database-only coordination.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		slog.Info("redis disabled; submission locks fall back to the database")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func NewSubmissionLocker(client *redis.Client) commands.SubmissionLocker {
	if client == nil {
		return commands.NewNoopLocker()
	}
	return cache.NewRedisLocker(client)
}

func NewLeaderLock(client *redis.Client) outbox.LeaderLock {
	if client == nil {
		return nil
	}
	return cache.NewRedisLocker(client)
}
