package bootstrap

import (
	"context"
	"log/slog"

	"room-reservation/internal/infra/storage"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/usecase/commands"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		fx.Annotate(
			NewImageStorage,
			fx.As(new(commands.ImageStorage)),
		),
	),
)

func NewImageStorage(lc fx.Lifecycle, cfg config.Config) (*storage.MinioStorage, error) {
	client, err := storage.NewMinioClient(cfg.Storage)
	if err != nil {
		return nil, err
	}
	store := storage.NewMinioStorage(client, cfg.Storage)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// uploads fail individually until the bucket becomes reachable
			if err := store.EnsureBucket(ctx); err != nil {
				slog.Warn("object storage not ready", "bucket", cfg.Storage.Bucket, "error", err.Error())
			}
			return nil
		},
	})
	return store, nil
}
