package bootstrap

import (
	"context"
	"log/slog"

	"room-reservation/internal/infra/messaging"
	"room-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
	),
)

// NewPublisher returns nil when AMQP is disabled; jobs then stay queued in the outbox.
func NewPublisher(lc fx.Lifecycle, cfg config.Config) (*messaging.Publisher, error) {
	if !cfg.AMQP.Enabled {
		slog.Info("amqp disabled; outbox relay will not start")
		return nil, nil
	}

	conn, err := messaging.Dial(cfg.AMQP)
	if err != nil {
		return nil, err
	}
	publisher, err := messaging.NewPublisher(conn, cfg.AMQP)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}
