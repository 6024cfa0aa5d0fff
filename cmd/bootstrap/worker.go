package bootstrap

import (
	"context"

	"room-reservation/internal/infra/messaging"
	"room-reservation/internal/infra/outbox"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/usecase/shared"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(StartOutboxRelay),
)

type relayParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Logger    *zap.Logger
	UoW       shared.UnitOfWork
	Publisher *messaging.Publisher
	Leader    outbox.LeaderLock
	Clock     clock.Clock
}

func StartOutboxRelay(p relayParams) {
	if p.Publisher == nil {
		return
	}

	relay := outbox.NewRelay(p.Logger.Named("outbox"), p.Config.Worker, p.UoW, p.Publisher, p.Leader, p.Clock)
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start(context.Background())
			return nil
		},
		OnStop: func(_ context.Context) error {
			relay.Stop()
			return nil
		},
	})
}
