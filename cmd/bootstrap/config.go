package bootstrap

import (
	"time"

	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
		clock.NewZonedClock,
	),
)

// NewLocation resolves APP_TIMEZONE, the zone every reservation day is evaluated in.
func NewLocation(cfg config.Config) (*time.Location, error) {
	return cfg.App.Location()
}
