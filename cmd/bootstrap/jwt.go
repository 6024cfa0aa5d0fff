package bootstrap

import (
	"time"

	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/pkg/cookie"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		NewCookieCodec,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	ttl, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrapf(err, "JWT_DURATION %q", cfg.JWT.Duration)
	}
	if ttl <= 0 {
		return nil, errs.New("JWT_DURATION must be positive")
	}
	return jwt.NewService(cfg.JWT.Secret, ttl, jwt.WithClock(clk)), nil
}

func NewCookieCodec(cfg config.Config) *cookie.Codec {
	return cookie.NewCodec(cfg.Cookie)
}
