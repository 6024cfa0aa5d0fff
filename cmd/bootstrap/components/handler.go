package components

import (
	"room-reservation/internal/handler"
	"room-reservation/internal/handler/api"
	"room-reservation/internal/handler/dto/request"
	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewReservationHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(
		request.RegisterValidators,
		RegisterRoutes,
	),
)

func NewRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit)
}

type routeParams struct {
	fx.In

	Engine      *gin.Engine
	Config      config.Config
	Logger      *middleware.Logger
	Room        *api.RoomHandler
	Reservation *api.ReservationHandler
	Admin       *api.AdminHandler
	Auth        *middleware.AuthMiddleware
	RateLimit   *middleware.RateLimiter
	Audit       commands.AuditCommands
	Clock       clock.Clock
}

func RegisterRoutes(p routeParams) {
	handler.NewRouter(p.Engine, p.Config,
		handler.Handlers{
			Room:        p.Room,
			Reservation: p.Reservation,
			Admin:       p.Admin,
		},
		handler.Middlewares{
			Logger:    p.Logger,
			Auth:      p.Auth,
			RateLimit: p.RateLimit,
			Audit:     p.Audit,
			Clock:     p.Clock,
		},
	)
}
