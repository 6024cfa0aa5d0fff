package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"room-reservation/internal/handler/api"
	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/usecase/commands"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Room        *api.RoomHandler
	Reservation *api.ReservationHandler
	Admin       *api.AdminHandler
}

type Middlewares struct {
	Logger    *middleware.Logger
	Auth      *middleware.AuthMiddleware
	RateLimit *middleware.RateLimiter
	Audit     commands.AuditCommands
	Clock     clock.Clock
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw.Logger)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NoRoute())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{mw.RateLimit.Middleware()}

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.AuditMiddleware(mw.Audit, mw.Clock))
	{
		rooms := apiGroup.Group("/room")
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Room.ListAvailable},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
			{Method: http.MethodGet, Path: "/:id/slots", Handler: h.Room.DayGrid},
			{Method: http.MethodPost, Path: "/:id/selection", Handler: h.Room.EvaluateSelection},
		})

		reservations := apiGroup.Group("/reservation")
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create, Mw: limited},
			{Method: http.MethodGet, Path: "/:roomId", Handler: h.Reservation.ListByRoom},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Cancel, Mw: limited},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/access", Handler: h.Admin.Access, Mw: limited},
			})

			authRequired := admin.Group("")
			authRequired.Use(mw.Auth.RequireAdmin())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Admin.Logout},
				{Method: http.MethodGet, Path: "/log", Handler: h.Admin.AuditLog},
				{Method: http.MethodGet, Path: "/reservation", Handler: h.Reservation.AdminList},
				{Method: http.MethodGet, Path: "/reservation/:id", Handler: h.Reservation.AdminGet},
				{Method: http.MethodDelete, Path: "/reservation/:id", Handler: h.Reservation.AdminDelete},
				{Method: http.MethodGet, Path: "/room", Handler: h.Room.AdminList},
				{Method: http.MethodPost, Path: "/room", Handler: h.Room.Create},
				{Method: http.MethodPut, Path: "/room/:id", Handler: h.Room.Update},
				{Method: http.MethodDelete, Path: "/room/:id", Handler: h.Room.Delete},
				{Method: http.MethodPost, Path: "/room/:id/image", Handler: h.Room.UploadImage},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc(nil), r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
