package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stadium-scheduler/internal/handler/api"
	"stadium-scheduler/internal/handler/middleware"
	"stadium-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, reservationHandler *api.ReservationHandler, followHandler *api.FollowHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, middleware.RateLimit(cfg.Server), reservationHandler, followHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger, cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

// writeLimit guards every route that changes state.
func setupRoutes(engine *gin.Engine, writeLimit gin.HandlerFunc, reservationHandler *api.ReservationHandler, followHandler *api.FollowHandler) {
	writer := []gin.HandlerFunc{middleware.RequireUser(), writeLimit}

	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation, Mw: writer},
				{Method: http.MethodPost, Path: "/pinned", Handler: reservationHandler.CreatePinnedReservation, Mw: writer},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.CancelReservation, Mw: writer},
			})
		}

		stadiums := apiGroup.Group("/stadiums")
		{
			addRoutes(stadiums, []route{
				{Method: http.MethodGet, Path: "/:id/reservations", Handler: reservationHandler.ListStadiumReservations},
			})
		}

		clubs := apiGroup.Group("/clubs")
		{
			addRoutes(clubs, []route{
				{Method: http.MethodPost, Path: "/:id/followers", Handler: followHandler.Follow, Mw: writer},
				{Method: http.MethodDelete, Path: "/:id/followers", Handler: followHandler.Unfollow, Mw: writer},
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
			h = chainHandlers(append(r.Mw, r.Handler)...)
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
