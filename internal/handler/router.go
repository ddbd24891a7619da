package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parkspot/internal/handler/api"
	"parkspot/internal/handler/middleware"
	"parkspot/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Spot        *api.SpotHandler
	Reservation *api.ReservationHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
	logger *slog.Logger,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, handlers, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	var limited []gin.HandlerFunc
	if cfg.RateLimit.Enabled && limiter != nil {
		limited = []gin.HandlerFunc{limiter.Middleware()}
	}

	public := engine.Group("")
	addRoutes(public, []route{
		{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: limited},
		{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: limited},
		{Method: http.MethodGet, Path: "/parking-spots", Handler: h.Spot.List},
		{Method: http.MethodGet, Path: "/parking-spots/:id", Handler: h.Spot.Get},
	})

	authRequired := engine.Group("")
	authRequired.Use(authMiddleware.RequireAuth())
	addRoutes(authRequired, []route{
		{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
		{Method: http.MethodPost, Path: "/reserve", Handler: h.Reservation.Reserve, Mw: limited},
		{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.List},
		{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Reservation.Get},
		{Method: http.MethodPost, Path: "/reservations/:id/end", Handler: h.Reservation.End},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
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
