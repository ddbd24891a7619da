package middleware

import (
	"log/slog"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"parkspot/internal/pkg/config"
)

// NewCORSMiddleware treats a "*" origin as allow-all, which cannot be combined with credentials.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  cfg.AllowMethods,
		AllowHeaders:  cfg.AllowHeaders,
		ExposeHeaders: appendMissing(cfg.ExposeHeaders, requestIDHeader),
		MaxAge:        cfg.MaxAge,
	}

	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		if cfg.AllowCredentials {
			slog.Warn("CORS credentials disabled for wildcard origin")
		}
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
		corsCfg.AllowCredentials = cfg.AllowCredentials
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_all", corsCfg.AllowAllOrigins)
	return cors.New(corsCfg)
}

func appendMissing(headers []string, h string) []string {
	if slices.Contains(headers, h) {
		return headers
	}
	return append(slices.Clone(headers), h)
}
