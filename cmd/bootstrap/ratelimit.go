package bootstrap

import (
	"context"
	"time"

	"go.uber.org/fx"

	"parkspot/internal/handler/middleware"
	"parkspot/internal/pkg/config"
)

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		NewRateLimiter,
	),
)

func NewRateLimiter(lc fx.Lifecycle, cfg config.Config) *middleware.RateLimiter {
	rl := middleware.NewRateLimiter(cfg.RateLimit)
	if !cfg.RateLimit.Enabled {
		return rl
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go rl.Run(time.Minute)
			return nil
		},
		OnStop: func(_ context.Context) error {
			rl.Stop()
			return nil
		},
	})
	return rl
}
