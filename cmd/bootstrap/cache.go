package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"parkspot/internal/infra/cache"
	"parkspot/internal/pkg/config"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		NewSpotCache,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is unset or the server does not answer;
// the spot list is then always read from Postgres.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if !cfg.Cache.Enabled() {
		logger.Info("Redis が未設定のため駐車場一覧のキャッシュを無効化します")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis に接続できないためキャッシュを無効化します", "addr", cfg.Cache.RedisAddr, "error", err)
		_ = rdb.Close()
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}

func NewSpotCache(rdb *redis.Client, cfg config.Config) *cache.SpotCache {
	return cache.NewSpotCache(rdb, cfg.Cache.SpotListTTL)
}
