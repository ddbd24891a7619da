package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"parkspot/internal/infra/db"
	"parkspot/internal/infra/query"
	"parkspot/internal/pkg/config"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	if cfg.DB.RunMigrations {
		if err := db.Migrate(cfg.DB); err != nil {
			return nil, err
		}
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.DB.SeedDemo {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.SeedDemoSpots(ctx, query.New(), pool); err != nil {
			cleanup()
			return nil, err
		}
	}

	logger.Info("データベースに接続しました", "host", cfg.DB.Host, "db", cfg.DB.DBName)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
