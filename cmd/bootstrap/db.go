package bootstrap

import (
	"context"
	"log/slog"

	"stadium-scheduler/internal/infra/db"
	"stadium-scheduler/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the reservation store pool; it is closed when the app stops.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to reservation store",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", pool.Config().MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("closing reservation store pool")
			cleanup()
			return nil
		},
	})

	return pool, nil
}
