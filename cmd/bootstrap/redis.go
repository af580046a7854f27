package bootstrap

import (
	"context"
	"time"

	"stadium-scheduler/internal/pkg/config"
	"stadium-scheduler/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			if err := rdb.Ping(pingCtx).Err(); err != nil {
				return errs.Wrapf(err, "failed to ping redis at %s", cfg.Redis.Addr)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return rdb
}
