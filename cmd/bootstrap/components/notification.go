package components

import (
	"log/slog"

	"stadium-scheduler/internal/infra/mail"
	"stadium-scheduler/internal/pkg/config"
	"stadium-scheduler/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var NotificationModule = fx.Module("notification",
	fx.Provide(
		fx.Annotate(
			NewQueueNotifier,
			fx.As(new(shared.Notifier)),
		),
		NewMailDispatcher,
	),
)

func NewQueueNotifier(rdb *redis.Client, cfg config.Config, logger *slog.Logger) *mail.QueueNotifier {
	return mail.NewQueueNotifier(rdb, cfg.Mail, logger)
}

func NewMailDispatcher(rdb *redis.Client, cfg config.Config, logger *slog.Logger) *mail.Dispatcher {
	return mail.NewDispatcher(rdb, cfg.Mail, logger)
}
