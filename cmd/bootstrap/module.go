package bootstrap

import (
	"stadium-scheduler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule wires everything a one-shot command needs.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	components.PersistenceModule,
	components.NotificationModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	components.HandlerModule,
	components.WorkerModule,
)
