package components

import (
	"stadium-scheduler/internal/handler"
	"stadium-scheduler/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewFollowHandler,
	),
	fx.Invoke(handler.NewRouter),
)
