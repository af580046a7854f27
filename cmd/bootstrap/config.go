package bootstrap

import (
	"time"

	"stadium-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewScheduleLocation,
	),
)

// NewScheduleLocation is the zone slot hours and roller days are computed in.
func NewScheduleLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Schedule.Location()
}
