package components

import (
	"time"

	"stadium-scheduler/internal/pkg/clock"
	"stadium-scheduler/internal/usecase/commands"
	"stadium-scheduler/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewScheduleClock,
)

// NewScheduleClock reads wall time in the schedule zone.
func NewScheduleClock(loc *time.Location) clock.Clock {
	return clock.InLocation(clock.NewRealClock(), loc)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewFollowCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
	),
)
