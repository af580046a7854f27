package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stadium-scheduler/cmd/bootstrap"
	"stadium-scheduler/internal/pkg/errs"
	"stadium-scheduler/internal/usecase/commands"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newRollCmd() *cobra.Command {
	var date string

	c := &cobra.Command{
		Use:   "roll",
		Short: "Roll yesterday's pinned reservations one week forward, once",
		Long: "Roll copies every PINNED reservation of the day before --date to the same hour one week later.\n" +
			"It is what the daily worker runs and is safe to repeat.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			var (
				cmds   commands.ReservationCommands
				loc    *time.Location
				logger *slog.Logger
			)
			app := fx.New(
				bootstrap.CoreModule,
				fx.NopLogger,
				fx.Populate(&cmds, &loc, &logger),
			)
			if err := app.Start(ctx); err != nil {
				return err
			}
			defer func() {
				if err := app.Stop(context.Background()); err != nil {
					slog.Error("failed to stop roll command", "error", err)
				}
			}()

			today, err := rollDate(date, time.Now(), loc)
			if err != nil {
				return err
			}

			result, err := cmds.RollPinnedReservations(ctx, today)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "rolled %s: candidates=%d created=%d skipped=%d failed=%d\n",
				result.Day.Format("2006-01-02"), result.Candidates, result.Created, result.Skipped, result.Failed)
			return rollOutcome(result)
		},
	}

	c.Flags().StringVar(&date, "date", "", "run as if today were this date (YYYY-MM-DD, schedule time zone); defaults to today")

	return c
}

// rollDate reads --date in loc; empty means the day of now.
func rollDate(date string, now time.Time, loc *time.Location) (time.Time, error) {
	if date == "" {
		return now.In(loc), nil
	}
	parsed, err := time.ParseInLocation(time.DateOnly, date, loc)
	if err != nil {
		return time.Time{}, errs.Wrap(err, "invalid --date (want YYYY-MM-DD)")
	}
	return parsed, nil
}

func rollOutcome(result *commands.RollResult) error {
	if result.Failed > 0 {
		return errs.Newf("%d pinned reservations failed to roll", result.Failed)
	}
	return nil
}
