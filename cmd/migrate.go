package main

import (
	"fmt"

	"stadium-scheduler/internal/infra/db"
	"stadium-scheduler/internal/pkg/config"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var (
		dir   string
		steps int
	)

	c := &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back the reservation store schema",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := "up"
			if len(args) == 1 {
				direction = args[0]
			}

			n := steps
			if direction == "down" {
				// down without --steps would drop everything
				n = -max(steps, 1)
			}

			cfg, err := config.LoadDBConfig()
			if err != nil {
				return err
			}

			status, err := db.Migrate(cfg, dir, n)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d (dirty=%t)\n", status.Version, status.Dirty)
			return nil
		},
	}

	c.Flags().StringVar(&dir, "dir", "migrations", "directory holding golang-migrate style *.up.sql / *.down.sql files")
	c.Flags().IntVar(&steps, "steps", 0, "number of migrations to apply; 0 applies all pending (up only)")

	return c
}
