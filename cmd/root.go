package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stadium-scheduler",
		Short:         "Hourly stadium reservations with weekly pinned bookings",
		SilenceUsage:  true,
		SilenceErrors: true,
		// serve is the default so the container entrypoint needs no arguments
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newRollCmd())
	root.AddCommand(newMigrateCmd())

	return root
}
