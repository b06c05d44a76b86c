package main

import (
	"github.com/spf13/cobra"
)

var rollbackSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations (or roll back with --down)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer shutdown(a)

		if rollbackSteps > 0 {
			return a.Rollback(rollbackSteps)
		}
		return a.Migrate()
	},
}

func init() {
	migrateCmd.Flags().IntVar(&rollbackSteps, "down", 0, "number of migrations to roll back")
}
