package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/notekeeper-server/database"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Apply, roll back or inspect database migrations",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		direction := "up"
		if len(args) == 1 {
			direction = args[0]
		}

		ctx := cmd.Context()
		var err error
		switch direction {
		case "up":
			err = database.Migrate(ctx, cfg.Database.DSN)
		case "down":
			err = database.Rollback(ctx, cfg.Database.DSN)
		case "status":
			err = database.Status(ctx, cfg.Database.DSN)
		default:
			return fmt.Errorf("unknown migration direction %q", direction)
		}
		if err != nil {
			return err
		}

		log.Info("migrations finished", "direction", direction)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
