package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/ironlog/internal/db"
)

func newMigrateCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := state.openDatabase()
			if err != nil {
				return err
			}
			if err := db.Close(database); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Database is up to date (%s)\n", state.cfg.DBDriver)
			return nil
		},
	}
}
