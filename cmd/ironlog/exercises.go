package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/ironlog/internal/db"
	"github.com/terraincognita07/ironlog/internal/services"
)

func newExercisesCmd(state *cliState) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:     "exercises",
		Aliases: []string{"ex"},
		Short:   "List or add a user's exercises",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUser(userID); err != nil {
				return err
			}
			database, err := state.openDatabase()
			if err != nil {
				return err
			}
			defer db.Close(database)

			_, exercises := state.newServices(database)
			list, err := exercises.ListExercises(cmd.Context(), strings.TrimSpace(userID))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No exercises yet.")
				return nil
			}
			for _, exercise := range list {
				fmt.Fprintf(out, "%s  %s\n", faint(exercise.ID.String()[:8]), exercise.Name)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&userID, "user", "u", "", "user id (provider:id)")

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add an exercise to the user's catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUser(userID); err != nil {
				return err
			}
			database, err := state.openDatabase()
			if err != nil {
				return err
			}
			defer db.Close(database)

			_, exercises := state.newServices(database)
			exercise, err := exercises.CreateExercise(cmd.Context(), strings.TrimSpace(userID), args[0])
			switch {
			case errors.Is(err, services.ErrExerciseExists):
				return fmt.Errorf("exercise %q already exists", strings.TrimSpace(args[0]))
			case err != nil:
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Added %s\n", exercise.Name)
			return nil
		},
	})
	return cmd
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("--user is required")
	}
	return nil
}
