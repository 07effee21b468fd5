package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/ironlog/internal/db"
	"github.com/terraincognita07/ironlog/internal/services"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func newWorkoutsCmd(state *cliState) *cobra.Command {
	var userID string
	var date string

	cmd := &cobra.Command{
		Use:   "workouts",
		Short: "Show a user's workouts for one day",
		Example: `  ironlog workouts --user google:123
  ironlog workouts --user google:123 --date 2024-06-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID = strings.TrimSpace(userID)
			if userID == "" {
				return fmt.Errorf("--user is required")
			}
			day, err := services.ParseDay(date, state.cfg.Location)
			if err != nil {
				return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", date)
			}

			database, err := state.openDatabase()
			if err != nil {
				return err
			}
			defer db.Close(database)

			workouts, _ := state.newServices(database)
			details, err := workouts.FetchWorkoutsByDate(cmd.Context(), userID, day)
			if err != nil {
				return err
			}
			printWorkouts(cmd.OutOrStdout(), services.FormatDay(day), details)
			return nil
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "user id (provider:id)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "day to show as YYYY-MM-DD (default today)")
	return cmd
}

func printWorkouts(out io.Writer, day string, details []services.WorkoutDetail) {
	if len(details) == 0 {
		fmt.Fprintf(out, "No workouts on %s.\n", day)
		return
	}

	for index, workout := range details {
		if index > 0 {
			fmt.Fprintln(out)
		}
		name := "Workout"
		if workout.Name != nil {
			name = *workout.Name
		}
		fmt.Fprintf(out, "%s  %s  %s\n", bold(name), faint(workout.Date), faint(workout.ID.String()[:8]))
		if workout.Notes != nil {
			fmt.Fprintf(out, "  %s\n", faint(*workout.Notes))
		}
		for _, exercise := range workout.Exercises {
			fmt.Fprintf(out, "  %d. %s\n", exercise.Order, exercise.Name)
			for _, set := range exercise.Sets {
				fmt.Fprintf(out, "     %s\n", services.DefaultSetLineFormat.Line(set))
			}
		}
	}
}
