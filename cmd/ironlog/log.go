package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/ironlog/internal/db"
	"github.com/terraincognita07/ironlog/internal/services"
)

func newLogCmd(state *cliState) *cobra.Command {
	var userID string
	var file string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a workout from a JSON document",
		Long: `Record a workout with its exercises and sets.

The document has the same shape as the POST /api/workouts body:

  {"date": "2024-06-01", "name": "Push Day",
   "exercises": [{"name": "Bench Press", "sets": [{"reps": 8, "weight": 135}]}]}`,
		Example: `  ironlog log --user google:123 --file push-day.json
  cat push-day.json | ironlog log --user google:123`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID = strings.TrimSpace(userID)
			if userID == "" {
				return fmt.Errorf("--user is required")
			}

			input, err := readWorkoutInput(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			database, err := state.openDatabase()
			if err != nil {
				return err
			}
			defer db.Close(database)

			workouts, _ := state.newServices(database)
			detail, err := workouts.LogWorkout(cmd.Context(), userID, input)
			if err != nil {
				return fmt.Errorf("log workout: %w", err)
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Logged workout %s on %s\n", detail.ID, detail.Date)
			printWorkouts(cmd.OutOrStdout(), detail.Date, []services.WorkoutDetail{detail})
			return nil
		},
	}

	cmd.Flags().StringVarP(&userID, "user", "u", "", "user id (provider:id)")
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON file to read, - for stdin")
	return cmd
}

func readWorkoutInput(stdin io.Reader, file string) (services.WorkoutInput, error) {
	var reader io.Reader = stdin
	if file != "" && file != "-" {
		handle, err := os.Open(file)
		if err != nil {
			return services.WorkoutInput{}, fmt.Errorf("open workout file: %w", err)
		}
		defer handle.Close()
		reader = handle
	}

	var input services.WorkoutInput
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		return services.WorkoutInput{}, fmt.Errorf("decode workout: %w", err)
	}
	return input, nil
}
