package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/ironlog/internal/config"
	"github.com/terraincognita07/ironlog/internal/db"
	"github.com/terraincognita07/ironlog/internal/logger"
	"github.com/terraincognita07/ironlog/internal/services"
	"gorm.io/gorm"
)

// cliState is filled by the root command before any subcommand runs.
type cliState struct {
	cfg *config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	state := &cliState{}

	root := &cobra.Command{
		Use:   "ironlog",
		Short: "Workout log with a web dashboard",
		Long: `Ironlog records workouts as exercises and sets and shows them by day.

Running ironlog without a subcommand starts the web server.

QUICK START:

  $ ironlog migrate                                     # Create or upgrade the schema
  $ ironlog serve                                       # Start the web dashboard
  $ ironlog log --user google:123 --file push-day.json  # Record a workout from JSON
  $ ironlog workouts --user google:123 --date 2024-06-01

Configuration comes from environment variables (PORT, DB_DRIVER, DB_PATH,
DATABASE_URL, SECRET_KEY, TZ, GOOGLE_CLIENT_ID, ...).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if state.log != nil {
				state.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), state)
		},
	}

	root.AddCommand(
		newServeCmd(state),
		newMigrateCmd(state),
		newWorkoutsCmd(state),
		newLogCmd(state),
		newExercisesCmd(state),
	)
	return root
}

func (state *cliState) load() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return err
	}
	for _, warning := range cfg.Warnings {
		log.Warn(warning)
	}

	state.cfg = cfg
	state.log = log
	return nil
}

func (state *cliState) openDatabase() (*gorm.DB, error) {
	database, err := db.Open(db.Options{
		Driver:      state.cfg.DBDriver,
		SQLitePath:  state.cfg.DBPath,
		DatabaseURL: state.cfg.DatabaseURL,
	}, state.log)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	return database, nil
}

func (state *cliState) newServices(database *gorm.DB) (*services.WorkoutService, *services.ExerciseService) {
	repositories := db.NewRepositories(database)
	workouts := services.NewWorkoutService(
		repositories.Workouts,
		repositories.WorkoutExercises,
		repositories.Sets,
		state.cfg.FetchConcurrency,
		state.cfg.Location,
	)
	return workouts, services.NewExerciseService(repositories.Exercises)
}
