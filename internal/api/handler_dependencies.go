package api

import (
	"github.com/terraincognita07/ironlog/internal/db"
	"github.com/terraincognita07/ironlog/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.workoutService = services.NewWorkoutService(
		handler.repositories.Workouts,
		handler.repositories.WorkoutExercises,
		handler.repositories.Sets,
		handler.fetchConcurrency,
		handler.location,
	)
	handler.exerciseService = services.NewExerciseService(handler.repositories.Exercises)
	return handler
}
