package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/terraincognita07/ironlog/internal/models"
	"gorm.io/gorm"
)

type WorkoutExerciseRepository struct {
	database *gorm.DB
}

func NewWorkoutExerciseRepository(database *gorm.DB) *WorkoutExerciseRepository {
	return &WorkoutExerciseRepository{database: database}
}

func (repo *WorkoutExerciseRepository) ListByWorkout(ctx context.Context, workoutID uuid.UUID) ([]models.WorkoutExerciseEntry, error) {
	entries := make([]models.WorkoutExerciseEntry, 0)
	if err := repo.database.WithContext(ctx).
		Table("workout_exercises AS we").
		Select("we.id, we.workout_id, we.exercise_id, e.name AS exercise_name, we.display_order, we.notes").
		Joins("INNER JOIN exercises AS e ON e.id = we.exercise_id").
		Where("we.workout_id = ?", workoutID).
		Order("we.display_order ASC").
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
