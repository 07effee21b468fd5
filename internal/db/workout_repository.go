package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/ironlog/internal/models"
	"gorm.io/gorm"
)

type WorkoutRepository struct {
	database *gorm.DB
}

func NewWorkoutRepository(database *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{database: database}
}

func (repo *WorkoutRepository) ListByUserAndDayRange(ctx context.Context, userID string, dayStart time.Time, dayEnd time.Time) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("created_at ASC, id ASC").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *WorkoutRepository) FindByUserAndID(ctx context.Context, userID string, workoutID uuid.UUID) (models.Workout, bool, error) {
	workout := models.Workout{}
	result := repo.database.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, workoutID).
		Limit(1).
		Find(&workout)
	if result.Error != nil {
		return models.Workout{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Workout{}, false, nil
	}
	return workout, true, nil
}

// CreateWithExercises inserts the workout together with its exercises and sets in one
// transaction. exerciseNames[i] names workout.Exercises[i]; missing exercises are created for
// the workout's owner.
func (repo *WorkoutRepository) CreateWithExercises(ctx context.Context, workout *models.Workout, exerciseNames []string) error {
	if len(exerciseNames) != len(workout.Exercises) {
		return errors.New("exercise names do not match workout exercises")
	}

	return repo.database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for index, name := range exerciseNames {
			exercise, err := findOrCreateExercise(tx, workout.UserID, name)
			if err != nil {
				return err
			}
			workout.Exercises[index].ExerciseID = exercise.ID
		}
		return tx.Create(workout).Error
	})
}

func (repo *WorkoutRepository) DeleteByUserAndID(ctx context.Context, userID string, workoutID uuid.UUID) (bool, error) {
	result := repo.database.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, workoutID).
		Delete(&models.Workout{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
