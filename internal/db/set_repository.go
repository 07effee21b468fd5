package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/terraincognita07/ironlog/internal/models"
	"gorm.io/gorm"
)

type SetRepository struct {
	database *gorm.DB
}

func NewSetRepository(database *gorm.DB) *SetRepository {
	return &SetRepository{database: database}
}

func (repo *SetRepository) ListByWorkoutExercise(ctx context.Context, workoutExerciseID uuid.UUID) ([]models.Set, error) {
	sets := make([]models.Set, 0)
	if err := repo.database.WithContext(ctx).
		Where("workout_exercise_id = ?", workoutExerciseID).
		Order("set_number ASC").
		Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}
