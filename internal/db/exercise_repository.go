package db

import (
	"context"

	"github.com/terraincognita07/ironlog/internal/models"
	"gorm.io/gorm"
)

type ExerciseRepository struct {
	database *gorm.DB
}

func NewExerciseRepository(database *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{database: database}
}

func (repo *ExerciseRepository) ListByUser(ctx context.Context, userID string) ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *ExerciseRepository) FindByUserAndName(ctx context.Context, userID string, name string) (models.Exercise, bool, error) {
	return findExerciseByName(repo.database.WithContext(ctx), userID, name)
}

func (repo *ExerciseRepository) Create(ctx context.Context, exercise *models.Exercise) error {
	return repo.database.WithContext(ctx).Create(exercise).Error
}

func findExerciseByName(database *gorm.DB, userID string, name string) (models.Exercise, bool, error) {
	exercise := models.Exercise{}
	result := database.
		Where("user_id = ? AND name = ?", userID, name).
		Limit(1).
		Find(&exercise)
	if result.Error != nil {
		return models.Exercise{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Exercise{}, false, nil
	}
	return exercise, true, nil
}

func findOrCreateExercise(database *gorm.DB, userID string, name string) (models.Exercise, error) {
	exercise, found, err := findExerciseByName(database, userID, name)
	if err != nil {
		return models.Exercise{}, err
	}
	if found {
		return exercise, nil
	}

	exercise = models.Exercise{UserID: userID, Name: name}
	if err := database.Create(&exercise).Error; err != nil {
		return models.Exercise{}, err
	}
	return exercise, nil
}
