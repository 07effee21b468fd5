package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/ironlog/internal/models"
	"gorm.io/gorm"
)

var (
	ErrExerciseNameRequired = errors.New("exercise name is required")
	ErrNameTooLong          = errors.New("name is too long")
	ErrExerciseExists       = errors.New("exercise already exists")
	ErrExerciseListFailed   = errors.New("list exercises")
	ErrExerciseCreateFailed = errors.New("create exercise")
)

type ExerciseRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Exercise, error)
	FindByUserAndName(ctx context.Context, userID string, name string) (models.Exercise, bool, error)
	Create(ctx context.Context, exercise *models.Exercise) error
}

type ExerciseService struct {
	exercises ExerciseRepository
}

func NewExerciseService(exercises ExerciseRepository) *ExerciseService {
	return &ExerciseService{exercises: exercises}
}

func (service *ExerciseService) ListExercises(ctx context.Context, userID string) ([]models.Exercise, error) {
	exercises, err := service.exercises.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExerciseListFailed, err)
	}
	if exercises == nil {
		exercises = make([]models.Exercise, 0)
	}
	return exercises, nil
}

func (service *ExerciseService) CreateExercise(ctx context.Context, userID string, name string) (models.Exercise, error) {
	normalized, err := NormalizeExerciseName(name)
	if err != nil {
		return models.Exercise{}, err
	}

	_, found, err := service.exercises.FindByUserAndName(ctx, userID, normalized)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("%w: %w", ErrExerciseCreateFailed, err)
	}
	if found {
		return models.Exercise{}, ErrExerciseExists
	}

	exercise := models.Exercise{UserID: userID, Name: normalized}
	if err := service.exercises.Create(ctx, &exercise); err != nil {
		// A concurrent create of the same name loses on the unique (user_id, name) index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Exercise{}, ErrExerciseExists
		}
		return models.Exercise{}, fmt.Errorf("%w: %w", ErrExerciseCreateFailed, err)
	}
	return exercise, nil
}

func NormalizeExerciseName(raw string) (string, error) {
	name := strings.Join(strings.Fields(raw), " ")
	if name == "" {
		return "", ErrExerciseNameRequired
	}
	if utf8.RuneCountInString(name) > models.MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}
