package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/terraincognita07/ironlog/internal/models"
)

var ErrInvalidWorkoutInput = errors.New("invalid workout input")

type WorkoutInput struct {
	Date      string                 `json:"date"`
	Name      *string                `json:"name,omitempty"`
	Notes     *string                `json:"notes,omitempty"`
	Exercises []WorkoutExerciseInput `json:"exercises"`
}

type WorkoutExerciseInput struct {
	Name  string     `json:"name"`
	Order int        `json:"order,omitempty"`
	Notes *string    `json:"notes,omitempty"`
	Sets  []SetInput `json:"sets"`
}

type SetInput struct {
	SetNumber int      `json:"setNumber,omitempty"`
	Reps      *int     `json:"reps,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	Duration  *int     `json:"duration,omitempty"`
	RPE       *float64 `json:"rpe,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
}

func invalidWorkoutInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidWorkoutInput, fmt.Sprintf(format, args...))
}

// buildWorkoutModel validates input and returns the workout tree ready for insert plus the
// exercise name of every workout exercise, index-aligned.
func buildWorkoutModel(userID string, input WorkoutInput, day time.Time) (models.Workout, []string, error) {
	name, err := normalizeOptionalName(input.Name)
	if err != nil {
		return models.Workout{}, nil, invalidWorkoutInput("workout name %v", err)
	}

	workout := models.Workout{
		UserID:    userID,
		Name:      name,
		Date:      StorageDay(day),
		Notes:     normalizeOptionalText(input.Notes),
		Exercises: make([]models.WorkoutExercise, 0, len(input.Exercises)),
	}
	exerciseNames := make([]string, 0, len(input.Exercises))
	seenOrders := make(map[int]struct{}, len(input.Exercises))

	for index, exerciseInput := range input.Exercises {
		exerciseName, err := NormalizeExerciseName(exerciseInput.Name)
		if err != nil {
			return models.Workout{}, nil, invalidWorkoutInput("exercise %d: %v", index+1, err)
		}

		order := exerciseInput.Order
		if order == 0 {
			order = index + 1
		}
		if order < 1 || order > models.MaxStoredInt {
			return models.Workout{}, nil, invalidWorkoutInput("exercise %d: order must be between 1 and %d", index+1, models.MaxStoredInt)
		}
		if _, exists := seenOrders[order]; exists {
			return models.Workout{}, nil, invalidWorkoutInput("exercise %d: duplicate order %d", index+1, order)
		}
		seenOrders[order] = struct{}{}

		sets, err := buildSetModels(exerciseInput.Sets)
		if err != nil {
			return models.Workout{}, nil, invalidWorkoutInput("exercise %d: %v", index+1, err)
		}

		workout.Exercises = append(workout.Exercises, models.WorkoutExercise{
			DisplayOrder: order,
			Notes:        normalizeOptionalText(exerciseInput.Notes),
			Sets:         sets,
		})
		exerciseNames = append(exerciseNames, exerciseName)
	}

	return workout, exerciseNames, nil
}

func buildSetModels(inputs []SetInput) ([]models.Set, error) {
	sets := make([]models.Set, 0, len(inputs))
	seenNumbers := make(map[int]struct{}, len(inputs))

	for index, input := range inputs {
		number := input.SetNumber
		if number == 0 {
			number = index + 1
		}
		if number < 1 || number > models.MaxStoredInt {
			return nil, fmt.Errorf("set %d: set number must be between 1 and %d", index+1, models.MaxStoredInt)
		}
		if _, exists := seenNumbers[number]; exists {
			return nil, fmt.Errorf("set %d: duplicate set number %d", index+1, number)
		}
		seenNumbers[number] = struct{}{}

		if err := checkStoredCount("reps", input.Reps); err != nil {
			return nil, fmt.Errorf("set %d: %w", number, err)
		}
		if err := checkStoredCount("duration", input.Duration); err != nil {
			return nil, fmt.Errorf("set %d: %w", number, err)
		}

		set := models.Set{
			SetNumber: number,
			Reps:      copyInt(input.Reps),
			Duration:  copyInt(input.Duration),
			Notes:     normalizeOptionalText(input.Notes),
		}
		if input.Weight != nil {
			weight := roundTo(*input.Weight, 2)
			switch {
			case math.IsNaN(weight) || math.IsInf(weight, 0):
				return nil, fmt.Errorf("set %d: weight must be a finite number", number)
			case weight < 0:
				return nil, fmt.Errorf("set %d: weight must not be negative", number)
			case weight > models.MaxWeight:
				return nil, fmt.Errorf("set %d: weight must not exceed %s", number, FormatDecimal(models.MaxWeight))
			}
			set.Weight = &weight
		}
		if input.RPE != nil {
			rpe := roundTo(*input.RPE, 1)
			if math.IsNaN(rpe) || rpe < 1 || rpe > 10 {
				return nil, fmt.Errorf("set %d: rpe must be between 1 and 10", number)
			}
			set.RPE = &rpe
		}
		sets = append(sets, set)
	}
	return sets, nil
}

func checkStoredCount(field string, value *int) error {
	if value == nil {
		return nil
	}
	if *value < 0 || *value > models.MaxStoredInt {
		return fmt.Errorf("%s must be between 0 and %d", field, models.MaxStoredInt)
	}
	return nil
}

func normalizeOptionalName(value *string) (*string, error) {
	normalized := normalizeOptionalText(value)
	if normalized != nil && utf8.RuneCountInString(*normalized) > models.MaxNameLength {
		return nil, ErrNameTooLong
	}
	return normalized, nil
}

func normalizeOptionalText(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func copyInt(value *int) *int {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

func roundTo(value float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(value*scale) / scale
}
