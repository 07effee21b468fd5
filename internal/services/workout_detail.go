package services

import (
	"github.com/google/uuid"
	"github.com/terraincognita07/ironlog/internal/models"
)

type WorkoutDetail struct {
	ID        uuid.UUID        `json:"id"`
	Name      *string          `json:"name,omitempty"`
	Date      string           `json:"date"`
	Notes     *string          `json:"notes,omitempty"`
	Exercises []ExerciseDetail `json:"exercises"`
}

type ExerciseDetail struct {
	ID         uuid.UUID   `json:"id"`
	ExerciseID uuid.UUID   `json:"exerciseId"`
	Name       string      `json:"name"`
	Order      int         `json:"order"`
	Notes      *string     `json:"notes,omitempty"`
	Sets       []SetDetail `json:"sets"`
}

type SetDetail struct {
	ID        uuid.UUID `json:"id"`
	SetNumber int       `json:"setNumber"`
	Reps      *int      `json:"reps,omitempty"`
	Weight    *float64  `json:"weight,omitempty"`
	Duration  *int      `json:"duration,omitempty"`
	RPE       *float64  `json:"rpe,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
}

func newWorkoutDetail(workout models.Workout, exercises []ExerciseDetail) WorkoutDetail {
	if exercises == nil {
		exercises = make([]ExerciseDetail, 0)
	}
	return WorkoutDetail{
		ID:        workout.ID,
		Name:      workout.Name,
		Date:      FormatDay(StorageDay(workout.Date)),
		Notes:     workout.Notes,
		Exercises: exercises,
	}
}

func newExerciseDetail(entry models.WorkoutExerciseEntry, sets []models.Set) ExerciseDetail {
	details := make([]SetDetail, 0, len(sets))
	for _, set := range sets {
		details = append(details, SetDetail{
			ID:        set.ID,
			SetNumber: set.SetNumber,
			Reps:      set.Reps,
			Weight:    set.Weight,
			Duration:  set.Duration,
			RPE:       set.RPE,
			Notes:     set.Notes,
		})
	}
	return ExerciseDetail{
		ID:         entry.ID,
		ExerciseID: entry.ExerciseID,
		Name:       entry.ExerciseName,
		Order:      entry.DisplayOrder,
		Notes:      entry.Notes,
		Sets:       details,
	}
}
