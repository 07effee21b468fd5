package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Workout is a logged session on a calendar day. Date holds midnight UTC of that day.
type Workout struct {
	ID        uuid.UUID `gorm:"primaryKey"`
	UserID    string    `gorm:"not null;index:idx_workouts_user_date"`
	Name      *string
	Date      time.Time `gorm:"type:date;not null;index:idx_workouts_user_date"`
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Exercises []WorkoutExercise `gorm:"foreignKey:WorkoutID"`
}

func (workout *Workout) BeforeCreate(*gorm.DB) error {
	if workout.ID == uuid.Nil {
		workout.ID = uuid.New()
	}
	return nil
}

// WorkoutExercise places an exercise inside a workout. Rows are removed together with the
// owning workout; the referenced exercise is left alone.
type WorkoutExercise struct {
	ID           uuid.UUID `gorm:"primaryKey"`
	WorkoutID    uuid.UUID `gorm:"not null;index"`
	ExerciseID   uuid.UUID `gorm:"not null"`
	DisplayOrder int       `gorm:"column:display_order;not null"`
	Notes        *string
	CreatedAt    time.Time

	Sets []Set `gorm:"foreignKey:WorkoutExerciseID"`
}

func (entry *WorkoutExercise) BeforeCreate(*gorm.DB) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return nil
}

// WorkoutExerciseEntry is a workout-exercise row joined with its exercise name.
type WorkoutExerciseEntry struct {
	ID           uuid.UUID `gorm:"column:id"`
	WorkoutID    uuid.UUID `gorm:"column:workout_id"`
	ExerciseID   uuid.UUID `gorm:"column:exercise_id"`
	ExerciseName string    `gorm:"column:exercise_name"`
	DisplayOrder int       `gorm:"column:display_order"`
	Notes        *string   `gorm:"column:notes"`
}

// Column limits shared by both dialects: integer columns are 32-bit and weight is NUMERIC(10, 2).
const (
	MaxStoredInt = math.MaxInt32
	MaxWeight    = 99999999.99
)

type Set struct {
	ID                uuid.UUID `gorm:"primaryKey"`
	WorkoutExerciseID uuid.UUID `gorm:"not null;index"`
	SetNumber         int       `gorm:"not null"`
	Reps              *int
	Weight            *float64
	Duration          *int     `gorm:"column:duration"`
	RPE               *float64 `gorm:"column:rpe"`
	Notes             *string
	CreatedAt         time.Time
}

func (set *Set) BeforeCreate(*gorm.DB) error {
	if set.ID == uuid.Nil {
		set.ID = uuid.New()
	}
	return nil
}
