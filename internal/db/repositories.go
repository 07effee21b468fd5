package db

import "gorm.io/gorm"

type Repositories struct {
	Exercises        *ExerciseRepository
	Workouts         *WorkoutRepository
	WorkoutExercises *WorkoutExerciseRepository
	Sets             *SetRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Exercises:        NewExerciseRepository(database),
		Workouts:         NewWorkoutRepository(database),
		WorkoutExercises: NewWorkoutExerciseRepository(database),
		Sets:             NewSetRepository(database),
	}
}
