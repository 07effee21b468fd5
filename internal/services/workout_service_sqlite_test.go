package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/terraincognita07/ironlog/internal/db"
)

func newSQLiteWorkoutService(t *testing.T) (*WorkoutService, *ExerciseService) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "ironlog-services.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(database)
	})

	repositories := db.NewRepositories(database)
	workouts := NewWorkoutService(repositories.Workouts, repositories.WorkoutExercises, repositories.Sets, 4, time.UTC)
	exercises := NewExerciseService(repositories.Exercises)
	return workouts, exercises
}

func TestPushDayScenarioRoundTrip(t *testing.T) {
	service, _ := newSQLiteWorkoutService(t)
	ctx := context.Background()

	if _, err := service.LogWorkout(ctx, "u1", WorkoutInput{
		Date: "2024-06-01",
		Name: stringPtr("Push Day"),
		Exercises: []WorkoutExerciseInput{
			{Name: "Bench Press", Order: 1, Sets: []SetInput{
				{SetNumber: 1, Reps: intPtr(10), Weight: floatPtr(135.00)},
				{SetNumber: 2, Reps: intPtr(8), Weight: floatPtr(155.00), RPE: floatPtr(8.0)},
			}},
		},
	}); err != nil {
		t.Fatalf("LogWorkout() unexpected error: %v", err)
	}

	details, err := service.FetchWorkoutsByDate(ctx, "u1", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("FetchWorkoutsByDate() unexpected error: %v", err)
	}
	if len(details) != 1 || len(details[0].Exercises) != 1 {
		t.Fatalf("expected one workout with one exercise, got %#v", details)
	}

	exercise := details[0].Exercises[0]
	if exercise.Name != "Bench Press" || exercise.Order != 1 || len(exercise.Sets) != 2 {
		t.Fatalf("unexpected exercise: %#v", exercise)
	}
	first, second := exercise.Sets[0], exercise.Sets[1]
	if first.SetNumber != 1 || *first.Reps != 10 || *first.Weight != 135 || first.RPE != nil {
		t.Fatalf("unexpected first set: %#v", first)
	}
	if second.SetNumber != 2 || *second.Reps != 8 || *second.Weight != 155 || second.RPE == nil || *second.RPE != 8 {
		t.Fatalf("unexpected second set: %#v", second)
	}

	encoded, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal set: %v", err)
	}
	if strings.Contains(string(encoded), "rpe") || strings.Contains(string(encoded), "duration") {
		t.Fatalf("expected absent fields to be omitted, got %s", encoded)
	}

	others, err := service.FetchWorkoutsByDate(ctx, "u2", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("FetchWorkoutsByDate(u2) unexpected error: %v", err)
	}
	if len(others) != 0 {
		t.Fatalf("expected no workouts for another user, got %d", len(others))
	}
}

func TestRoundTripReturnsEveryInsertedSet(t *testing.T) {
	service, exercises := newSQLiteWorkoutService(t)
	ctx := context.Background()

	const exerciseCount = 3
	const setCount = 4
	input := WorkoutInput{Date: "2024-06-02"}
	for exerciseIndex := 0; exerciseIndex < exerciseCount; exerciseIndex++ {
		exerciseInput := WorkoutExerciseInput{Name: []string{"Squat", "Lunge", "Calf Raise"}[exerciseIndex]}
		// Reverse numbering checks that retrieval sorts instead of trusting insert order.
		for setIndex := 0; setIndex < setCount; setIndex++ {
			exerciseInput.Sets = append(exerciseInput.Sets, SetInput{
				SetNumber: setCount - setIndex,
				Reps:      intPtr(setIndex + 5),
				Weight:    floatPtr(float64(100 + setIndex*10)),
			})
		}
		exerciseInput.Order = exerciseCount - exerciseIndex
		input.Exercises = append(input.Exercises, exerciseInput)
	}

	if _, err := service.LogWorkout(ctx, "u1", input); err != nil {
		t.Fatalf("LogWorkout() unexpected error: %v", err)
	}

	details, err := service.FetchWorkoutsByDate(ctx, "u1", time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("FetchWorkoutsByDate() unexpected error: %v", err)
	}
	if len(details) != 1 || len(details[0].Exercises) != exerciseCount {
		t.Fatalf("expected %d exercises, got %#v", exerciseCount, details)
	}

	total := 0
	for index, exercise := range details[0].Exercises {
		if exercise.Order != index+1 {
			t.Fatalf("expected ascending order, got %d at %d", exercise.Order, index)
		}
		for setIndex, set := range exercise.Sets {
			if set.SetNumber != setIndex+1 {
				t.Fatalf("expected ascending set numbers, got %d at %d", set.SetNumber, setIndex)
			}
			wantWeight := float64(100 + (setCount-set.SetNumber)*10)
			if set.Weight == nil || *set.Weight != wantWeight {
				t.Fatalf("set %d weight = %v, want %v", set.SetNumber, set.Weight, wantWeight)
			}
			total++
		}
	}
	if total != exerciseCount*setCount {
		t.Fatalf("expected %d sets, got %d", exerciseCount*setCount, total)
	}
	if details[0].Exercises[0].Name != "Calf Raise" {
		t.Fatalf("expected order 1 to be Calf Raise, got %q", details[0].Exercises[0].Name)
	}

	library, err := exercises.ListExercises(ctx, "u1")
	if err != nil {
		t.Fatalf("ListExercises() unexpected error: %v", err)
	}
	if len(library) != exerciseCount || library[0].Name != "Calf Raise" {
		t.Fatalf("expected exercise library sorted by name, got %#v", library)
	}
}

func TestLogWorkoutConcurrentWritersAllSucceed(t *testing.T) {
	service, _ := newSQLiteWorkoutService(t)
	ctx := context.Background()

	const writers = 8
	errs := make([]error, writers)
	var wg sync.WaitGroup
	for index := 0; index < writers; index++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			_, errs[index] = service.LogWorkout(ctx, fmt.Sprintf("user%d", index), WorkoutInput{
				Date: "2024-06-01",
				Exercises: []WorkoutExerciseInput{{
					Name: fmt.Sprintf("Lift%d", index),
					Sets: []SetInput{{Reps: intPtr(5), Weight: floatPtr(100)}},
				}},
			})
		}(index)
	}
	wg.Wait()

	for index, err := range errs {
		if err != nil {
			t.Fatalf("writer %d: LogWorkout() unexpected error: %v", index, err)
		}
	}
	for index := 0; index < writers; index++ {
		details, err := service.FetchWorkoutsByDate(ctx, fmt.Sprintf("user%d", index), time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
		if err != nil {
			t.Fatalf("FetchWorkoutsByDate(user%d) unexpected error: %v", index, err)
		}
		if len(details) != 1 || details[0].Exercises[0].Name != fmt.Sprintf("Lift%d", index) {
			t.Fatalf("user%d: unexpected workouts %#v", index, details)
		}
	}
}

func TestCreateExerciseConcurrentDuplicatesReportExists(t *testing.T) {
	_, exercises := newSQLiteWorkoutService(t)
	ctx := context.Background()

	const callers = 16
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for index := 0; index < callers; index++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			_, errs[index] = exercises.CreateExercise(ctx, "u1", "Squat")
		}(index)
	}
	wg.Wait()

	created, exists := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrExerciseExists):
			exists++
		default:
			t.Fatalf("CreateExercise() unexpected error: %v", err)
		}
	}
	if created != 1 || exists != callers-1 {
		t.Fatalf("expected 1 created and %d duplicates, got created=%d exists=%d", callers-1, created, exists)
	}

	list, err := exercises.ListExercises(ctx, "u1")
	if err != nil {
		t.Fatalf("ListExercises() unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one stored exercise, got %#v", list)
	}
}
