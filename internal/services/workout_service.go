package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/ironlog/internal/models"
	"golang.org/x/sync/errgroup"
)

const DefaultFetchConcurrency = 8

var (
	ErrWorkoutFetchFailed  = errors.New("fetch workouts")
	ErrWorkoutCreateFailed = errors.New("create workout")
	ErrWorkoutDeleteFailed = errors.New("delete workout")
	ErrWorkoutNotFound     = errors.New("workout not found")
)

type WorkoutRepository interface {
	ListByUserAndDayRange(ctx context.Context, userID string, dayStart time.Time, dayEnd time.Time) ([]models.Workout, error)
	FindByUserAndID(ctx context.Context, userID string, workoutID uuid.UUID) (models.Workout, bool, error)
	CreateWithExercises(ctx context.Context, workout *models.Workout, exerciseNames []string) error
	DeleteByUserAndID(ctx context.Context, userID string, workoutID uuid.UUID) (bool, error)
}

type WorkoutExerciseRepository interface {
	ListByWorkout(ctx context.Context, workoutID uuid.UUID) ([]models.WorkoutExerciseEntry, error)
}

type SetRepository interface {
	ListByWorkoutExercise(ctx context.Context, workoutExerciseID uuid.UUID) ([]models.Set, error)
}

type WorkoutService struct {
	workouts         WorkoutRepository
	workoutExercises WorkoutExerciseRepository
	sets             SetRepository
	fetchConcurrency int
	location         *time.Location
	now              func() time.Time
}

func NewWorkoutService(workouts WorkoutRepository, workoutExercises WorkoutExerciseRepository, sets SetRepository, fetchConcurrency int, location *time.Location) *WorkoutService {
	if fetchConcurrency <= 0 {
		fetchConcurrency = DefaultFetchConcurrency
	}
	if location == nil {
		location = time.UTC
	}
	return &WorkoutService{
		workouts:         workouts,
		workoutExercises: workoutExercises,
		sets:             sets,
		fetchConcurrency: fetchConcurrency,
		location:         location,
		now:              time.Now,
	}
}

func (service *WorkoutService) Location() *time.Location {
	return service.location
}

// FetchWorkoutsByDate returns the user's workouts on day with exercises ordered by display order
// and sets ordered by set number. Any storage failure fails the whole fetch.
func (service *WorkoutService) FetchWorkoutsByDate(ctx context.Context, userID string, day time.Time) ([]WorkoutDetail, error) {
	dayStart, dayEnd := StorageDayRange(day)
	workouts, err := service.workouts.ListByUserAndDayRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWorkoutFetchFailed, err)
	}

	details := make([]WorkoutDetail, len(workouts))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(service.fetchConcurrency)
	for index := range workouts {
		group.Go(func() error {
			detail, err := service.fetchWorkoutDetail(groupCtx, workouts[index])
			if err != nil {
				return err
			}
			details[index] = detail
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWorkoutFetchFailed, err)
	}
	return details, nil
}

func (service *WorkoutService) fetchWorkoutDetail(ctx context.Context, workout models.Workout) (WorkoutDetail, error) {
	entries, err := service.workoutExercises.ListByWorkout(ctx, workout.ID)
	if err != nil {
		return WorkoutDetail{}, err
	}

	exercises := make([]ExerciseDetail, len(entries))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(service.fetchConcurrency)
	for index := range entries {
		group.Go(func() error {
			sets, err := service.sets.ListByWorkoutExercise(groupCtx, entries[index].ID)
			if err != nil {
				return err
			}
			exercises[index] = newExerciseDetail(entries[index], sets)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return WorkoutDetail{}, err
	}
	return newWorkoutDetail(workout, exercises), nil
}

// LogWorkout stores the workout with all exercises and sets atomically and returns it as read
// back from storage. An empty input date means today.
func (service *WorkoutService) LogWorkout(ctx context.Context, userID string, input WorkoutInput) (WorkoutDetail, error) {
	day, err := ParseDayParam(input.Date, service.now(), service.location)
	if err != nil {
		return WorkoutDetail{}, err
	}

	workout, exerciseNames, err := buildWorkoutModel(userID, input, day)
	if err != nil {
		return WorkoutDetail{}, err
	}
	if err := service.workouts.CreateWithExercises(ctx, &workout, exerciseNames); err != nil {
		return WorkoutDetail{}, fmt.Errorf("%w: %w", ErrWorkoutCreateFailed, err)
	}

	detail, err := service.fetchWorkoutDetail(ctx, workout)
	if err != nil {
		return WorkoutDetail{}, fmt.Errorf("%w: %w", ErrWorkoutFetchFailed, err)
	}
	return detail, nil
}

func (service *WorkoutService) GetWorkout(ctx context.Context, userID string, workoutID uuid.UUID) (WorkoutDetail, error) {
	workout, found, err := service.workouts.FindByUserAndID(ctx, userID, workoutID)
	if err != nil {
		return WorkoutDetail{}, fmt.Errorf("%w: %w", ErrWorkoutFetchFailed, err)
	}
	if !found {
		return WorkoutDetail{}, ErrWorkoutNotFound
	}

	detail, err := service.fetchWorkoutDetail(ctx, workout)
	if err != nil {
		return WorkoutDetail{}, fmt.Errorf("%w: %w", ErrWorkoutFetchFailed, err)
	}
	return detail, nil
}

func (service *WorkoutService) DeleteWorkout(ctx context.Context, userID string, workoutID uuid.UUID) error {
	deleted, err := service.workouts.DeleteByUserAndID(ctx, userID, workoutID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWorkoutDeleteFailed, err)
	}
	if !deleted {
		return ErrWorkoutNotFound
	}
	return nil
}
