package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/ironlog/internal/services"
)

func (handler *Handler) ListWorkouts(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	day, err := services.ParseDayParam(c.Query("date"), handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	workouts, err := handler.workoutService.FetchWorkoutsByDate(c.UserContext(), userID, day)
	if err != nil {
		handler.log.Error("list workouts failed", "user_id", userID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load workouts")
	}

	return c.JSON(fiber.Map{
		"date":     services.FormatDay(day),
		"workouts": workouts,
	})
}

func (handler *Handler) GetWorkout(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)
	workoutID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid workout id")
	}

	workout, err := handler.workoutService.GetWorkout(c.UserContext(), userID, workoutID)
	switch {
	case errors.Is(err, services.ErrWorkoutNotFound):
		return apiError(c, fiber.StatusNotFound, "workout not found")
	case err != nil:
		handler.log.Error("get workout failed", "user_id", userID, "workout_id", workoutID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load workout")
	}
	return c.JSON(workout)
}

func (handler *Handler) CreateWorkout(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	input := services.WorkoutInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	workout, err := handler.workoutService.LogWorkout(c.UserContext(), userID, input)
	switch {
	case errors.Is(err, services.ErrInvalidDay):
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	case errors.Is(err, services.ErrInvalidWorkoutInput):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		handler.log.Error("create workout failed", "user_id", userID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to save workout")
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

func (handler *Handler) DeleteWorkout(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)
	workoutID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid workout id")
	}

	err = handler.workoutService.DeleteWorkout(c.UserContext(), userID, workoutID)
	switch {
	case errors.Is(err, services.ErrWorkoutNotFound):
		return apiError(c, fiber.StatusNotFound, "workout not found")
	case err != nil:
		handler.log.Error("delete workout failed", "user_id", userID, "workout_id", workoutID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to delete workout")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
