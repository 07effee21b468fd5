package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/ironlog/internal/services"
)

type exercisePayload struct {
	Name string `json:"name" form:"name"`
}

type exerciseResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (handler *Handler) ListExercises(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	exercises, err := handler.exerciseService.ListExercises(c.UserContext(), userID)
	if err != nil {
		handler.log.Error("list exercises failed", "user_id", userID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load exercises")
	}

	response := make([]exerciseResponse, 0, len(exercises))
	for _, exercise := range exercises {
		response = append(response, exerciseResponse{ID: exercise.ID.String(), Name: exercise.Name})
	}
	return c.JSON(response)
}

func (handler *Handler) CreateExercise(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	payload := exercisePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	exercise, err := handler.exerciseService.CreateExercise(c.UserContext(), userID, payload.Name)
	switch {
	case errors.Is(err, services.ErrExerciseNameRequired), errors.Is(err, services.ErrNameTooLong):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrExerciseExists):
		return apiError(c, fiber.StatusConflict, "exercise already exists")
	case err != nil:
		handler.log.Error("create exercise failed", "user_id", userID, "error", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to save exercise")
	}
	return c.Status(fiber.StatusCreated).JSON(exerciseResponse{ID: exercise.ID.String(), Name: exercise.Name})
}
