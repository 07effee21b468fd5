package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/ironlog/internal/services"
)

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)
	language, messages := currentLanguage(c), currentMessages(c)

	day, err := services.ParseDayParam(c.Query("date"), handler.now(), handler.location)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidDay) {
			return err
		}
		today := services.DateAtLocation(handler.now(), handler.location)
		data := handler.buildDashboardViewData(language, messages, today, nil)
		data["ErrorMessage"] = translateMessage(messages, "dashboard.error.invalid_date")
		c.Status(fiber.StatusBadRequest)
		return handler.render(c, "dashboard", data)
	}

	workouts, err := handler.workoutService.FetchWorkoutsByDate(c.UserContext(), userID, day)
	if err != nil {
		handler.log.Error("load dashboard workouts failed", "user_id", userID, "date", services.FormatDay(day), "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString(translateMessage(messages, "dashboard.error.load_failed"))
	}

	return handler.render(c, "dashboard", handler.buildDashboardViewData(language, messages, day, workouts))
}
