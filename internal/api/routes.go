package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/login", handler.ShowLoginPage)
	app.Get("/auth/:provider", handler.BeginAuth)
	app.Get("/auth/:provider/callback", handler.AuthCallback)
	app.Post("/logout", handler.Logout)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	})
	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api", handler.AuthRequired)

	api.Get("/workouts", handler.ListWorkouts)
	api.Post("/workouts", handler.CreateWorkout)
	api.Get("/workouts/:id", handler.GetWorkout)
	api.Delete("/workouts/:id", handler.DeleteWorkout)

	api.Get("/exercises", handler.ListExercises)
	api.Post("/exercises", handler.CreateExercise)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
