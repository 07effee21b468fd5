package main

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/ironlog/internal/api"
)

const csrfHeaderName = "X-CSRF-Token"

func newFiberApp(handler *api.Handler, cookieSecure bool, staticDir string, accessLog io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Ironlog",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "${status} ${method} ${path} ${latency}\n",
		TimeFormat: "2006-01-02T15:04:05Z07:00",
		Output:     accessLog,
	}))
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)
	app.Use(csrf.New(csrfMiddlewareConfig(cookieSecure)))

	app.Static("/static", staticDir)
	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "ironlog_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
		Extractor:      csrfTokenExtractor,
	}
}

// csrfTokenExtractor accepts the token from the X-CSRF-Token header, used by JSON clients, and
// falls back to the csrf_token form field.
func csrfTokenExtractor(c *fiber.Ctx) (string, error) {
	if token := strings.TrimSpace(c.Get(csrfHeaderName)); token != "" {
		return token, nil
	}
	return csrf.CsrfFromForm("csrf_token")(c)
}
