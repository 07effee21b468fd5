package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/ironlog/internal/db"
	"github.com/terraincognita07/ironlog/internal/i18n"
	"github.com/terraincognita07/ironlog/internal/services"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	internalDir := internalDirForTest(t)
	templatesDir := filepath.Join(internalDir, "templates")
	localesDir := filepath.Join(internalDir, "i18n", "locales")

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "ironlog-api-test.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(database)
	})

	i18nManager, err := i18n.NewManager("en", localesDir)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	handler, err := NewHandler(database, HandlerOptions{
		SecretKey:        testSecretKey,
		TemplatesDir:     templatesDir,
		Location:         time.UTC,
		I18n:             i18nManager,
		FetchConcurrency: 4,
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, handler
}

func internalDirForTest(t *testing.T) string {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}
	return filepath.Dir(filepath.Dir(testFile))
}

func templatesDirForTest(t *testing.T) string {
	return filepath.Join(internalDirForTest(t), "templates")
}

func sessionCookieFor(t *testing.T, handler *Handler, userID string) string {
	t.Helper()

	value, _, err := handler.buildSessionValue(userID, time.Hour)
	if err != nil {
		t.Fatalf("build session value: %v", err)
	}
	return sessionCookieName + "=" + value
}

func performRequest(t *testing.T, app *fiber.App, method string, target string, body string, cookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	request.Header.Set("Accept-Language", "en")
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, target, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func readBody(t *testing.T, response *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(body)
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func logPushDay(t *testing.T, handler *Handler, userID string) services.WorkoutDetail {
	t.Helper()

	reps10, reps8 := 10, 8
	weight135, weight155, rpe8 := 135.0, 155.0, 8.0
	name := "Push Day"
	workout, err := handler.workoutService.LogWorkout(context.Background(), userID, services.WorkoutInput{
		Date: "2024-06-01",
		Name: &name,
		Exercises: []services.WorkoutExerciseInput{
			{Name: "Bench Press", Order: 1, Sets: []services.SetInput{
				{SetNumber: 1, Reps: &reps10, Weight: &weight135},
				{SetNumber: 2, Reps: &reps8, Weight: &weight155, RPE: &rpe8},
			}},
		},
	})
	if err != nil {
		t.Fatalf("log push day: %v", err)
	}
	return workout
}
