package api

import (
	"testing"

	"github.com/google/uuid"
	"github.com/terraincognita07/ironlog/internal/services"
)

func TestBuildWorkoutCardsUsesCatalogPatterns(t *testing.T) {
	reps, weight := 5, 100.0
	workouts := []services.WorkoutDetail{{
		ID: uuid.New(),
		Exercises: []services.ExerciseDetail{{
			Name: "Присед",
			Sets: []services.SetDetail{{SetNumber: 1, Reps: &reps, Weight: &weight}},
		}},
	}}
	messages := map[string]string{
		"workout.untitled":   "Тренировка",
		"workout.set.label":  "Подход %d",
		"workout.set.reps":   "%d повт.",
		"workout.set.weight": "%s фунт.",
	}

	cards := buildWorkoutCards(messages, workouts)
	if len(cards) != 1 || cards[0].Title != "Тренировка" {
		t.Fatalf("expected untitled fallback card, got %#v", cards)
	}
	if got := cards[0].Exercises[0].SetLines[0]; got != "Подход 1: 5 повт. @ 100 фунт." {
		t.Fatalf("unexpected set line %q", got)
	}
}

func TestBuildWorkoutCardsKeepsEnglishPatternsForMissingKeys(t *testing.T) {
	rpe := 7.5
	name := "  Pull Day "
	notes := "felt strong"
	workouts := []services.WorkoutDetail{{
		ID:    uuid.New(),
		Name:  &name,
		Notes: &notes,
		Exercises: []services.ExerciseDetail{{
			Name: "Row",
			Sets: []services.SetDetail{{SetNumber: 3, RPE: &rpe}},
		}},
	}}

	cards := buildWorkoutCards(map[string]string{}, workouts)
	if cards[0].Title != "Pull Day" || cards[0].Notes != "felt strong" {
		t.Fatalf("unexpected card header: %#v", cards[0])
	}
	if got := cards[0].Exercises[0].SetLines[0]; got != "Set 3: (RPE 7.5)" {
		t.Fatalf("unexpected set line %q", got)
	}
}

func TestSanitizeRedirectPath(t *testing.T) {
	tests := map[string]string{
		"":                     "/dashboard",
		"/dashboard?date=2024": "/dashboard?date=2024",
		"//evil.example.com":   "/dashboard",
		"https://evil.example": "/dashboard",
		"relative/path":        "/dashboard",
	}
	for raw, want := range tests {
		if got := sanitizeRedirectPath(raw, "/dashboard"); got != want {
			t.Fatalf("sanitizeRedirectPath(%q) = %q, want %q", raw, got, want)
		}
	}
}
