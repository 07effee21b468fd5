package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/ironlog/internal/services"
)

type workoutCardView struct {
	ID        string
	Title     string
	Notes     string
	Exercises []exerciseView
}

type exerciseView struct {
	Name     string
	Notes    string
	SetLines []string
}

func (handler *Handler) buildDashboardViewData(language string, messages map[string]string, day time.Time, workouts []services.WorkoutDetail) fiber.Map {
	today := services.DateAtLocation(handler.now(), handler.location)
	return fiber.Map{
		"Title":        localizedPageTitle(messages, "meta.title.dashboard", "Ironlog | Workouts"),
		"Date":         services.FormatDay(day),
		"DateLabel":    handler.i18n.DayLabel(language, day),
		"Weekday":      handler.i18n.WeekdayName(language, day),
		"PreviousDate": services.FormatDay(day.AddDate(0, 0, -1)),
		"NextDate":     services.FormatDay(day.AddDate(0, 0, 1)),
		"IsToday":      day.Equal(today),
		"Today":        services.FormatDay(today),
		"Workouts":     buildWorkoutCards(messages, workouts),
	}
}

func buildWorkoutCards(messages map[string]string, workouts []services.WorkoutDetail) []workoutCardView {
	format := setLineFormatFromMessages(messages)
	cards := make([]workoutCardView, 0, len(workouts))
	for _, workout := range workouts {
		card := workoutCardView{
			ID:        workout.ID.String(),
			Title:     translateMessage(messages, "workout.untitled"),
			Notes:     optionalText(workout.Notes),
			Exercises: make([]exerciseView, 0, len(workout.Exercises)),
		}
		if name := optionalText(workout.Name); name != "" {
			card.Title = name
		}
		for _, exercise := range workout.Exercises {
			view := exerciseView{
				Name:     exercise.Name,
				Notes:    optionalText(exercise.Notes),
				SetLines: make([]string, 0, len(exercise.Sets)),
			}
			for _, set := range exercise.Sets {
				view.SetLines = append(view.SetLines, format.Line(set))
			}
			card.Exercises = append(card.Exercises, view)
		}
		cards = append(cards, card)
	}
	return cards
}

// setLineFormatFromMessages keeps the English patterns for any key a catalog does not define.
func setLineFormatFromMessages(messages map[string]string) services.SetLineFormat {
	format := services.DefaultSetLineFormat
	for key, target := range map[string]*string{
		"workout.set.label":  &format.Label,
		"workout.set.reps":   &format.Reps,
		"workout.set.weight": &format.Weight,
		"workout.set.rpe":    &format.RPE,
	} {
		if value := strings.TrimSpace(messages[key]); value != "" {
			*target = value
		}
	}
	return format
}

func optionalText(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
