package i18n

import (
	"strconv"
	"time"
)

// DayLabel renders a calendar day for headings, e.g. "1st Jun 2024" in English.
func (manager *Manager) DayLabel(language string, day time.Time) string {
	language = manager.NormalizeLanguage(language)
	month := manager.Translate(language, "date.month_short."+strconv.Itoa(int(day.Month())))
	return manager.Translatef(language, "date.day_label", dayOrdinal(language, day.Day()), month, day.Year())
}

func (manager *Manager) WeekdayName(language string, day time.Time) string {
	return manager.Translate(language, "date.weekday."+strconv.Itoa(int(day.Weekday())))
}

func dayOrdinal(language string, day int) string {
	number := strconv.Itoa(day)
	if language != LangEN {
		return number
	}
	if day%100 >= 11 && day%100 <= 13 {
		return number + "th"
	}
	switch day % 10 {
	case 1:
		return number + "st"
	case 2:
		return number + "nd"
	case 3:
		return number + "rd"
	default:
		return number + "th"
	}
}
