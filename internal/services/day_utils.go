package services

import (
	"errors"
	"strings"
	"time"
)

const DayLayout = "2006-01-02"

var ErrInvalidDay = errors.New("invalid date")

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func ParseDay(raw string, location *time.Location) (time.Time, error) {
	return ParseDayParam(raw, time.Now(), location)
}

// ParseDayParam resolves a YYYY-MM-DD request value. An empty value means today in location.
func ParseDayParam(raw string, now time.Time, location *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DateAtLocation(now, location), nil
	}
	if location == nil {
		location = time.UTC
	}
	// time.Parse accepts single-digit fields for some layouts, so the length check keeps the
	// format strict.
	if len(raw) != len(DayLayout) {
		return time.Time{}, ErrInvalidDay
	}
	parsed, err := time.ParseInLocation(DayLayout, raw, location)
	if err != nil {
		return time.Time{}, ErrInvalidDay
	}
	return parsed, nil
}

// StorageDayRange maps a calendar day to the half-open UTC range its rows are stored in.
func StorageDayRange(day time.Time) (time.Time, time.Time) {
	start := StorageDay(day)
	return start, start.AddDate(0, 0, 1)
}

func StorageDay(day time.Time) time.Time {
	year, month, date := day.Date()
	return time.Date(year, month, date, 0, 0, 0, 0, time.UTC)
}

func FormatDay(day time.Time) string {
	return day.Format(DayLayout)
}
