package db

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/terraincognita07/ironlog/internal/logger"
	embeddedmigrations "github.com/terraincognita07/ironlog/migrations"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func OpenPostgres(databaseURL string, log *logger.Logger) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, errors.New("database URL is required")
	}

	dsn, err := ensureTimezoneUTC(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: newGormLogger(log), TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if _, err := applyEmbeddedMigrations(database, embeddedmigrations.DialectPostgres, log); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return database, nil
}

// ensureTimezoneUTC pins the session time zone so DATE columns round-trip as UTC midnight.
func ensureTimezoneUTC(databaseURL string) (string, error) {
	parsed, err := url.Parse(databaseURL)
	if err != nil {
		return "", err
	}

	query := parsed.Query()
	if query.Get("TimeZone") == "" {
		query.Set("TimeZone", "UTC")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String(), nil
}
