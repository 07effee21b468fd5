package db

import (
	"fmt"
	"strings"

	"github.com/terraincognita07/ironlog/internal/logger"
	embeddedmigrations "github.com/terraincognita07/ironlog/migrations"
	"gorm.io/gorm"
)

type Options struct {
	Driver      string
	SQLitePath  string
	DatabaseURL string
}

func Open(options Options, log *logger.Logger) (*gorm.DB, error) {
	switch strings.ToLower(strings.TrimSpace(options.Driver)) {
	case "", embeddedmigrations.DialectSQLite:
		return OpenSQLite(options.SQLitePath, log)
	case embeddedmigrations.DialectPostgres, "postgresql":
		return OpenPostgres(options.DatabaseURL, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", options.Driver)
	}
}

func Close(database *gorm.DB) error {
	if database == nil {
		return nil
	}

	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("get underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
