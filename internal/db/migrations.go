package db

import (
	"cmp"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/terraincognita07/ironlog/internal/logger"
	embeddedmigrations "github.com/terraincognita07/ironlog/migrations"
	"gorm.io/gorm"
)

var migrationFilePattern = regexp.MustCompile(`^(\d+)_.*\.sql$`)

type embeddedMigration struct {
	Version string
	Order   int
	Name    string
	SQL     string
}

// schemaMigration is one row of the schema_migrations bookkeeping table.
type schemaMigration struct {
	Version string `gorm:"primaryKey"`
	Name    string
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

// applyEmbeddedMigrations runs every migration of the dialect that is not yet recorded, each in
// its own transaction, and returns the names it applied.
func applyEmbeddedMigrations(database *gorm.DB, dialect string, log *logger.Logger) ([]string, error) {
	if log == nil {
		log = logger.Nop()
	}
	if err := ensureSchemaMigrationsTable(database, dialect); err != nil {
		return nil, err
	}

	pending, err := loadEmbeddedMigrations(dialect)
	if err != nil {
		return nil, err
	}

	var recorded []string
	if err := database.Model(&schemaMigration{}).Pluck("version", &recorded).Error; err != nil {
		return nil, fmt.Errorf("load applied migration versions: %w", err)
	}

	applied := make([]string, 0, len(pending))
	for _, migration := range pending {
		if slices.Contains(recorded, migration.Version) {
			continue
		}
		if err := applyMigration(database, migration); err != nil {
			return applied, err
		}
		log.Info("migration applied", "dialect", dialect, "name", migration.Name)
		applied = append(applied, migration.Name)
	}
	return applied, nil
}

func ensureSchemaMigrationsTable(database *gorm.DB, dialect string) error {
	appliedAtType := "DATETIME"
	if dialect == embeddedmigrations.DialectPostgres {
		appliedAtType = "TIMESTAMPTZ"
	}

	ddl := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at %s NOT NULL DEFAULT CURRENT_TIMESTAMP
);`, appliedAtType)
	if err := database.Exec(ddl).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}
	return nil
}

// loadEmbeddedMigrations returns the dialect's NNN_name.sql files ordered by version.
func loadEmbeddedMigrations(dialect string) ([]embeddedMigration, error) {
	files, err := fs.Glob(embeddedmigrations.Files, path.Join(dialect, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("list embedded %s migrations: %w", dialect, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no embedded migrations for dialect %q", dialect)
	}

	migrations := make([]embeddedMigration, 0, len(files))
	byVersion := make(map[string]string, len(files))
	for _, file := range files {
		name := path.Base(file)
		matches := migrationFilePattern.FindStringSubmatch(name)
		if matches == nil {
			continue
		}

		version := matches[1]
		if previous, ok := byVersion[version]; ok {
			return nil, fmt.Errorf("migration version %s used by both %s and %s", version, previous, name)
		}
		byVersion[version] = name

		order, err := strconv.Atoi(version)
		if err != nil {
			return nil, fmt.Errorf("migration %s: bad version: %w", name, err)
		}
		body, err := fs.ReadFile(embeddedmigrations.Files, file)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}

		migrations = append(migrations, embeddedMigration{Version: version, Order: order, Name: name, SQL: string(body)})
	}

	slices.SortFunc(migrations, func(a, b embeddedMigration) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), strings.Compare(a.Name, b.Name))
	})
	return migrations, nil
}

func applyMigration(database *gorm.DB, migration embeddedMigration) error {
	statements := splitSQLStatements(migration.SQL)
	if len(statements) == 0 {
		return fmt.Errorf("migration %s has no SQL statements", migration.Name)
	}

	return database.Transaction(func(tx *gorm.DB) error {
		for _, statement := range statements {
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("migration %s: execute %q: %w", migration.Name, statement, err)
			}
		}
		record := schemaMigration{Version: migration.Version, Name: migration.Name}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", migration.Name, err)
		}
		return nil
	})
}

// splitSQLStatements splits on semicolons. Migrations must not put semicolons inside literals.
func splitSQLStatements(sqlText string) []string {
	var statements []string
	for _, part := range strings.Split(sqlText, ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
