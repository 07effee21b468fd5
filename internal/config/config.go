package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/ironlog/internal/security"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	defaultPort = "8080"
)

type Config struct {
	Env             string
	Port            string
	Location        *time.Location
	DBDriver        string
	DBPath          string
	DatabaseURL     string
	SecretKey       string
	CookieSecure    bool
	DefaultLanguage string
	TemplatesDir    string
	LocalesDir      string
	StaticDir       string
	LogMode         string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string

	FetchConcurrency int

	// Warnings collects non-fatal problems found while loading, for logging once a logger exists.
	Warnings []string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Env:                strings.ToLower(getEnv("ENV", EnvDevelopment)),
		DBDriver:           strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBPath:             getEnv("DB_PATH", filepath.Join("data", "ironlog.db")),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DefaultLanguage:    getEnv("DEFAULT_LANGUAGE", "en"),
		TemplatesDir:       getEnv("TEMPLATES_DIR", filepath.Join("internal", "templates")),
		LocalesDir:         getEnv("LOCALES_DIR", filepath.Join("internal", "i18n", "locales")),
		StaticDir:          getEnv("STATIC_DIR", filepath.Join("web", "static")),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleCallbackURL:  getEnv("GOOGLE_CALLBACK_URL", "http://localhost:8080/auth/google/callback"),
	}
	if cfg.Env != EnvDevelopment && cfg.Env != EnvProduction {
		return nil, fmt.Errorf("ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, cfg.Env)
	}
	cfg.LogMode = getEnv("LOG_MODE", cfg.Env)

	port, err := resolvePort()
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	location, warning := resolveLocation(os.Getenv("TZ"))
	cfg.Location = location
	if warning != "" {
		cfg.Warnings = append(cfg.Warnings, warning)
	}

	if cfg.DBDriver == "postgres" && strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, errors.New("DATABASE_URL is required when DB_DRIVER=postgres")
	}

	secret, err := resolveSecretKey(cfg.Env)
	if err != nil {
		return nil, err
	}
	if secret.generated {
		cfg.Warnings = append(cfg.Warnings, "SECRET_KEY is not set, using an ephemeral development secret; sessions will not survive a restart")
	}
	cfg.SecretKey = secret.value

	cookieSecure, err := parseBoolEnv("COOKIE_SECURE", cfg.Env == EnvProduction)
	if err != nil {
		return nil, err
	}
	cfg.CookieSecure = cookieSecure

	concurrency, err := parseIntEnv("FETCH_CONCURRENCY", 8)
	if err != nil {
		return nil, err
	}
	if concurrency < 1 {
		return nil, fmt.Errorf("FETCH_CONCURRENCY must be positive, got %d", concurrency)
	}
	cfg.FetchConcurrency = concurrency

	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		cfg.Warnings = append(cfg.Warnings, "GOOGLE_CLIENT_ID or GOOGLE_CLIENT_SECRET is not set, sign-in will fail")
	}

	return cfg, nil
}

func (cfg *Config) IsProduction() bool {
	return cfg.Env == EnvProduction
}

type resolvedSecret struct {
	value     string
	generated bool
}

func resolveSecretKey(env string) (resolvedSecret, error) {
	raw := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if raw == "" && env == EnvDevelopment {
		generated, err := security.EphemeralSecret()
		if err != nil {
			return resolvedSecret{}, fmt.Errorf("generate development secret: %w", err)
		}
		return resolvedSecret{value: generated, generated: true}, nil
	}
	if err := security.ValidateSecret(raw); err != nil {
		return resolvedSecret{}, fmt.Errorf("SECRET_KEY: %w", err)
	}
	return resolvedSecret{value: raw}, nil
}

func resolvePort() (string, error) {
	raw := getEnv("PORT", defaultPort)
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("PORT must be a number between 1 and 65535, got %q", raw)
	}
	return strconv.Itoa(port), nil
}

func resolveLocation(name string) (*time.Location, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.Local, ""
	}
	location, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, fmt.Sprintf("invalid TZ %q, falling back to UTC", name)
	}
	return location, ""
}

func parseBoolEnv(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
	return value, nil
}

func parseIntEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return value, nil
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
