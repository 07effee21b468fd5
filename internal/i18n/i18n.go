package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

const (
	LangEN = "en"
	LangRU = "ru"

	// FallbackLanguage must always be present; other catalogs are merged over it.
	FallbackLanguage = LangEN
)

type Manager struct {
	defaultLanguage string
	catalogs        map[string]map[string]string
	supported       []string
}

func NewManager(defaultLanguage string, localesDir string) (*Manager, error) {
	if _, err := os.Stat(localesDir); err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}
	return NewManagerFS(defaultLanguage, os.DirFS(localesDir))
}

func NewManagerFS(defaultLanguage string, locales fs.FS) (*Manager, error) {
	entries, err := fs.ReadDir(locales, ".")
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}

	raw := map[string]map[string]string{}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}
		language := normalizeLanguageTag(strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))

		content, err := fs.ReadFile(locales, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", language, err)
		}
		messages := map[string]string{}
		if err := json.Unmarshal(content, &messages); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", language, err)
		}
		if len(messages) == 0 {
			return nil, fmt.Errorf("locale %s is empty", language)
		}
		raw[language] = messages
	}

	fallback, ok := raw[FallbackLanguage]
	if !ok {
		return nil, fmt.Errorf("required locale %q missing", FallbackLanguage)
	}

	manager := &Manager{catalogs: make(map[string]map[string]string, len(raw))}
	for language, messages := range raw {
		merged := make(map[string]string, len(fallback))
		for key, value := range fallback {
			merged[key] = value
		}
		for key, value := range messages {
			if strings.TrimSpace(value) != "" {
				merged[key] = value
			}
		}
		manager.catalogs[language] = merged
		manager.supported = append(manager.supported, language)
	}
	sort.Strings(manager.supported)

	manager.defaultLanguage = FallbackLanguage
	manager.defaultLanguage = manager.NormalizeLanguage(defaultLanguage)
	return manager, nil
}

func (manager *Manager) DefaultLanguage() string {
	return manager.defaultLanguage
}

func (manager *Manager) SupportedLanguages() []string {
	result := make([]string, len(manager.supported))
	copy(result, manager.supported)
	return result
}

// NormalizeLanguage maps a tag such as "ru-RU" to a loaded catalog, or the default language.
func (manager *Manager) NormalizeLanguage(raw string) string {
	if language := normalizeLanguageTag(raw); manager.isSupported(language) {
		return language
	}
	return manager.defaultLanguage
}

// DetectFromAcceptLanguage picks the first supported language in header order. Quality values
// are ignored.
func (manager *Manager) DetectFromAcceptLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag, _, _ := strings.Cut(part, ";")
		if language := normalizeLanguageTag(tag); manager.isSupported(language) {
			return language
		}
	}
	return manager.defaultLanguage
}

// Messages returns the catalog for language. The map is shared and must not be modified.
func (manager *Manager) Messages(language string) map[string]string {
	return manager.catalogs[manager.NormalizeLanguage(language)]
}

func (manager *Manager) Translate(language string, key string) string {
	if value, ok := manager.Messages(language)[key]; ok {
		return value
	}
	return key
}

func (manager *Manager) Translatef(language string, key string, args ...any) string {
	return fmt.Sprintf(manager.Translate(language, key), args...)
}

func (manager *Manager) isSupported(language string) bool {
	_, ok := manager.catalogs[language]
	return language != "" && ok
}

func normalizeLanguageTag(raw string) string {
	language := strings.ToLower(strings.TrimSpace(raw))
	language = strings.ReplaceAll(language, "_", "-")
	language, _, _ = strings.Cut(language, "-")
	return language
}
