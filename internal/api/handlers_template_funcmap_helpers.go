package api

import (
	"html/template"
	"strings"
	"time"

	"github.com/terraincognita07/ironlog/internal/i18n"
)

func newTemplateFuncMap(manager *i18n.Manager) template.FuncMap {
	return template.FuncMap{
		"t": templateTranslate,
		"dayLabel": func(language string, day time.Time) string {
			return manager.DayLabel(language, day)
		},
		"weekday": func(language string, day time.Time) string {
			return manager.WeekdayName(language, day)
		},
		"isActiveRoute": isActiveTemplateRoute,
	}
}

func templateTranslate(messages map[string]string, key string) string {
	return translateMessage(messages, key)
}

func isActiveTemplateRoute(currentPath string, route string) bool {
	path := strings.TrimSpace(currentPath)
	return path == route || strings.HasPrefix(path, route+"?") || strings.HasPrefix(path, route+"/")
}
