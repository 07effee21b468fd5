package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/ironlog/internal/i18n"
)

func currentLanguage(c *fiber.Ctx) string {
	if language, ok := c.Locals(contextLanguageKey).(string); ok && language != "" {
		return language
	}
	return i18n.FallbackLanguage
}

func currentMessages(c *fiber.Ctx) map[string]string {
	if messages, ok := c.Locals(contextMessagesKey).(map[string]string); ok {
		return messages
	}
	return map[string]string{}
}

func translateMessage(messages map[string]string, key string) string {
	if value, ok := messages[key]; ok && value != "" {
		return value
	}
	return key
}
