package api

import "github.com/gofiber/fiber/v2"

const (
	sessionCookieName  = "ironlog_session"
	languageCookieName = "ironlog_lang"
	contextUserKey     = "current_user_id"
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"
)

func currentUserID(c *fiber.Ctx) (string, bool) {
	userID, ok := c.Locals(contextUserKey).(string)
	return userID, ok && userID != ""
}
