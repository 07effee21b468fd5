package api

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
)

const gothicStateKeyInfo = "ironlog.oauth-state.v1"

type OAuthOptions struct {
	SecretKey          string
	CookieSecure       bool
	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string
}

// InitProviders configures gothic's state store and registers the identity providers that have
// credentials. It returns the registered provider names.
func InitProviders(options OAuthOptions) ([]string, error) {
	stateKey, err := deriveKey([]byte(options.SecretKey), gothicStateKeyInfo)
	if err != nil {
		return nil, fmt.Errorf("derive oauth state key: %w", err)
	}

	// gothic defaults to Secure cookies, which breaks plain-HTTP development.
	store := sessions.NewCookieStore(stateKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   15 * 60,
		HttpOnly: true,
		Secure:   options.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	gothic.Store = store

	goth.ClearProviders()
	if options.GoogleClientID == "" || options.GoogleClientSecret == "" {
		return nil, nil
	}
	goth.UseProviders(google.New(
		options.GoogleClientID,
		options.GoogleClientSecret,
		options.GoogleCallbackURL,
		"email",
		"profile",
	))
	return registeredProviderNames(), nil
}

func registeredProviderNames() []string {
	names := make([]string, 0, len(goth.GetProviders()))
	for name := range goth.GetProviders() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sessionUserID builds the opaque owner id stored on every row.
func sessionUserID(user goth.User) string {
	return strings.ToLower(strings.TrimSpace(user.Provider)) + ":" + strings.TrimSpace(user.UserID)
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if _, ok := handler.optionalAuthenticatedUserID(c); ok {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}

	messages := currentMessages(c)
	data := fiber.Map{
		"Title":     localizedPageTitle(messages, "meta.title.login", "Ironlog | Sign in"),
		"Providers": registeredProviderNames(),
	}
	if code := strings.TrimSpace(c.Query("error")); code != "" {
		data["ErrorMessage"] = translateMessage(messages, "auth.error."+code)
	}
	return handler.render(c, "login", data)
}

func (handler *Handler) BeginAuth(c *fiber.Ctx) error {
	provider := strings.ToLower(c.Params("provider"))
	if handler.signIns.blocked(clientKey(c), handler.now()) {
		return c.Redirect("/login?error=too_many_attempts", fiber.StatusSeeOther)
	}
	if _, err := goth.GetProvider(provider); err != nil {
		return c.Redirect("/login?error=unknown_provider", fiber.StatusSeeOther)
	}

	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.beginAuth(w, gothic.GetContextWithProvider(r, provider))
	})(c)
}

func (handler *Handler) AuthCallback(c *fiber.Ctx) error {
	provider := strings.ToLower(c.Params("provider"))
	key := clientKey(c)
	if handler.signIns.blocked(key, handler.now()) {
		return c.Redirect("/login?error=too_many_attempts", fiber.StatusSeeOther)
	}

	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := handler.completeAuth(w, gothic.GetContextWithProvider(r, provider))
		if err != nil || strings.TrimSpace(user.UserID) == "" {
			handler.signIns.recordFailure(key, handler.now())
			handler.log.Warn("oauth callback failed", "provider", provider, "error", err)
			http.Redirect(w, r, "/login?error=auth_failed", http.StatusSeeOther)
			return
		}
		if user.Provider == "" {
			user.Provider = provider
		}

		userID := sessionUserID(user)
		value, expiresAt, err := handler.buildSessionValue(userID, sessionTTL)
		if err != nil {
			handler.log.Error("issue session failed", "user_id", userID, "error", err)
			http.Redirect(w, r, "/login?error=session_failed", http.StatusSeeOther)
			return
		}

		handler.signIns.clear(key)
		http.SetCookie(w, handler.sessionHTTPCookie(value, expiresAt))
		handler.log.Info("user signed in", "user_id", userID, "provider", user.Provider)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	})(c)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearSessionCookie(c)
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}
