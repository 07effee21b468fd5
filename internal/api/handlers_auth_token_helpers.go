package api

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	sessionTTL    = 30 * 24 * time.Hour
	sessionIssuer = "ironlog"
)

func (handler *Handler) buildSessionValue(userID string, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = sessionTTL
	}
	now := handler.now()
	expiresAt := now.Add(ttl)

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.sessionKey)
	if err != nil {
		return "", time.Time{}, err
	}

	sealed, err := handler.cookies.seal(sessionCookiePurpose, []byte(signed))
	if err != nil {
		return "", time.Time{}, err
	}
	return sealed, expiresAt, nil
}

// sessionHTTPCookie is used from net/http handlers mounted through the fiber adaptor.
func (handler *Handler) sessionHTTPCookie(value string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (handler *Handler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
