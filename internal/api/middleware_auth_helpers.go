package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const sessionCookiePurpose = "session"

var errMissingSession = errors.New("missing session cookie")

type sessionClaims struct {
	jwt.RegisteredClaims
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (string, error) {
	rawValue := strings.TrimSpace(c.Cookies(sessionCookieName))
	if rawValue == "" {
		return "", errMissingSession
	}
	return handler.parseSessionValue(rawValue)
}

func (handler *Handler) parseSessionValue(rawValue string) (string, error) {
	tokenValue, err := handler.cookies.open(sessionCookiePurpose, rawValue)
	if err != nil {
		return "", err
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(string(tokenValue), claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return handler.sessionKey, nil
	}, jwt.WithExpirationRequired(), jwt.WithIssuer(sessionIssuer))
	if err != nil || !token.Valid {
		return "", errors.New("invalid session token")
	}

	userID := strings.TrimSpace(claims.Subject)
	if userID == "" {
		return "", errors.New("session token has no subject")
	}
	return userID, nil
}

func (handler *Handler) optionalAuthenticatedUserID(c *fiber.Ctx) (string, bool) {
	userID, err := handler.authenticateRequest(c)
	if err != nil {
		return "", false
	}
	return userID, true
}
