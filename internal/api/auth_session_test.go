package api

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/markbates/goth"
)

func TestAuthCallbackIssuesSessionCookie(t *testing.T) {
	app, handler := newTestApp(t)
	handler.completeAuth = func(http.ResponseWriter, *http.Request) (goth.User, error) {
		return goth.User{Provider: "google", UserID: "1234567890"}, nil
	}

	response := performRequest(t, app, http.MethodGet, "/auth/google/callback?state=x&code=y", "", "")
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", location)
	}

	cookie := responseCookie(response.Cookies(), sessionCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("expected session cookie in callback response")
	}
	if !cookie.HttpOnly {
		t.Fatal("expected session cookie to be httpOnly")
	}
	if strings.Contains(cookie.Value, "1234567890") {
		t.Fatal("expected session cookie to be sealed")
	}

	userID, err := handler.parseSessionValue(cookie.Value)
	if err != nil {
		t.Fatalf("parse issued session: %v", err)
	}
	if userID != "google:1234567890" {
		t.Fatalf("expected user id google:1234567890, got %q", userID)
	}

	response = performRequest(t, app, http.MethodGet, "/dashboard", "", sessionCookieName+"="+cookie.Value)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected dashboard with issued session, got %d", response.StatusCode)
	}
}

func TestAuthCallbackFailureRedirectsAndThrottles(t *testing.T) {
	app, handler := newTestApp(t)
	handler.completeAuth = func(http.ResponseWriter, *http.Request) (goth.User, error) {
		return goth.User{}, errors.New("state mismatch")
	}

	for attempt := 0; attempt < signInFailureLimit; attempt++ {
		response := performRequest(t, app, http.MethodGet, "/auth/google/callback", "", "")
		if location := response.Header.Get("Location"); location != "/login?error=auth_failed" {
			t.Fatalf("attempt %d: expected auth_failed redirect, got %q", attempt+1, location)
		}
		if responseCookie(response.Cookies(), sessionCookieName) != nil {
			t.Fatalf("attempt %d: expected no session cookie", attempt+1)
		}
	}

	response := performRequest(t, app, http.MethodGet, "/auth/google/callback", "", "")
	if location := response.Header.Get("Location"); location != "/login?error=too_many_attempts" {
		t.Fatalf("expected throttled redirect, got %q", location)
	}
	response = performRequest(t, app, http.MethodGet, "/auth/google", "", "")
	if location := response.Header.Get("Location"); location != "/login?error=too_many_attempts" {
		t.Fatalf("expected throttled sign-in start, got %q", location)
	}
}

func TestBeginAuthRejectsUnknownProvider(t *testing.T) {
	app, _ := newTestApp(t)

	response := performRequest(t, app, http.MethodGet, "/auth/myspace", "", "")
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/login?error=unknown_provider" {
		t.Fatalf("expected unknown_provider redirect, got %q", location)
	}
}

func TestLoginPageShowsErrorAndRedirectsSignedInUser(t *testing.T) {
	app, handler := newTestApp(t)

	response := performRequest(t, app, http.MethodGet, "/login?error=auth_failed", "", "")
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	rendered := readBody(t, response)
	if !strings.Contains(rendered, "Sign-in failed. Please try again.") {
		t.Fatal("expected localized auth error")
	}

	response = performRequest(t, app, http.MethodGet, "/login", "", sessionCookieFor(t, handler, "google:u1"))
	if response.StatusCode != http.StatusSeeOther || response.Header.Get("Location") != "/dashboard" {
		t.Fatalf("expected signed-in user to be redirected, got %d %q", response.StatusCode, response.Header.Get("Location"))
	}
}

func TestTamperedSessionIsRejectedAndCleared(t *testing.T) {
	app, handler := newTestApp(t)
	cookie := sessionCookieFor(t, handler, "google:u1")
	position := len(cookie) - 10
	replacement := "A"
	if cookie[position] == 'A' {
		replacement = "B"
	}
	tampered := cookie[:position] + replacement + cookie[position+1:]

	response := performRequest(t, app, http.MethodGet, "/dashboard", "", tampered)
	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	cleared := responseCookie(response.Cookies(), sessionCookieName)
	if cleared == nil || cleared.Value != "" {
		t.Fatalf("expected cleared session cookie, got %#v", cleared)
	}
}

func TestExpiredSessionIsRejected(t *testing.T) {
	app, handler := newTestApp(t)
	handler.now = func() time.Time {
		return time.Now().Add(-2 * time.Hour)
	}
	cookie := sessionCookieFor(t, handler, "google:u1")
	handler.now = time.Now

	response := performRequest(t, app, http.MethodGet, "/api/exercises", "", cookie)
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for expired session, got %d", response.StatusCode)
	}
}

func TestSessionSignedWithAnotherSecretIsRejected(t *testing.T) {
	_, handler := newTestApp(t)
	other, err := NewHandler(nil, HandlerOptions{
		SecretKey:    "fedcba9876543210fedcba9876543210",
		TemplatesDir: templatesDirForTest(t),
		I18n:         handler.i18n,
	})
	if err != nil {
		t.Fatalf("init second handler: %v", err)
	}

	value, _, err := other.buildSessionValue("google:u1", time.Hour)
	if err != nil {
		t.Fatalf("build session value: %v", err)
	}
	if _, err := handler.parseSessionValue(value); err == nil {
		t.Fatal("expected session from another secret to be rejected")
	}
}

func TestLogoutClearsSessionCookie(t *testing.T) {
	app, handler := newTestApp(t)

	response := performRequest(t, app, http.MethodPost, "/logout", "", sessionCookieFor(t, handler, "google:u1"))
	if response.StatusCode != http.StatusSeeOther || response.Header.Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", response.StatusCode, response.Header.Get("Location"))
	}
	cleared := responseCookie(response.Cookies(), sessionCookieName)
	if cleared == nil || cleared.Value != "" {
		t.Fatalf("expected cleared session cookie, got %#v", cleared)
	}
}
