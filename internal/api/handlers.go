package api

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/terraincognita07/ironlog/internal/db"
	"github.com/terraincognita07/ironlog/internal/i18n"
	"github.com/terraincognita07/ironlog/internal/logger"
	"github.com/terraincognita07/ironlog/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db               *gorm.DB
	repositories     *db.Repositories
	workoutService   *services.WorkoutService
	exerciseService  *services.ExerciseService
	sessionKey       []byte
	cookies          *secureCookieCodec
	location         *time.Location
	cookieSecure     bool
	fetchConcurrency int
	i18n             *i18n.Manager
	templates        map[string]*template.Template
	log              *logger.Logger
	now              func() time.Time
	signIns          *signInThrottle

	beginAuth    func(http.ResponseWriter, *http.Request)
	completeAuth func(http.ResponseWriter, *http.Request) (goth.User, error)
}

type HandlerOptions struct {
	SecretKey        string
	TemplatesDir     string
	Location         *time.Location
	I18n             *i18n.Manager
	CookieSecure     bool
	FetchConcurrency int
	Logger           *logger.Logger
}

func NewHandler(database *gorm.DB, options HandlerOptions) (*Handler, error) {
	if options.I18n == nil {
		return nil, errors.New("i18n manager is required")
	}
	if options.SecretKey == "" {
		return nil, errors.New("secret key is required")
	}
	if options.Location == nil {
		options.Location = time.Local
	}
	if options.Logger == nil {
		options.Logger = logger.Nop()
	}

	sessionKey, err := deriveKey([]byte(options.SecretKey), sessionTokenKeyInfo)
	if err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}
	cookies, err := newSecureCookieCodec([]byte(options.SecretKey))
	if err != nil {
		return nil, err
	}

	templates, err := parsePageTemplates(options.TemplatesDir, newTemplateFuncMap(options.I18n), pageTemplates)
	if err != nil {
		return nil, err
	}

	handler := &Handler{
		db:               database,
		sessionKey:       sessionKey,
		cookies:          cookies,
		location:         options.Location,
		cookieSecure:     options.CookieSecure,
		fetchConcurrency: options.FetchConcurrency,
		i18n:             options.I18n,
		templates:        templates,
		log:              options.Logger.With("component", "http"),
		now:              time.Now,
		signIns:          newSignInThrottle(signInFailureLimit, signInFailureWindow),
		beginAuth:        gothic.BeginAuthHandler,
		completeAuth:     gothic.CompleteUserAuth,
	}
	return handler.withDependencies(database), nil
}
