package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/resumesync/resume-api/docs"
	"github.com/resumesync/resume-api/internal/api/handler"
	"github.com/resumesync/resume-api/internal/api/middleware"
	"github.com/resumesync/resume-api/internal/config"
	"github.com/resumesync/resume-api/internal/core/service"
	mongodb "github.com/resumesync/resume-api/internal/infrastructure/db/mongo"
	"github.com/resumesync/resume-api/internal/infrastructure/extract"
	"github.com/resumesync/resume-api/internal/infrastructure/gemini"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("resumesync"))

	// JSON routes cap their bodies; uploads are bounded by multipart limits.
	jsonLimit := echomiddleware.BodyLimit(cfg.BodyLimit)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, time.Hour)
	authHandler := handler.NewAuthHandler(authService)

	extractor := extract.New(nil)
	completion := gemini.NewClient(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		BaseURL: cfg.Gemini.BaseURL,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
	})
	resumeService := service.NewResumeService(extractor, completion, cfg.MockMode)
	resumeHandler := handler.NewResumeHandler(resumeService, cfg.UploadDir)

	requireAuth := middleware.Auth(cfg.JWTSecret)

	// --- Public routes ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	e.POST("/signup", authHandler.Signup, jsonLimit)
	e.POST("/login", authHandler.Login, jsonLimit)
	e.POST("/summarize", resumeHandler.Summarize, jsonLimit)

	// --- Protected routes ---
	e.POST("/upload", resumeHandler.Upload, requireAuth)
	e.POST("/match", resumeHandler.Match, requireAuth, jsonLimit)

	return e
}
