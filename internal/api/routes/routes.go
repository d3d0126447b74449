package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"hiremind-api/internal/api/handlers"
	"hiremind-api/internal/api/middleware"
	"hiremind-api/internal/config"
	"hiremind-api/internal/generator"
	"hiremind-api/internal/llm"
	"hiremind-api/internal/session"
	"hiremind-api/pkg/models"
	"hiremind-api/pkg/utils"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, gen *generator.Service, llmManager *llm.Manager, sessionStore session.Store) {
	e.HTTPErrorHandler = httpErrorHandler

	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig(cfg))
	// Allow the largest permitted upload plus multipart overhead.
	e.Use(middleware.RequestValidation(cfg.Upload.MaxFileSize + 64*1024))
	e.Use(middleware.Session(cfg))
	if cfg.RateLimit.Enabled {
		e.Use(middleware.RateLimit(cfg))
	}
	// Generation endpoints wait on provider fallback chains; everything else
	// gets a short timeout.
	e.Use(middleware.SelectiveTimeout(30*time.Second, 2*time.Minute))

	api := e.Group("/api")
	{
		api.GET("/health", handlers.HealthHandler)
		api.GET("/health/live", handlers.LivenessHandler)
		api.GET("/health/ready", handlers.ReadinessHandler(sessionStore, llmManager))

		resume := api.Group("/resume")
		{
			resume.GET("/templates", handlers.TemplatesHandler)
			resume.POST("", handlers.CreateResumeHandler(gen))
			resume.POST("/tailored", handlers.TailoredResumeHandler(gen))
			resume.POST("/parse", handlers.ParseResumeHandler(gen, sessionStore, cfg))
			resume.POST("/analyze-jd", handlers.AnalyzeJDHandler(gen, cfg))
			resume.POST("/compare", handlers.CompareHandler(gen, sessionStore))
			resume.GET("/session", handlers.GetSessionResumeHandler(sessionStore))
			resume.DELETE("/session", handlers.ClearSessionResumeHandler(sessionStore))
		}

		api.POST("/cover-letter", handlers.CreateCoverLetterHandler(gen))
		api.POST("/portfolio", handlers.CreatePortfolioHandler(gen))
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"service": "HireMind API",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}

// httpErrorHandler turns unhandled errors into the API's error envelope
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	code := "internal_error"
	message := "An unexpected error occurred"

	var customErr *utils.CustomError
	var httpErr *echo.HTTPError
	if errors.As(err, &customErr) {
		status = customErr.Code
		code = customErr.ErrorCode
		if code == "" {
			code = "request_failed"
		}
		message = customErr.Error()
	} else if errors.As(err, &httpErr) {
		status = httpErr.Code
		code = "http_error"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(status)
		}
	}

	requestID, _ := c.Get("request_id").(string)
	_ = c.JSON(status, models.ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
