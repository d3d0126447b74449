package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hiremind-api/internal/llm"
	"hiremind-api/internal/logging"
	"hiremind-api/internal/session"
	"hiremind-api/pkg/models"
)

var startTime = time.Now()

const serviceVersion = "1.0.0"

// HealthHandler handles GET /api/health
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "OK",
		Message:   "HireMind API is running",
		Timestamp: time.Now(),
		Version:   serviceVersion,
		Uptime:    time.Since(startTime),
	})
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   serviceVersion,
		Uptime:    time.Since(startTime),
	})
}

// ReadinessHandler handles readiness probe requests. The service is degraded
// without a reachable session store or a configured provider, but document
// generation for stateless requests still works with either one alone, so
// both are reported as checks rather than failing the probe outright.
func ReadinessHandler(sessionStore session.Store, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()

		checks := map[string]string{
			"api": "ok",
		}
		status := http.StatusOK

		if err := sessionStore.Ping(c.Request().Context()); err != nil {
			logger.Warn("Session store unreachable during readiness check", map[string]interface{}{
				"error": err.Error(),
			})
			checks["session_store"] = "unreachable"
			status = http.StatusServiceUnavailable
		} else {
			checks["session_store"] = "ok"
		}

		if len(llmManager.ProviderNames()) == 0 {
			checks["ai_providers"] = "none configured"
		} else {
			checks["ai_providers"] = "ok"
		}

		state := "ready"
		if status != http.StatusOK {
			state = "degraded"
		}
		return c.JSON(status, models.HealthResponse{
			Status:    state,
			Timestamp: time.Now(),
			Version:   serviceVersion,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}
