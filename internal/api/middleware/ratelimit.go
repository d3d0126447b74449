package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"hiremind-api/internal/config"
	"hiremind-api/pkg/models"
)

// RateLimit limits each client IP to the configured number of requests per
// minute. Generation endpoints are billed per call, so runaway clients are
// cut off before they reach a provider.
func RateLimit(cfg *config.Config) echo.MiddlewareFunc {
	perSecond := rate.Limit(float64(cfg.RateLimit.RequestsPerMinute) / 60.0)
	burst := cfg.RateLimit.RequestsPerMinute
	if burst < 1 {
		burst = 1
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      perSecond,
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, models.ErrorResponse{
				Error:     "rate_limit_identify_failed",
				Message:   "Could not identify client for rate limiting",
				Timestamp: time.Now(),
			})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error:     "rate_limit_exceeded",
				Message:   "Too many requests, please slow down",
				Timestamp: time.Now(),
			})
		},
	})
}
