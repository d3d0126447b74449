package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// generationPaths are the endpoints that wait on AI providers and need more
// headroom than ordinary requests.
var generationPaths = []string{
	"/api/resume",
	"/api/cover-letter",
	"/api/portfolio",
}

// SelectiveTimeout applies a short timeout to ordinary requests and a longer
// one to generation endpoints, where a provider fallback chain can take well
// over a minute.
func SelectiveTimeout(defaultTimeout, generationTimeout time.Duration) echo.MiddlewareFunc {
	short := middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: defaultTimeout})
	long := middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: generationTimeout})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		shortNext := short(next)
		longNext := long(next)
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range generationPaths {
				if strings.HasPrefix(path, prefix) {
					return longNext(c)
				}
			}
			return shortNext(c)
		}
	}
}
