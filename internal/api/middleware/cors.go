package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"hiremind-api/internal/config"
)

// CORSConfig returns CORS middleware configuration. Credentials are allowed
// because the session cookie has to travel with cross-origin requests from
// the frontend.
func CORSConfig(cfg *config.Config) echo.MiddlewareFunc {
	origins := []string{"*"}
	allowCredentials := false
	if cfg.CORS.FrontendOrigin != "" {
		origins = []string{cfg.CORS.FrontendOrigin}
		allowCredentials = true
	}

	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: allowCredentials,
		MaxAge:           86400, // 24 hours
	})
}
