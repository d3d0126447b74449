package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hiremind-api/pkg/models"
	"hiremind-api/pkg/utils"
)

// RequestValidation tags every request with an ID and rejects oversized
// bodies before they are read. maxBodySize should leave room for the largest
// allowed file upload plus multipart overhead.
func RequestValidation(maxBodySize int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost {
				if c.Request().ContentLength > maxBodySize {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body too large",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
			}

			return next(c)
		}
	}
}
