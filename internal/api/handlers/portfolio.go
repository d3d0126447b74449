package handlers

import (
	"time"

	"github.com/labstack/echo/v4"

	"hiremind-api/internal/generator"
	"hiremind-api/internal/logging"
	"hiremind-api/pkg/models"
	"hiremind-api/pkg/utils"
)

// PortfolioResponse is the payload for generated portfolio pages
type PortfolioResponse struct {
	Portfolio   string    `json:"portfolio"`
	Format      string    `json:"format"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// CreatePortfolioHandler handles POST /api/portfolio
func CreatePortfolioHandler(gen *generator.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()

		var req models.PortfolioRequest
		if err := c.Bind(&req); err != nil {
			return utils.NewBadRequestError("Invalid request body: " + err.Error())
		}
		if req.Name == "" || req.Email == "" {
			return utils.NewValidationError("Name and email are required fields")
		}

		logger.Info("Generating portfolio page", map[string]interface{}{
			"request_id":     requestID(c),
			"projects_count": len(req.Projects),
		})

		portfolio, err := gen.GeneratePortfolio(c.Request().Context(), &req)
		if err != nil {
			return respondGenerationError(c, err)
		}
		return respondSuccess(c, PortfolioResponse{
			Portfolio:   portfolio,
			Format:      "html",
			GeneratedAt: time.Now(),
		})
	}
}
