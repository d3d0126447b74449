package handlers

import (
	"time"

	"github.com/labstack/echo/v4"

	"hiremind-api/internal/generator"
	"hiremind-api/internal/logging"
	"hiremind-api/pkg/models"
	"hiremind-api/pkg/utils"
)

// CoverLetterResponse is the payload for generated cover letters
type CoverLetterResponse struct {
	CoverLetter string    `json:"coverLetter"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// CreateCoverLetterHandler handles POST /api/cover-letter
func CreateCoverLetterHandler(gen *generator.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()

		var req models.CoverLetterRequest
		if err := c.Bind(&req); err != nil {
			return utils.NewBadRequestError("Invalid request body: " + err.Error())
		}
		if req.UserInfo.Name == "" || req.UserInfo.Email == "" {
			return utils.NewValidationError("userInfo with name and email is required")
		}

		logger.Info("Generating cover letter", map[string]interface{}{
			"request_id": requestID(c),
			"position":   req.JobInfo.Position,
			"company":    req.JobInfo.Company,
		})

		letter, err := gen.GenerateCoverLetter(c.Request().Context(), &req.UserInfo, &req.JobInfo)
		if err != nil {
			return respondGenerationError(c, err)
		}
		return respondSuccess(c, CoverLetterResponse{
			CoverLetter: letter,
			GeneratedAt: time.Now(),
		})
	}
}
