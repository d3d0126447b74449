package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hiremind-api/internal/generator"
	"hiremind-api/internal/llm"
	"hiremind-api/internal/parser"
	"hiremind-api/internal/templates"
	"hiremind-api/pkg/models"
	"hiremind-api/pkg/utils"
)

func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok {
		return id
	}
	return ""
}

func respondSuccess(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    data,
	})
}

func respondError(c echo.Context, status int, code, message string) error {
	return c.JSON(status, models.ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: requestID(c),
		Timestamp: time.Now(),
	})
}

// respondGenerationError maps the typed errors from the AI and parsing layers
// onto HTTP responses. Unknown errors become opaque 500s; provider error
// details stay in the logs, not the response body.
func respondGenerationError(c echo.Context, err error) error {
	var credErr *llm.CredentialError
	if errors.As(err, &credErr) {
		return utils.NewCredentialError("AI provider rejected its API key. Check the server's provider configuration.")
	}

	if errors.Is(err, llm.ErrNoProviderConfigured) {
		return respondError(c, http.StatusInternalServerError, "no_provider_configured",
			"No AI provider is configured. Set an API key and restart the service.")
	}

	var allFailed *llm.AllProvidersFailedError
	if errors.As(err, &allFailed) {
		return utils.NewGenerationError("All AI providers failed to generate a response. Please try again later.")
	}

	var malformed *generator.MalformedResponseError
	if errors.As(err, &malformed) {
		return respondError(c, http.StatusBadGateway, "malformed_ai_response",
			"The AI returned a response that could not be processed. Please try again.")
	}

	if errors.Is(err, generator.ErrEmptyExtraction) {
		return respondError(c, http.StatusUnprocessableEntity, "empty_extraction",
			"No meaningful resume data could be extracted from the uploaded file.")
	}

	var unknownTemplate *templates.UnknownTemplateError
	if errors.As(err, &unknownTemplate) {
		return respondError(c, http.StatusBadRequest, "unknown_template", unknownTemplate.Error())
	}

	var unsupported *parser.UnsupportedTypeError
	if errors.As(err, &unsupported) {
		return respondError(c, http.StatusBadRequest, "unsupported_file_type", unsupported.Error())
	}

	return utils.NewInternalServerError("An unexpected error occurred. Please try again.")
}
