package utils

import (
	"fmt"
	"net/http"
)

// CustomError represents a custom application error. ErrorCode is the
// machine-readable identifier rendered in the error envelope.
type CustomError struct {
	Code      int    `json:"code"`
	ErrorCode string `json:"error_code,omitempty"`
	Message   string `json:"message"`
	Detail    string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// Common error constructors
func NewBadRequestError(message string) *CustomError {
	return &CustomError{
		Code:      http.StatusBadRequest,
		ErrorCode: "invalid_request",
		Message:   message,
	}
}

func NewInternalServerError(message string) *CustomError {
	return &CustomError{
		Code:      http.StatusInternalServerError,
		ErrorCode: "internal_error",
		Message:   message,
	}
}

func NewValidationError(detail string) *CustomError {
	return &CustomError{
		Code:      http.StatusBadRequest,
		ErrorCode: "validation_failed",
		Message:   "Validation failed",
		Detail:    detail,
	}
}

// NewFileParsingError reports a corrupt or unsupported uploaded file
func NewFileParsingError(detail string) *CustomError {
	return &CustomError{
		Code:      http.StatusBadRequest,
		ErrorCode: "file_parsing_failed",
		Message:   "Failed to parse uploaded file",
		Detail:    detail,
	}
}

func NewGenerationError(detail string) *CustomError {
	return &CustomError{
		Code:      http.StatusBadGateway,
		ErrorCode: "generation_failed",
		Message:   "AI generation failed",
		Detail:    detail,
	}
}

// NewCredentialError reports a misconfigured provider credential
func NewCredentialError(detail string) *CustomError {
	return &CustomError{
		Code:      http.StatusUnauthorized,
		ErrorCode: "invalid_provider_credential",
		Message:   "Invalid AI provider credential",
		Detail:    detail,
	}
}
