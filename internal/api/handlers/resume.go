package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"hiremind-api/internal/api/middleware"
	"hiremind-api/internal/config"
	"hiremind-api/internal/generator"
	"hiremind-api/internal/llm/processors"
	"hiremind-api/internal/logging"
	"hiremind-api/internal/parser"
	"hiremind-api/internal/session"
	"hiremind-api/internal/templates"
	"hiremind-api/pkg/models"
	"hiremind-api/pkg/utils"
)

var requestValidator = validator.New()

// CreateResumeHandler handles POST /api/resume. With a template id the
// profile is rendered locally to HTML; otherwise the AI writes a markdown
// resume.
func CreateResumeHandler(gen *generator.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()

		var req models.ResumeRequest
		if err := c.Bind(&req); err != nil {
			return utils.NewBadRequestError("Invalid request body: " + err.Error())
		}
		if req.Name == "" || req.Email == "" {
			return utils.NewValidationError("Name and email are required fields")
		}

		if req.Template != "" {
			html, err := templates.Render(req.Template, &req.UserProfile)
			if err != nil {
				return respondGenerationError(c, err)
			}
			return respondSuccess(c, models.ResumeResponse{
				Resume:      html,
				Format:      "html",
				Template:    req.Template,
				GeneratedAt: time.Now(),
			})
		}

		logger.Info("Generating resume", map[string]interface{}{
			"request_id": requestID(c),
		})

		resume, err := gen.GenerateResume(c.Request().Context(), &req.UserProfile)
		if err != nil {
			return respondGenerationError(c, err)
		}
		return respondSuccess(c, models.ResumeResponse{
			Resume:      resume,
			Format:      "markdown",
			GeneratedAt: time.Now(),
		})
	}
}

// TailoredResumeHandler handles POST /api/resume/tailored. Comparison
// suggestions ride along when they can be produced; their failure does not
// fail the resume itself.
func TailoredResumeHandler(gen *generator.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()

		var req models.TailoredResumeRequest
		if err := c.Bind(&req); err != nil {
			return utils.NewBadRequestError("Invalid request body: " + err.Error())
		}
		if req.Name == "" || req.Email == "" {
			return utils.NewValidationError("Name and email are required fields")
		}
		if err := requestValidator.Struct(&req); err != nil {
			return utils.NewValidationError("Job description is required")
		}

		ctx := c.Request().Context()
		resume, err := gen.GenerateTailoredResume(ctx, &req.UserProfile, req.JobDescription)
		if err != nil {
			return respondGenerationError(c, err)
		}

		response := models.TailoredResumeResponse{
			Resume:      resume,
			Format:      "markdown",
			GeneratedAt: time.Now(),
		}

		if suggestions, err := gen.CompareResumeWithJD(ctx, &req.UserProfile, req.JobDescription); err == nil {
			response.TailoredSuggestions = suggestions
		} else {
			logger.Warn("Comparison suggestions unavailable for tailored resume", map[string]interface{}{
				"request_id": requestID(c),
				"error":      err.Error(),
			})
		}

		return respondSuccess(c, response)
	}
}

// ParseResumeHandler handles POST /api/resume/parse. The extracted profile
// replaces whatever the session held before.
func ParseResumeHandler(gen *generator.Service, store session.Store, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.GetGlobalLogger()

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return respondError(c, http.StatusBadRequest, "missing_file", "No file provided. Upload a PDF, DOCX, or TXT resume.")
		}

		data, mimeType, err := readUpload(fileHeader, cfg.Upload.MaxFileSize)
		if err != nil {
			return respondUploadError(c, err)
		}

		text, err := parser.ExtractText(data, mimeType, fileHeader.Filename)
		if err != nil {
			var unsupported *parser.UnsupportedTypeError
			if errors.As(err, &unsupported) {
				return respondGenerationError(c, err)
			}
			return utils.NewFileParsingError(err.Error())
		}
		if strings.TrimSpace(text) == "" {
			return respondError(c, http.StatusUnprocessableEntity, "empty_extraction",
				"The uploaded file contains no extractable text.")
		}

		profile, err := gen.ParseResumeText(c.Request().Context(), text)
		if err != nil {
			return respondGenerationError(c, err)
		}

		sessionID := middleware.SessionID(c)
		record := &session.ResumeRecord{
			Profile:    profile,
			Filename:   fileHeader.Filename,
			RawText:    text,
			UploadedAt: time.Now(),
		}
		if err := store.Set(c.Request().Context(), sessionID, record); err != nil {
			logger.Error("Failed to store parsed resume in session", map[string]interface{}{
				"request_id": requestID(c),
				"error":      err.Error(),
			})
			// The parse itself succeeded; report it even if the session write
			// failed.
		}

		return respondSuccess(c, models.ParsedResumeResponse{
			UserProfile: *profile,
			Filename:    fileHeader.Filename,
			ExtractedAt: record.UploadedAt,
		})
	}
}

// AnalyzeJDHandler handles POST /api/resume/analyze-jd. Accepts either a
// JSON body with jobDescription or an uploaded file; pasted HTML is reduced
// to plain text before prompting.
func AnalyzeJDHandler(gen *generator.Service, cfg *config.Config) echo.HandlerFunc {
	cleaner := processors.NewHTMLCleaner()

	return func(c echo.Context) error {
		var jobDescription string

		if fileHeader, err := c.FormFile("file"); err == nil {
			data, mimeType, err := readUpload(fileHeader, cfg.Upload.MaxFileSize)
			if err != nil {
				return respondUploadError(c, err)
			}
			text, err := parser.ExtractText(data, mimeType, fileHeader.Filename)
			if err != nil {
				var unsupported *parser.UnsupportedTypeError
				if errors.As(err, &unsupported) {
					return respondGenerationError(c, err)
				}
				return utils.NewFileParsingError(err.Error())
			}
			jobDescription = text
		} else {
			var req models.AnalyzeJDRequest
			if err := c.Bind(&req); err != nil {
				return utils.NewBadRequestError("Invalid request body: " + err.Error())
			}
			jobDescription = req.JobDescription
		}

		if cleaned, err := cleaner.ExtractText(jobDescription); err == nil {
			jobDescription = cleaned
		}
		if strings.TrimSpace(jobDescription) == "" {
			return utils.NewValidationError("Job description is required, either in the request body or as a file upload")
		}

		analysis, err := gen.AnalyzeJobDescription(c.Request().Context(), jobDescription)
		if err != nil {
			return respondGenerationError(c, err)
		}
		return respondSuccess(c, models.AnalyzeJDResponse{
			Analysis:     analysis,
			OriginalText: jobDescription,
		})
	}
}

// CompareHandler handles POST /api/resume/compare. Without explicit
// resumeData the session-stored resume from a previous upload is used.
func CompareHandler(gen *generator.Service, store session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.CompareRequest
		if err := c.Bind(&req); err != nil {
			return utils.NewBadRequestError("Invalid request body: " + err.Error())
		}
		if err := requestValidator.Struct(&req); err != nil {
			return utils.NewValidationError("Job description is required")
		}

		resumeData := req.ResumeData
		usedSessionResume := false
		if resumeData == nil {
			record, err := store.Get(c.Request().Context(), middleware.SessionID(c))
			if err != nil {
				if errors.Is(err, session.ErrNotFound) {
					return respondError(c, http.StatusBadRequest, "no_resume_data",
						"No resume data provided and no resume found in session. Upload a resume first or include resumeData.")
				}
				return respondError(c, http.StatusInternalServerError, "session_store_error",
					"Failed to read the session resume. Please try again.")
			}
			resumeData = record.Profile
			usedSessionResume = true
		}

		suggestions, err := gen.CompareResumeWithJD(c.Request().Context(), resumeData, req.JobDescription)
		if err != nil {
			return respondGenerationError(c, err)
		}
		return respondSuccess(c, models.CompareResponse{
			Suggestions:       suggestions,
			UsedSessionResume: usedSessionResume,
		})
	}
}

// GetSessionResumeHandler handles GET /api/resume/session. The raw extracted
// text is never returned, only the structured profile.
func GetSessionResumeHandler(store session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		record, err := store.Get(c.Request().Context(), middleware.SessionID(c))
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				return respondSuccess(c, models.SessionResumeResponse{HasResume: false})
			}
			return respondError(c, http.StatusInternalServerError, "session_store_error",
				"Failed to read the session resume. Please try again.")
		}

		return respondSuccess(c, models.SessionResumeResponse{
			HasResume:  true,
			ResumeData: record.Profile,
			Filename:   record.Filename,
			UploadedAt: &record.UploadedAt,
		})
	}
}

// ClearSessionResumeHandler handles DELETE /api/resume/session
func ClearSessionResumeHandler(store session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := store.Clear(c.Request().Context(), middleware.SessionID(c)); err != nil {
			return respondError(c, http.StatusInternalServerError, "session_store_error",
				"Failed to clear the session resume. Please try again.")
		}
		return c.JSON(http.StatusOK, models.APIResponse{
			Success: true,
			Message: "Session resume cleared",
		})
	}
}

// TemplatesHandler handles GET /api/resume/templates
func TemplatesHandler(c echo.Context) error {
	return respondSuccess(c, map[string]interface{}{
		"templates": templates.List(),
		"default":   templates.DefaultTemplate,
	})
}

var errUploadTooLarge = errors.New("upload exceeds the size limit")

func readUpload(fileHeader *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	if maxSize > 0 && fileHeader.Size > maxSize {
		return nil, "", errUploadTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	// Guard against a lying Content-Length in the part header.
	limit := maxSize
	if limit <= 0 {
		limit = 5 * 1024 * 1024
	}
	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return nil, "", err
	}
	if int64(len(data)) > limit {
		return nil, "", errUploadTooLarge
	}

	return data, fileHeader.Header.Get("Content-Type"), nil
}

func respondUploadError(c echo.Context, err error) error {
	if errors.Is(err, errUploadTooLarge) {
		return respondError(c, http.StatusRequestEntityTooLarge, "file_too_large",
			"Uploaded file exceeds the 5MB size limit")
	}
	return respondError(c, http.StatusBadRequest, "upload_failed", "Failed to read uploaded file")
}
