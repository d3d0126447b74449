package models

import "time"

// APIResponse is the uniform success envelope returned by every endpoint
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ResumeResponse is the payload for generated resumes
type ResumeResponse struct {
	Resume      string    `json:"resume"`
	Format      string    `json:"format"` // "markdown" or "html"
	Template    string    `json:"template,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// TailoredResumeResponse adds the optional comparison suggestions produced
// alongside a tailored resume.
type TailoredResumeResponse struct {
	Resume              string            `json:"resume"`
	Format              string            `json:"format"`
	Template            string            `json:"template,omitempty"`
	TailoredSuggestions *ComparisonResult `json:"tailoredSuggestions,omitempty"`
	GeneratedAt         time.Time         `json:"generatedAt"`
}

// ParsedResumeResponse is the payload for a successfully parsed upload
type ParsedResumeResponse struct {
	UserProfile
	Filename    string    `json:"filename"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// AnalyzeJDResponse pairs the structured analysis with the text it came from
type AnalyzeJDResponse struct {
	Analysis     *JobDescriptionAnalysis `json:"analysis"`
	OriginalText string                  `json:"originalText"`
}

// CompareResponse reports comparison suggestions and whether the
// session-stored resume supplied the profile.
type CompareResponse struct {
	Suggestions       *ComparisonResult `json:"suggestions"`
	UsedSessionResume bool              `json:"usedSessionResume"`
}

// SessionResumeResponse is the payload for GET /api/resume/session.
// ResumeData never includes the raw extracted text.
type SessionResumeResponse struct {
	HasResume  bool         `json:"hasResume"`
	ResumeData *UserProfile `json:"resumeData,omitempty"`
	Filename   string       `json:"filename,omitempty"`
	UploadedAt *time.Time   `json:"uploadedAt,omitempty"`
}

// TemplateInfo describes one renderable resume template
type TemplateInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Preview     string `json:"preview"`
	ATSScore    int    `json:"atsScore"`
	Recommended bool   `json:"recommended"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}
