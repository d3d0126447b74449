package models

// ResumeRequest represents the request payload for generating a resume.
// Profile fields arrive at the top level, matching the frontend form payload.
type ResumeRequest struct {
	UserProfile
	Template string `json:"template,omitempty"`
}

// TailoredResumeRequest represents the request payload for generating a
// resume tailored to a specific job description.
type TailoredResumeRequest struct {
	UserProfile
	JobDescription string `json:"jobDescription" validate:"required"`
	Template       string `json:"template,omitempty"`
}

// AnalyzeJDRequest represents the JSON body variant of the job description
// analysis request. The handler also accepts a multipart file upload instead.
type AnalyzeJDRequest struct {
	JobDescription string `json:"jobDescription"`
}

// CompareRequest represents the request payload for comparing a resume with
// a job description. ResumeData may be omitted when a parsed resume is
// already stored in the caller's session.
type CompareRequest struct {
	ResumeData     *UserProfile `json:"resumeData,omitempty"`
	JobDescription string       `json:"jobDescription" validate:"required"`
}

// CoverLetterRequest represents the request payload for generating a cover letter
type CoverLetterRequest struct {
	UserInfo UserProfile `json:"userInfo" validate:"required"`
	JobInfo  JobInfo     `json:"jobInfo" validate:"required"`
}

// PortfolioRequest represents the request payload for generating a portfolio page
type PortfolioRequest struct {
	UserProfile
	Title    string    `json:"title,omitempty"`
	Bio      string    `json:"bio,omitempty"`
	Projects []Project `json:"projects,omitempty"`
}
