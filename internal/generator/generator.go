package generator

import (
	"context"
	"errors"
	"fmt"

	"hiremind-api/internal/jsonrepair"
	"hiremind-api/internal/logging"
	"hiremind-api/pkg/models"
	"hiremind-api/pkg/utils"
)

// TextGenerator is the slice of the AI layer the generator needs. The
// fallback manager satisfies it in production.
type TextGenerator interface {
	Generate(ctx context.Context, prompt, system string) (string, error)
}

// ErrEmptyExtraction is returned when resume parsing produced a profile with
// no usable fields, usually because the upload was not actually a resume.
var ErrEmptyExtraction = errors.New("no meaningful resume data could be extracted")

// MalformedResponseError indicates the AI returned output that could not be
// turned into the expected structure even after repair.
type MalformedResponseError struct {
	Context string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("failed to parse %s response: %v", e.Context, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// Service produces career documents by prompting the AI layer and shaping
// its output into the API's response types.
type Service struct {
	llm    TextGenerator
	logger logging.Logger
}

// NewService creates a generator service backed by the given text generator
func NewService(llm TextGenerator) *Service {
	return &Service{
		llm:    llm,
		logger: logging.GetGlobalLogger(),
	}
}

// GenerateResume produces a complete resume in markdown for the given profile
func (s *Service) GenerateResume(ctx context.Context, profile *models.UserProfile) (string, error) {
	return s.llm.Generate(ctx, buildResumePrompt(profile), resumeSystemMessage)
}

// GenerateTailoredResume produces a resume in markdown rewritten around the
// given job description
func (s *Service) GenerateTailoredResume(ctx context.Context, profile *models.UserProfile, jobDescription string) (string, error) {
	return s.llm.Generate(ctx, buildTailoredResumePrompt(profile, jobDescription), tailoredSystemMessage)
}

// GenerateCoverLetter produces a cover letter for the given applicant and role
func (s *Service) GenerateCoverLetter(ctx context.Context, userInfo *models.UserProfile, jobInfo *models.JobInfo) (string, error) {
	return s.llm.Generate(ctx, buildCoverLetterPrompt(userInfo, jobInfo), coverLetterSystemMessage)
}

// GeneratePortfolio produces a standalone HTML portfolio page
func (s *Service) GeneratePortfolio(ctx context.Context, req *models.PortfolioRequest) (string, error) {
	return s.llm.Generate(ctx, buildPortfolioPrompt(req), portfolioSystemMessage)
}

// AnalyzeJobDescription extracts structured requirements from a job
// description. The AI response is repaired before decoding because models
// routinely wrap JSON in fences or leave trailing commas.
func (s *Service) AnalyzeJobDescription(ctx context.Context, jobDescription string) (*models.JobDescriptionAnalysis, error) {
	response, err := s.llm.Generate(ctx, buildAnalyzeJDPrompt(jobDescription), analyzeJDSystemMessage)
	if err != nil {
		return nil, err
	}

	var analysis models.JobDescriptionAnalysis
	if err := jsonrepair.ParseInto(response, &analysis); err != nil {
		s.logger.Error("Job description analysis returned unparseable JSON", map[string]interface{}{
			"error":    err.Error(),
			"response": utils.TruncateString(response, 500),
		})
		return nil, &MalformedResponseError{Context: "job description analysis", Err: err}
	}
	return &analysis, nil
}

// CompareResumeWithJD scores a resume against a job description and returns
// improvement suggestions. The match score is clamped to 0-100; models
// occasionally return scores outside the requested range.
func (s *Service) CompareResumeWithJD(ctx context.Context, resumeData *models.UserProfile, jobDescription string) (*models.ComparisonResult, error) {
	response, err := s.llm.Generate(ctx, buildComparePrompt(resumeData, jobDescription), compareSystemMessage)
	if err != nil {
		return nil, err
	}

	var result models.ComparisonResult
	if err := jsonrepair.ParseInto(response, &result); err != nil {
		s.logger.Error("Resume comparison returned unparseable JSON", map[string]interface{}{
			"error":    err.Error(),
			"response": utils.TruncateString(response, 500),
		})
		return nil, &MalformedResponseError{Context: "resume comparison", Err: err}
	}

	if result.MatchScore < 0 {
		result.MatchScore = 0
	} else if result.MatchScore > 100 {
		result.MatchScore = 100
	}
	return &result, nil
}

// ParseResumeText extracts a structured profile from raw resume text. Returns
// ErrEmptyExtraction when the result carries no identifying information.
func (s *Service) ParseResumeText(ctx context.Context, resumeText string) (*models.UserProfile, error) {
	response, err := s.llm.Generate(ctx, buildParseResumePrompt(resumeText), parseResumeSystemMessage)
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := jsonrepair.ParseInto(response, &profile); err != nil {
		s.logger.Error("Resume extraction returned unparseable JSON", map[string]interface{}{
			"error":    err.Error(),
			"response": utils.TruncateString(response, 500),
		})
		return nil, &MalformedResponseError{Context: "resume extraction", Err: err}
	}

	if !profile.HasMeaningfulData() {
		return nil, ErrEmptyExtraction
	}
	return &profile, nil
}
