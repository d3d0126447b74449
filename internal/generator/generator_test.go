package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiremind-api/pkg/models"
)

type fakeLLM struct {
	response string
	err      error

	lastPrompt string
	lastSystem string
}

func (f *fakeLLM) Generate(ctx context.Context, prompt, system string) (string, error) {
	f.lastPrompt = prompt
	f.lastSystem = system
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func sampleProfile() *models.UserProfile {
	return &models.UserProfile{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Skills:    []string{"Go", "PostgreSQL"},
		Summary:   "Backend engineer with eight years of experience.",
		LinkedIn:  "https://linkedin.com/in/janedoe",
		GitHub:    "https://github.com/janedoe",
		Portfolio: "https://janedoe.dev",
		Experience: []models.Experience{
			{Position: "Senior Engineer", Company: "Acme", Duration: "2019-2024", Description: "Built APIs"},
		},
	}
}

func TestGenerateResumePromptContents(t *testing.T) {
	llm := &fakeLLM{response: "# Jane Doe\n\nProfessional resume"}
	svc := NewService(llm)

	resume, err := svc.GenerateResume(context.Background(), sampleProfile())
	require.NoError(t, err)
	assert.Equal(t, "# Jane Doe\n\nProfessional resume", resume)

	assert.Contains(t, llm.lastPrompt, "Jane Doe")
	assert.Contains(t, llm.lastPrompt, "jane@example.com")
	assert.Contains(t, llm.lastPrompt, "Go, PostgreSQL")
	assert.Contains(t, llm.lastPrompt, "Senior Engineer")
	assert.Contains(t, llm.lastPrompt, "linkedin.com/in/janedoe")
	assert.Contains(t, llm.lastPrompt, "github.com/janedoe")
	assert.Contains(t, llm.lastPrompt, "janedoe.dev")
	assert.Contains(t, llm.lastPrompt, "Phone: Not provided")
	assert.Contains(t, llm.lastSystem, "resume writer")
}

func TestGenerateResumeMissingFieldsUsePlaceholders(t *testing.T) {
	llm := &fakeLLM{response: "resume"}
	svc := NewService(llm)

	_, err := svc.GenerateResume(context.Background(), &models.UserProfile{Name: "A", Email: "a@b.c"})
	require.NoError(t, err)

	assert.Contains(t, llm.lastPrompt, "Skills: Not provided")
	assert.Contains(t, llm.lastPrompt, "Location: Not provided")
	assert.Contains(t, llm.lastPrompt, "LinkedIn: Not provided")
	assert.Contains(t, llm.lastPrompt, "GitHub: Not provided")
	assert.Contains(t, llm.lastPrompt, "Portfolio: Not provided")
	assert.NotContains(t, llm.lastPrompt, "<nil>")
}

func TestGenerateCoverLetterPromptContents(t *testing.T) {
	llm := &fakeLLM{response: "Dear Hiring Manager"}
	svc := NewService(llm)

	letter, err := svc.GenerateCoverLetter(context.Background(), sampleProfile(), &models.JobInfo{
		Position: "Staff Engineer",
		Company:  "Initech",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dear Hiring Manager", letter)
	assert.Contains(t, llm.lastPrompt, "Staff Engineer")
	assert.Contains(t, llm.lastPrompt, "Initech")
	assert.Contains(t, llm.lastPrompt, "Job Description: Not provided")
}

func TestGenerateTailoredResumeIncludesJobDescription(t *testing.T) {
	llm := &fakeLLM{response: "tailored"}
	svc := NewService(llm)

	_, err := svc.GenerateTailoredResume(context.Background(), sampleProfile(), "We need a Kubernetes expert.")
	require.NoError(t, err)
	assert.Contains(t, llm.lastPrompt, "We need a Kubernetes expert.")
	assert.Contains(t, llm.lastPrompt, "Jane Doe")
	assert.Contains(t, llm.lastPrompt, "linkedin.com/in/janedoe")
	assert.Contains(t, llm.lastPrompt, "github.com/janedoe")
}

func TestGeneratePortfolioDefaultsTitleAndBio(t *testing.T) {
	llm := &fakeLLM{response: "<html></html>"}
	svc := NewService(llm)

	req := &models.PortfolioRequest{
		UserProfile: *sampleProfile(),
		Projects: []models.Project{
			{Name: "hiremind", Description: "Career document API", Technologies: "Go"},
		},
	}
	_, err := svc.GeneratePortfolio(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, llm.lastPrompt, "Title: Professional")
	assert.Contains(t, llm.lastPrompt, "Backend engineer with eight years of experience.")
	assert.Contains(t, llm.lastPrompt, "hiremind")
}

func TestAnalyzeJobDescriptionParsesRepairedJSON(t *testing.T) {
	llm := &fakeLLM{response: "```json\n" + `{
  "requiredSkills": ["Go", "SQL",],
  "preferredSkills": ["Kubernetes"],
  "keywords": ["microservices"],
  "experienceLevel": "senior",
  "responsibilities": ["Design services"],
  "qualifications": ["BS in CS"],
}` + "\n```"}
	svc := NewService(llm)

	analysis, err := svc.AnalyzeJobDescription(context.Background(), "some JD")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, analysis.RequiredSkills)
	assert.Equal(t, "senior", analysis.ExperienceLevel)
}

func TestAnalyzeJobDescriptionMalformedResponse(t *testing.T) {
	llm := &fakeLLM{response: "I'm sorry, I cannot analyze that."}
	svc := NewService(llm)

	_, err := svc.AnalyzeJobDescription(context.Background(), "some JD")
	require.Error(t, err)

	var malformed *MalformedResponseError
	assert.ErrorAs(t, err, &malformed)
}

func TestCompareClampsMatchScore(t *testing.T) {
	llm := &fakeLLM{response: `{"matchScore": 140, "missingSkills": [], "suggestedSkills": [], "summaryImprovements": "", "experienceImprovements": [], "keywordsToAdd": [], "strengths": [], "overallFeedback": "good"}`}
	svc := NewService(llm)

	result, err := svc.CompareResumeWithJD(context.Background(), sampleProfile(), "JD text")
	require.NoError(t, err)
	assert.Equal(t, 100, result.MatchScore)

	llm.response = `{"matchScore": -5, "overallFeedback": "weak"}`
	result, err = svc.CompareResumeWithJD(context.Background(), sampleProfile(), "JD text")
	require.NoError(t, err)
	assert.Equal(t, 0, result.MatchScore)
}

func TestComparePromptUsesNoneListedPlaceholders(t *testing.T) {
	llm := &fakeLLM{response: `{"matchScore": 50}`}
	svc := NewService(llm)

	_, err := svc.CompareResumeWithJD(context.Background(), &models.UserProfile{Name: "A"}, "JD")
	require.NoError(t, err)
	assert.Contains(t, llm.lastPrompt, "Skills: None listed")
	assert.Contains(t, llm.lastPrompt, "Summary: No summary")
}

func TestParseResumeTextExtractsProfile(t *testing.T) {
	llm := &fakeLLM{response: `{
		"name": "John Smith",
		"email": "john@example.com",
		"skills": ["Python", "Django"],
		"experience": [{"position": "Developer", "company": "Widgets Inc", "duration": "2020-2023", "description": "Web apps"}]
	}`}
	svc := NewService(llm)

	profile, err := svc.ParseResumeText(context.Background(), "John Smith resume text...")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", profile.Name)
	assert.Equal(t, []string{"Python", "Django"}, profile.Skills)
	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Widgets Inc", profile.Experience[0].Company)
}

func TestParseResumeTextEmptyExtraction(t *testing.T) {
	llm := &fakeLLM{response: `{"name": "", "email": "", "skills": [], "experience": []}`}
	svc := NewService(llm)

	_, err := svc.ParseResumeText(context.Background(), "grocery list, not a resume")
	assert.ErrorIs(t, err, ErrEmptyExtraction)
}

func TestProviderErrorsPropagate(t *testing.T) {
	wantErr := errors.New("all providers failed")
	llm := &fakeLLM{err: wantErr}
	svc := NewService(llm)

	_, err := svc.GenerateResume(context.Background(), sampleProfile())
	assert.ErrorIs(t, err, wantErr)

	_, err = svc.AnalyzeJobDescription(context.Background(), "JD")
	assert.ErrorIs(t, err, wantErr)
}

func TestPromptsHaveNoUnresolvedVerbs(t *testing.T) {
	// Regression guard for printf verbs that escape formatting.
	llm := &fakeLLM{response: "ok"}
	svc := NewService(llm)

	_, err := svc.GenerateResume(context.Background(), sampleProfile())
	require.NoError(t, err)
	assert.False(t, strings.Contains(llm.lastPrompt, "%!"), llm.lastPrompt)
}
