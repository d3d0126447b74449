package generator

import (
	"fmt"
	"strings"

	"hiremind-api/pkg/models"
)

// System messages per document type. Keeping them centralized makes the
// AI-facing contract reviewable in one place.
const (
	resumeSystemMessage      = "You are an expert resume writer. Create professional, ATS-friendly resumes that highlight the candidate's strengths."
	tailoredSystemMessage    = "You are an expert resume writer specializing in ATS optimization and job-specific tailoring. Create compelling, keyword-rich resumes."
	coverLetterSystemMessage = "You are an expert cover letter writer. Create personalized, engaging cover letters that connect the candidate's experience to the job requirements."
	portfolioSystemMessage   = "You are a web designer specialized in creating professional portfolio webpages. Generate clean, modern HTML with inline CSS."
	analyzeJDSystemMessage   = "You are an expert at analyzing job descriptions and extracting key requirements. Always respond with valid JSON only, no additional text."
	compareSystemMessage     = "You are an expert resume coach and ATS optimization specialist. Provide actionable, specific suggestions. Always respond with valid JSON only."
	parseResumeSystemMessage = "You are an expert at reading resumes and extracting structured candidate data. Always respond with valid JSON only, no additional text."
)

const notProvided = "Not provided"
const notSpecified = "Not specified"

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func joinOrDefault(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func formatExperienceBlock(experience []models.Experience) string {
	if len(experience) == 0 {
		return notProvided
	}
	var b strings.Builder
	for _, exp := range experience {
		fmt.Fprintf(&b, "\n- Position: %s\n  Company: %s\n  Duration: %s\n  Description: %s\n",
			exp.Position, exp.Company, exp.Duration, exp.Description)
	}
	return b.String()
}

func formatEducationBlock(education []models.Education) string {
	if len(education) == 0 {
		return notProvided
	}
	var b strings.Builder
	for _, edu := range education {
		fmt.Fprintf(&b, "\n- Degree: %s\n  Institution: %s\n  Year: %s\n",
			edu.Degree, edu.Institution, edu.Year)
	}
	return b.String()
}

func formatExperienceInline(experience []models.Experience) string {
	if len(experience) == 0 {
		return notProvided
	}
	lines := make([]string, 0, len(experience))
	for _, exp := range experience {
		lines = append(lines, fmt.Sprintf("%s at %s (%s): %s", exp.Position, exp.Company, exp.Duration, exp.Description))
	}
	return strings.Join(lines, "\n")
}

func formatEducationInline(education []models.Education) string {
	if len(education) == 0 {
		return notProvided
	}
	lines := make([]string, 0, len(education))
	for _, edu := range education {
		lines = append(lines, fmt.Sprintf("%s from %s (%s)", edu.Degree, edu.Institution, edu.Year))
	}
	return strings.Join(lines, "\n")
}

func formatProjectsBlock(projects []models.Project) string {
	if len(projects) == 0 {
		return notProvided
	}
	var b strings.Builder
	for _, proj := range projects {
		fmt.Fprintf(&b, "\n- Name: %s\n  Description: %s\n  Technologies: %s\n  Link: %s\n",
			proj.Name, proj.Description,
			orDefault(proj.Technologies, notSpecified),
			orDefault(proj.Link, notProvided))
	}
	return b.String()
}

func buildResumePrompt(profile *models.UserProfile) string {
	return fmt.Sprintf(`Create a professional resume based on the following information:

Name: %s
Email: %s
Phone: %s
Location: %s
LinkedIn: %s
GitHub: %s
Portfolio: %s

Professional Summary: %s

Skills: %s

Work Experience:
%s

Education:
%s

Generate a well-formatted, professional resume in markdown format.`,
		profile.Name,
		profile.Email,
		orDefault(profile.Phone, notProvided),
		orDefault(profile.Location, notProvided),
		orDefault(profile.LinkedIn, notProvided),
		orDefault(profile.GitHub, notProvided),
		orDefault(profile.Portfolio, notProvided),
		orDefault(profile.Summary, notProvided),
		joinOrDefault(profile.Skills, notProvided),
		formatExperienceBlock(profile.Experience),
		formatEducationBlock(profile.Education),
	)
}

func buildTailoredResumePrompt(profile *models.UserProfile, jobDescription string) string {
	return fmt.Sprintf(`Create an optimized resume tailored for the following job description:

Job Description:
%s

User's Information:
Name: %s
Email: %s
Phone: %s
Location: %s
LinkedIn: %s
GitHub: %s
Portfolio: %s
Summary: %s
Skills: %s
Experience: %s
Education: %s

Tailor the resume to highlight relevant skills and experience that match the job description.
Include keywords from the job description naturally throughout the resume.
Provide the complete resume content in markdown format.`,
		jobDescription,
		profile.Name,
		profile.Email,
		orDefault(profile.Phone, notProvided),
		orDefault(profile.Location, notProvided),
		orDefault(profile.LinkedIn, notProvided),
		orDefault(profile.GitHub, notProvided),
		orDefault(profile.Portfolio, notProvided),
		orDefault(profile.Summary, notProvided),
		joinOrDefault(profile.Skills, notProvided),
		formatExperienceInline(profile.Experience),
		formatEducationInline(profile.Education),
	)
}

func buildCoverLetterPrompt(userInfo *models.UserProfile, jobInfo *models.JobInfo) string {
	return fmt.Sprintf(`Create a professional cover letter for the following:

Applicant Information:
Name: %s
Email: %s

Target Position: %s
Company: %s
Job Description: %s

Applicant's Background:
%s

Key Skills: %s

Generate a compelling cover letter that highlights relevant experience and shows enthusiasm for the position.`,
		userInfo.Name,
		userInfo.Email,
		orDefault(jobInfo.Position, notSpecified),
		orDefault(jobInfo.Company, notSpecified),
		orDefault(jobInfo.Description, notProvided),
		orDefault(userInfo.Summary, notProvided),
		joinOrDefault(userInfo.Skills, notProvided),
	)
}

func buildPortfolioPrompt(req *models.PortfolioRequest) string {
	bio := req.Bio
	if strings.TrimSpace(bio) == "" {
		bio = req.UserProfile.Summary
	}
	return fmt.Sprintf(`Create HTML content for a professional portfolio webpage based on:

Name: %s
Title: %s
Bio: %s

Skills: %s

Projects:
%s

Generate a modern, professional HTML portfolio page with inline CSS styling. Include sections for About, Skills, and Projects.`,
		req.UserProfile.Name,
		orDefault(req.Title, "Professional"),
		orDefault(bio, notProvided),
		joinOrDefault(req.UserProfile.Skills, notProvided),
		formatProjectsBlock(req.Projects),
	)
}

func buildAnalyzeJDPrompt(jobDescription string) string {
	return fmt.Sprintf(`Analyze the following job description and extract key information in JSON format:

Job Description:
%s

Please provide a JSON response with the following structure:
{
  "requiredSkills": ["skill1", "skill2", ...],
  "preferredSkills": ["skill1", "skill2", ...],
  "keywords": ["keyword1", "keyword2", ...],
  "experienceLevel": "entry/mid/senior",
  "responsibilities": ["responsibility1", "responsibility2", ...],
  "qualifications": ["qualification1", "qualification2", ...]
}

Focus on technical skills, tools, and relevant keywords that should appear in a resume.`, jobDescription)
}

func buildComparePrompt(resumeData *models.UserProfile, jobDescription string) string {
	return fmt.Sprintf(`Compare the following resume with the job description and provide improvement suggestions:

Resume:
Name: %s
Skills: %s
Experience: %s
Summary: %s

Job Description:
%s

Provide a JSON response with:
{
  "matchScore": <number 0-100>,
  "missingSkills": ["skill1", "skill2", ...],
  "suggestedSkills": ["skill1", "skill2", ...],
  "summaryImprovements": "Suggested improvements for professional summary",
  "experienceImprovements": ["suggestion1", "suggestion2", ...],
  "keywordsToAdd": ["keyword1", "keyword2", ...],
  "strengths": ["strength1", "strength2", ...],
  "overallFeedback": "Brief overall assessment"
}`,
		resumeData.Name,
		joinOrDefault(resumeData.Skills, "None listed"),
		formatExperienceSummary(resumeData.Experience),
		orDefault(resumeData.Summary, "No summary"),
		jobDescription,
	)
}

func formatExperienceSummary(experience []models.Experience) string {
	if len(experience) == 0 {
		return "None listed"
	}
	parts := make([]string, 0, len(experience))
	for _, exp := range experience {
		parts = append(parts, fmt.Sprintf("%s at %s", exp.Position, exp.Company))
	}
	return strings.Join(parts, ", ")
}

func buildParseResumePrompt(resumeText string) string {
	return fmt.Sprintf(`Extract structured candidate information from the following resume text:

Resume Text:
%s

Please provide a JSON response with the following structure:
{
  "name": "candidate full name",
  "email": "email address",
  "phone": "phone number",
  "location": "city, state or country",
  "summary": "professional summary",
  "skills": ["skill1", "skill2", ...],
  "linkedin": "linkedin URL if present",
  "github": "github URL if present",
  "portfolio": "portfolio URL if present",
  "experience": [{"position": "...", "company": "...", "duration": "...", "description": "..."}, ...],
  "education": [{"degree": "...", "institution": "...", "year": "..."}, ...]
}

Use empty strings or empty arrays for information that is not present in the resume. Do not invent details.`, resumeText)
}
