package models

// JobInfo describes the position a cover letter or tailored resume targets
type JobInfo struct {
	Position    string `json:"position,omitempty"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`
}

// JobDescriptionAnalysis is the structured result of analyzing a job
// description. The shape is a contract with the provider; the JSON repair
// layer enforces it.
type JobDescriptionAnalysis struct {
	RequiredSkills   []string `json:"requiredSkills"`
	PreferredSkills  []string `json:"preferredSkills"`
	Keywords         []string `json:"keywords"`
	ExperienceLevel  string   `json:"experienceLevel"`
	Responsibilities []string `json:"responsibilities"`
	Qualifications   []string `json:"qualifications"`
}

// ComparisonResult holds the suggestions from comparing a resume against a
// job description.
type ComparisonResult struct {
	MatchScore             int      `json:"matchScore"`
	MissingSkills          []string `json:"missingSkills"`
	SuggestedSkills        []string `json:"suggestedSkills"`
	SummaryImprovements    string   `json:"summaryImprovements"`
	ExperienceImprovements []string `json:"experienceImprovements"`
	KeywordsToAdd          []string `json:"keywordsToAdd"`
	Strengths              []string `json:"strengths"`
	OverallFeedback        string   `json:"overallFeedback"`
}
