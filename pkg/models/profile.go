package models

// UserProfile represents the career information a user submits for document
// generation, and the structure extracted from an uploaded resume.
type UserProfile struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone,omitempty"`
	Location   string       `json:"location,omitempty"`
	Summary    string       `json:"summary,omitempty"`
	Skills     []string     `json:"skills,omitempty"`
	LinkedIn   string       `json:"linkedin,omitempty"`
	GitHub     string       `json:"github,omitempty"`
	Portfolio  string       `json:"portfolio,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	Education  []Education  `json:"education,omitempty"`
}

// Experience represents a single work experience entry
type Experience struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Education represents a single education entry
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Project represents a portfolio project entry
type Project struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies,omitempty"`
	Link         string `json:"link,omitempty"`
}

// HasMeaningfulData reports whether an extracted profile carries at least one
// identifying or substantive field. A syntactically valid but empty profile
// is treated as a failed extraction by callers.
func (p *UserProfile) HasMeaningfulData() bool {
	return p.Name != "" || p.Email != "" || len(p.Skills) > 0 || len(p.Experience) > 0
}
