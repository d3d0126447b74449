package templates

import (
	"embed"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"hiremind-api/pkg/models"
)

//go:embed html/*.html
var templateFiles embed.FS

// DefaultTemplate is used when a request does not name one
const DefaultTemplate = "modern"

// catalog describes the available resume templates. Order in listings is
// alphabetical by id.
var catalog = map[string]models.TemplateInfo{
	"modern": {
		ID:          "modern",
		Name:        "Modern Professional",
		Description: "A modern resume with gradient header and clean layout, perfect for tech and creative roles",
		Preview:     "Modern design with purple gradient header, elegant typography",
		ATSScore:    9,
		Recommended: true,
	},
	"classic": {
		ID:          "classic",
		Name:        "Classic ATS",
		Description: "Traditional black and white design optimized for Applicant Tracking Systems",
		Preview:     "Professional black and white layout with clear sections",
		ATSScore:    10,
		Recommended: true,
	},
	"minimal": {
		ID:          "minimal",
		Name:        "Minimal Sidebar",
		Description: "Clean two-column layout with sidebar, great for highlighting key information",
		Preview:     "Two-column design with dark sidebar for contact and skills",
		ATSScore:    8,
		Recommended: false,
	},
}

var parsed = template.Must(template.New("resume").Funcs(template.FuncMap{
	"join": func(values []string, sep string) string {
		return strings.Join(values, sep)
	},
}).ParseFS(templateFiles, "html/*.html"))

// UnknownTemplateError identifies a request for a template that is not in
// the catalog.
type UnknownTemplateError struct {
	ID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("template %q not found. Available templates: %s", e.ID, strings.Join(ListIDs(), ", "))
}

// List returns the catalog in stable order
func List() []models.TemplateInfo {
	infos := make([]models.TemplateInfo, 0, len(catalog))
	for _, info := range catalog {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// ListIDs returns the available template ids in stable order
func ListIDs() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Exists reports whether the template id is in the catalog
func Exists(id string) bool {
	_, ok := catalog[id]
	return ok
}

// Get returns the catalog entry for the given id
func Get(id string) (models.TemplateInfo, error) {
	info, ok := catalog[id]
	if !ok {
		return models.TemplateInfo{}, &UnknownTemplateError{ID: id}
	}
	return info, nil
}

// Render produces an HTML resume page from the profile using the named
// template. An empty id falls back to the default template.
func Render(id string, profile *models.UserProfile) (string, error) {
	if id == "" {
		id = DefaultTemplate
	}
	if !Exists(id) {
		return "", &UnknownTemplateError{ID: id}
	}

	var b strings.Builder
	if err := parsed.ExecuteTemplate(&b, id+".html", profile); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", id, err)
	}
	return b.String(), nil
}
