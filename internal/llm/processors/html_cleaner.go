package processors

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLCleaner strips markup from pasted job descriptions so only readable
// text is sent to the AI providers. Users frequently paste straight from a
// job board, which brings scripts, navigation and tracking attributes along.
type HTMLCleaner struct {
	removeTags []string
}

var (
	whitespaceRegex = regexp.MustCompile(`[ \t]+`)
	newlineRegex    = regexp.MustCompile(`\n{3,}`)
	tagRegex        = regexp.MustCompile(`(?i)<\s*(html|body|div|p|br|span|ul|li|h[1-6])[\s>/]`)
)

// NewHTMLCleaner creates a cleaner with the default set of stripped tags
func NewHTMLCleaner() *HTMLCleaner {
	return &HTMLCleaner{
		removeTags: []string{
			"script", "style", "noscript", "iframe", "object", "embed",
			"form", "input", "button", "select", "textarea",
			"nav", "header", "footer", "aside", "menu",
			"svg", "path", "g", "defs", "use", "symbol",
			"meta", "link", "title", "base", "img",
		},
	}
}

// LooksLikeHTML reports whether the input appears to be markup rather than
// plain text. Plain text passes through ExtractText unchanged, so this is
// only used to skip the parse for the common paste-as-text case.
func LooksLikeHTML(input string) bool {
	return tagRegex.MatchString(input)
}

// ExtractText parses the input as HTML and returns its readable text with
// scripts, chrome and boilerplate removed. Non-HTML input comes back as
// normalized plain text.
func (hc *HTMLCleaner) ExtractText(input string) (string, error) {
	if !LooksLikeHTML(input) {
		return normalizeText(input), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return "", err
	}

	for _, tag := range hc.removeTags {
		doc.Find(tag).Remove()
	}

	// Block-level elements collapse into one line without separators, so
	// append a newline marker before reading the document text.
	doc.Find("p, div, li, br, h1, h2, h3, h4, h5, h6, tr").Each(func(i int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}

	return normalizeText(text), nil
}

// normalizeText collapses runs of spaces and blank lines left behind by the
// markup removal
func normalizeText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(whitespaceRegex.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")
	text = newlineRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
