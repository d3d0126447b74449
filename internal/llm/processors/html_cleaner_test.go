package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextPlainTextPassthrough(t *testing.T) {
	cleaner := NewHTMLCleaner()

	input := "Senior Go Engineer\n\nWe are looking for someone with 5+ years of experience."
	text, err := cleaner.ExtractText(input)
	require.NoError(t, err)
	assert.Equal(t, input, text)
}

func TestExtractTextStripsMarkup(t *testing.T) {
	cleaner := NewHTMLCleaner()

	html := `<html><head><title>Job</title><script>track()</script></head>
<body>
  <nav>Home | Jobs | About</nav>
  <div class="job-description">
    <h1>Senior Go Engineer</h1>
    <p>Build distributed systems at scale.</p>
    <ul><li>Go</li><li>Kubernetes</li></ul>
  </div>
  <footer>Copyright 2025</footer>
</body></html>`

	text, err := cleaner.ExtractText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "Build distributed systems at scale.")
	assert.Contains(t, text, "Kubernetes")
	assert.NotContains(t, text, "track()")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright 2025")
	assert.NotContains(t, text, "<")
}

func TestExtractTextSeparatesBlocks(t *testing.T) {
	cleaner := NewHTMLCleaner()

	text, err := cleaner.ExtractText("<body><p>First requirement</p><p>Second requirement</p></body>")
	require.NoError(t, err)
	assert.Contains(t, text, "First requirement\n")
	assert.Contains(t, text, "Second requirement")
}

func TestLooksLikeHTML(t *testing.T) {
	assert.True(t, LooksLikeHTML("<div class='x'>hello</div>"))
	assert.True(t, LooksLikeHTML("<p>hello"))
	assert.False(t, LooksLikeHTML("plain text, 5 < 10 comparisons allowed"))
	assert.False(t, LooksLikeHTML("Requirements: Go, SQL"))
}
