package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCoverLetter(t *testing.T) {
	e := newTestServer(t, &scriptedLLM{})

	rec := doJSON(e, http.MethodPost, "/api/cover-letter", map[string]interface{}{
		"userInfo": map[string]interface{}{
			"name":   "Jane Doe",
			"email":  "jane@example.com",
			"skills": []string{"Go"},
		},
		"jobInfo": map[string]interface{}{
			"position": "Staff Engineer",
			"company":  "Initech",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	data := decodeEnvelope(t, rec)
	assert.Contains(t, data["coverLetter"], "Dear Hiring Manager")
	assert.NotEmpty(t, data["generatedAt"])
}

func TestCreateCoverLetterRequiresUserInfo(t *testing.T) {
	e := newTestServer(t, &scriptedLLM{})

	rec := doJSON(e, http.MethodPost, "/api/cover-letter", map[string]interface{}{
		"jobInfo": map[string]interface{}{"position": "Engineer"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePortfolio(t *testing.T) {
	e := newTestServer(t, &scriptedLLM{})

	rec := doJSON(e, http.MethodPost, "/api/portfolio", map[string]interface{}{
		"name":  "Jane Doe",
		"email": "jane@example.com",
		"title": "Backend Engineer",
		"projects": []map[string]interface{}{
			{"name": "hiremind", "description": "Career API", "technologies": "Go, Redis"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	data := decodeEnvelope(t, rec)
	assert.Contains(t, data["portfolio"], "<html")
	assert.Equal(t, "html", data["format"])
}

func TestCreatePortfolioRequiresNameAndEmail(t *testing.T) {
	e := newTestServer(t, &scriptedLLM{})

	rec := doJSON(e, http.MethodPost, "/api/portfolio", map[string]interface{}{
		"title": "Engineer",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
