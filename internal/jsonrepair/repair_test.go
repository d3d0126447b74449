package jsonrepair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseMap(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	v, err := Parse(raw)
	require.NoError(t, err)
	m, ok := v.(map[string]interface{})
	require.True(t, ok, "expected a JSON object")
	return m
}

func TestParseValidJSON(t *testing.T) {
	m := parseMap(t, `{"name": "test", "value": 123}`)
	assert.Equal(t, "test", m["name"])
	assert.Equal(t, float64(123), m["value"])
}

func TestTrailingCommaInArray(t *testing.T) {
	m := parseMap(t, `{"skills": ["JavaScript", "Python",]}`)
	assert.Equal(t, []interface{}{"JavaScript", "Python"}, m["skills"])
}

func TestTrailingCommaInObject(t *testing.T) {
	m := parseMap(t, `{"name": "test", "value": 123,}`)
	assert.Equal(t, "test", m["name"])
	assert.Equal(t, float64(123), m["value"])
}

func TestMissingCommasBetweenArrayElements(t *testing.T) {
	m := parseMap(t, `{"skills": ["JavaScript" "Python" "Go"]}`)
	assert.Equal(t, []interface{}{"JavaScript", "Python", "Go"}, m["skills"])
}

func TestMissingCommasBetweenObjectMembers(t *testing.T) {
	m := parseMap(t, `{"name": "test" "value": 123}`)
	assert.Equal(t, "test", m["name"])
	assert.Equal(t, float64(123), m["value"])
}

func TestUnquotedKeys(t *testing.T) {
	m := parseMap(t, `{name: "test", value: 123}`)
	assert.Equal(t, "test", m["name"])
	assert.Equal(t, float64(123), m["value"])
}

func TestSingleQuotedStrings(t *testing.T) {
	m := parseMap(t, `{'name': 'test', 'value': 123}`)
	assert.Equal(t, "test", m["name"])
	assert.Equal(t, float64(123), m["value"])
}

func TestComments(t *testing.T) {
	raw := `{
		// line comment
		"name": "test",
		/* block
		   comment */
		"value": 123
	}`
	m := parseMap(t, raw)
	assert.Equal(t, "test", m["name"])
	assert.Equal(t, float64(123), m["value"])
}

func TestCombinedIssues(t *testing.T) {
	raw := `{
		"matchScore": 85,
		"missingSkills": ["Docker", "Kubernetes",],
		"suggestedSkills": ["AWS" "Azure"],
		strengths: ['Strong backend', 'Good communication',]
	}`
	m := parseMap(t, raw)
	assert.Equal(t, float64(85), m["matchScore"])
	assert.Equal(t, []interface{}{"Docker", "Kubernetes"}, m["missingSkills"])
	assert.Equal(t, []interface{}{"AWS", "Azure"}, m["suggestedSkills"])
	assert.Equal(t, []interface{}{"Strong backend", "Good communication"}, m["strengths"])
}

func TestEmptyContainersAndScalars(t *testing.T) {
	m := parseMap(t, `{"empty": [], "obj": {}, "decimal": 3.14, "negative": -10, "yes": true, "no": false}`)
	assert.Equal(t, []interface{}{}, m["empty"])
	assert.Equal(t, map[string]interface{}{}, m["obj"])
	assert.Equal(t, 3.14, m["decimal"])
	assert.Equal(t, float64(-10), m["negative"])
	assert.Equal(t, true, m["yes"])
	assert.Equal(t, false, m["no"])
}

func TestEscapedCharacters(t *testing.T) {
	m := parseMap(t, `{"message": "Line 1\nLine 2\tTabbed"}`)
	assert.Equal(t, "Line 1\nLine 2\tTabbed", m["message"])
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"name": "test"}`, StripFences("```json\n{\"name\": \"test\"}\n```"))
	assert.Equal(t, `{"name": "test"}`, StripFences("```\n{\"name\": \"test\"}\n```"))
	assert.Equal(t, `{"name": "test"}`, StripFences(`{"name": "test"}`))
	// Idempotent
	assert.Equal(t, `{"name": "test"}`, StripFences(StripFences("```json\n{\"name\": \"test\"}\n```")))
}

func TestFencedJSONParses(t *testing.T) {
	m := parseMap(t, "```json\n{\"requiredSkills\": [\"Python\", \"Machine Learning\",],\n\"preferredSkills\": [\"TensorFlow\",]}\n```")
	assert.Equal(t, []interface{}{"Python", "Machine Learning"}, m["requiredSkills"])
	assert.Equal(t, []interface{}{"TensorFlow"}, m["preferredSkills"])
}

func TestUnrecoverableInput(t *testing.T) {
	cases := map[string]string{
		"empty":            "",
		"whitespace":       "   \n\t ",
		"unbalanced brace": `{"a": 1`,
		"unbalanced array": `{"a": [1, 2`,
		"prose":            "I could not produce the requested JSON, sorry.",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(raw)
			assert.Error(t, err)
		})
	}
}

func TestParseIntoStruct(t *testing.T) {
	var out struct {
		RequiredSkills  []string `json:"requiredSkills"`
		ExperienceLevel string   `json:"experienceLevel"`
	}
	raw := `{
		"requiredSkills": ["JavaScript", "React", "Node.js",],
		"experienceLevel": "mid",
	}`
	require.NoError(t, ParseInto(raw, &out))
	assert.Len(t, out.RequiredSkills, 3)
	assert.Equal(t, "mid", out.ExperienceLevel)
}
