package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractionPrompt(t *testing.T) {
	schema := ExtractionSchema{
		Name:        "Test",
		Description: "Extract test data.",
		Fields: []SchemaField{
			{Name: "title", Type: "\"string\"", Description: "The title", Required: true},
			{Name: "tags", Type: "[\"string\"]", Required: false},
			{Name: "venue", Type: "\"string\"", Default: "\"Not specified\""},
		},
	}

	prompt := BuildExtractionPrompt(schema, "some input text")

	assert.Contains(t, prompt, "Extract test data.")
	assert.Contains(t, prompt, `"title"`)
	assert.Contains(t, prompt, "(required)")
	assert.Contains(t, prompt, "// The title")
	assert.Contains(t, prompt, "Missing-value policy:")
	assert.Contains(t, prompt, `If venue is not present in the text, use "Not specified".`)
	assert.Contains(t, prompt, "some input text")
	assert.Contains(t, prompt, "Return ONLY the JSON object")
}

func TestBuildExtractionPrompt_NoDefaults(t *testing.T) {
	schema := ExtractionSchema{
		Name:        "Minimal",
		Description: "Extract.",
		Fields: []SchemaField{
			{Name: "name", Required: true},
		},
	}

	prompt := BuildExtractionPrompt(schema, "text")

	assert.NotContains(t, prompt, "Missing-value policy:")
	// Type hint falls back to string
	assert.Contains(t, prompt, `"name": string`)
}

func TestResumeSchema(t *testing.T) {
	schema := ResumeSchema()

	fieldNames := make([]string, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		fieldNames = append(fieldNames, f.Name)
	}

	assert.Equal(t, []string{"personal_info", "education", "experience", "projects", "skills"}, fieldNames)
	assert.True(t, schema.Fields[0].Required)
}

func TestJobDescriptionSchema(t *testing.T) {
	schema := JobDescriptionSchema()

	required := 0
	for _, f := range schema.Fields {
		if f.Required {
			required++
		}
	}

	// Only title and company are required
	assert.Equal(t, 2, required)
	assert.Equal(t, "title", schema.Fields[0].Name)
	assert.Equal(t, "company", schema.Fields[1].Name)
}
