package suggestions

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-modifier/internal/llm"
	"github.com/jonathan/resume-modifier/internal/types"
)

type fakeClient struct {
	lastPrompt string
	response   string
	err        error
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.lastPrompt = prompt
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.lastPrompt = prompt
	return f.response, f.err
}

func (f *fakeClient) GenerateCreativeJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.lastPrompt = prompt
	return f.response, f.err
}

func (f *fakeClient) GetModel(_ llm.ModelTier) string { return "fake-model" }

func (f *fakeClient) Close() error { return nil }

func sampleJob() *types.JobDescription {
	return &types.JobDescription{
		Title:            "Backend Engineer",
		Company:          "Acme",
		Requirements:     []string{"Go", "PostgreSQL"},
		Responsibilities: []string{"Build services"},
		PreferredSkills:  []string{"Kubernetes"},
	}
}

const validSuggestionsJSON = `{
	"projects": [
		{
			"name": "Order Service",
			"description": "A Go microservice with PostgreSQL storage",
			"duration": "2 months",
			"role": "Lead developer",
			"technologies": ["Go", "PostgreSQL"],
			"achievements": ["Handled 1k rps"]
		}
	]
}`

func TestGenerateProjectSuggestions(t *testing.T) {
	client := &fakeClient{response: validSuggestionsJSON}

	result, err := GenerateProjectSuggestions(context.Background(), client, sampleJob(), 0)
	require.NoError(t, err)

	require.Len(t, result.Projects, 1)
	assert.Equal(t, "Order Service", result.Projects[0].Name)

	// Prompt carries the job context and the default project count
	assert.Contains(t, client.lastPrompt, "Backend Engineer")
	assert.Contains(t, client.lastPrompt, "Acme")
	assert.Contains(t, client.lastPrompt, "- Go")
	assert.Contains(t, client.lastPrompt, "generate 3 project ideas")
}

func TestGenerateProjectSuggestions_CustomCount(t *testing.T) {
	client := &fakeClient{response: validSuggestionsJSON}

	_, err := GenerateProjectSuggestions(context.Background(), client, sampleJob(), 5)
	require.NoError(t, err)

	assert.Contains(t, client.lastPrompt, "generate 5 project ideas")
}

func TestGenerateProjectSuggestions_EmptyJobLists(t *testing.T) {
	client := &fakeClient{response: validSuggestionsJSON}
	job := &types.JobDescription{Title: "Engineer", Company: "Acme"}

	_, err := GenerateProjectSuggestions(context.Background(), client, job, 0)
	require.NoError(t, err)

	assert.Contains(t, client.lastPrompt, "(none listed)")
}

func TestGenerateProjectSuggestions_LLMFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("boom")}

	_, err := GenerateProjectSuggestions(context.Background(), client, sampleJob(), 0)
	assert.Error(t, err)
}

func TestGenerateProjectSuggestions_InvalidResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "empty project list", response: `{"projects": []}`},
		{name: "missing description", response: `{"projects": [{"name": "X"}]}`},
		{name: "not json", response: "sorry, I cannot help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{response: tt.response}
			_, err := GenerateProjectSuggestions(context.Background(), client, sampleJob(), 0)
			assert.Error(t, err)
		})
	}
}

func TestBulletList(t *testing.T) {
	assert.Equal(t, "(none listed)", bulletList(nil))
	assert.Equal(t, "- one", bulletList([]string{"one"}))
	assert.Equal(t, "- one\n- two", bulletList([]string{"one", "two"}))
}

func TestAnalyzeJob(t *testing.T) {
	client := &fakeClient{response: `{
		"projects": [{"name": "Order Service", "description": "Refined for the job", "technologies": ["Go"]}],
		"skills": {
			"technical_skills": ["Go", "SQL"],
			"tools": ["Docker"],
			"soft_skills": ["Communication"],
			"domain_knowledge": ["Payments"]
		}
	}`}

	suggested := &types.ProjectSuggestions{
		Projects: []types.Project{{Name: "Order Service", Description: "Original idea"}},
	}

	result, err := AnalyzeJob(context.Background(), client, sampleJob(), suggested)
	require.NoError(t, err)

	require.Len(t, result.Projects, 1)
	assert.Equal(t, "Refined for the job", result.Projects[0].Description)
	assert.Equal(t, []string{"Go", "SQL"}, result.Skills.TechnicalSkills)

	// Prompt includes the candidate projects as JSON
	assert.True(t, strings.Contains(client.lastPrompt, "Original idea"))
}

func TestAnalyzeJob_InvalidResponse(t *testing.T) {
	client := &fakeClient{response: `{"projects": []}`}

	suggested := &types.ProjectSuggestions{
		Projects: []types.Project{{Name: "X", Description: "Y"}},
	}

	_, err := AnalyzeJob(context.Background(), client, sampleJob(), suggested)
	assert.Error(t, err)
}
