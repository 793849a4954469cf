package parsing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-modifier/internal/llm"
)

// fakeClient satisfies llm.Client with a canned respond function. Calls are
// counted so tests can assert retry behavior.
type fakeClient struct {
	mu      sync.Mutex
	calls   int
	respond func(prompt string) (string, error)
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	return f.invoke(prompt)
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	return f.invoke(prompt)
}

func (f *fakeClient) GenerateCreativeJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	return f.invoke(prompt)
}

func (f *fakeClient) GetModel(_ llm.ModelTier) string { return "fake-model" }

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) invoke(prompt string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.respond(prompt)
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

const minimalResumeJSON = `{
	"personal_info": {"name": "Jane Doe"},
	"education": [],
	"experience": [],
	"projects": [],
	"skills": ["Go"]
}`

func TestExtractResumeChunk(t *testing.T) {
	client := &fakeClient{respond: func(string) (string, error) {
		return minimalResumeJSON, nil
	}}

	record, err := ExtractResumeChunk(context.Background(), client, "Jane Doe\nSkills: Go")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", record.PersonalInfo.Name)
	assert.Equal(t, []string{"Go"}, record.Skills)
}

func TestExtractResumeChunk_MalformedJSON(t *testing.T) {
	client := &fakeClient{respond: func(string) (string, error) {
		return "this is not json", nil
	}}

	_, err := ExtractResumeChunk(context.Background(), client, "text")
	require.Error(t, err)

	var schemaErr *SchemaViolationError
	assert.ErrorAs(t, err, &schemaErr)
	// Malformed output is never retried
	assert.Equal(t, 1, client.callCount())
}

func TestExtractResumeChunk_MissingRequiredField(t *testing.T) {
	client := &fakeClient{respond: func(string) (string, error) {
		return `{"personal_info": {"email": "jane@example.com"}}`, nil
	}}

	_, err := ExtractResumeChunk(context.Background(), client, "text")
	require.Error(t, err)

	var schemaErr *SchemaViolationError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestExtractResumeChunk_RemoteFailure(t *testing.T) {
	client := &fakeClient{respond: func(string) (string, error) {
		return "", errors.New("connection refused")
	}}

	_, err := ExtractResumeChunk(context.Background(), client, "text")
	require.Error(t, err)

	var apiErr *APICallError
	assert.ErrorAs(t, err, &apiErr)
}

func TestGenerateWithRetry_TransientErrorRecovers(t *testing.T) {
	var failed bool
	client := &fakeClient{respond: func(string) (string, error) {
		if !failed {
			failed = true
			return "", errors.New("429 rate limit exceeded")
		}
		return `{"ok": true}`, nil
	}}

	raw, err := generateWithRetry(context.Background(), client, "prompt", llm.TierStandard)
	require.NoError(t, err)

	assert.Equal(t, `{"ok": true}`, raw)
	assert.Equal(t, 2, client.callCount())
}

func TestGenerateWithRetry_NonRetryableFailsFast(t *testing.T) {
	client := &fakeClient{respond: func(string) (string, error) {
		return "", errors.New("invalid API key")
	}}

	_, err := generateWithRetry(context.Background(), client, "prompt", llm.TierStandard)
	require.Error(t, err)

	assert.Equal(t, 1, client.callCount())
}

func TestGenerateWithRetry_ExhaustsRetries(t *testing.T) {
	client := &fakeClient{respond: func(string) (string, error) {
		return "", errors.New("503 service temporarily unavailable")
	}}

	_, err := generateWithRetry(context.Background(), client, "prompt", llm.TierStandard)
	require.Error(t, err)

	var apiErr *APICallError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, maxRetries+1, client.callCount())
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		err       error
		retryable bool
	}{
		{errors.New("rate limit exceeded"), true},
		{errors.New("request timeout"), true},
		{errors.New("context deadline exceeded"), true},
		{errors.New("connection reset by peer"), true},
		{errors.New("HTTP 429"), true},
		{errors.New("HTTP 503"), true},
		{errors.New("invalid API key"), false},
		{errors.New("model not found"), false},
		{nil, false},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.err != nil {
			name = tt.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, isRetryableError(tt.err))
		})
	}
}

func TestExtractJobChunk(t *testing.T) {
	client := &fakeClient{respond: func(string) (string, error) {
		return `{
			"title": "Backend Engineer",
			"company": "Acme",
			"location": "Remote",
			"requirements": ["Go", "PostgreSQL"],
			"responsibilities": ["Build services"],
			"qualifications": [],
			"preferred_skills": ["Kubernetes"]
		}`, nil
	}}

	record, err := ExtractJobChunk(context.Background(), client, "job posting text")
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", record.Title)
	assert.Equal(t, "Acme", record.Company)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, record.Requirements)
}

func TestExtractJobChunk_MissingCompany(t *testing.T) {
	client := &fakeClient{respond: func(string) (string, error) {
		return `{"title": "Backend Engineer"}`, nil
	}}

	_, err := ExtractJobChunk(context.Background(), client, "job posting text")
	require.Error(t, err)

	var schemaErr *SchemaViolationError
	assert.ErrorAs(t, err, &schemaErr)
}

// resumeJSONFor builds a minimal valid per-chunk response for fan-out tests.
func resumeJSONFor(degree string, skills ...string) string {
	skillsJSON := ""
	for i, s := range skills {
		if i > 0 {
			skillsJSON += ", "
		}
		skillsJSON += fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf(`{
		"personal_info": {"name": "Jane Doe"},
		"education": [{"degree": %q, "institution": "MIT"}],
		"experience": [],
		"projects": [],
		"skills": [%s]
	}`, degree, skillsJSON)
}
