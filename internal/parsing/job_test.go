package parsing

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalJobJSON = `{
	"title": "Backend Engineer",
	"company": "Acme",
	"requirements": ["Go"],
	"responsibilities": [],
	"qualifications": [],
	"preferred_skills": []
}`

func TestParseJobDescription(t *testing.T) {
	client := &fakeClient{respond: func(string) (string, error) {
		return minimalJobJSON, nil
	}}

	record, err := ParseJobDescription(context.Background(), client, "We are hiring a Backend Engineer at Acme.", smallChunkOpts)
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", record.Title)
	assert.Equal(t, "Acme", record.Company)
}

func TestParseJobDescription_Empty(t *testing.T) {
	client := &fakeClient{respond: func(string) (string, error) {
		t.Fatal("no LLM call expected for empty input")
		return "", nil
	}}

	_, err := ParseJobDescription(context.Background(), client, "", smallChunkOpts)
	require.Error(t, err)

	var noData *NoUsableDataError
	assert.ErrorAs(t, err, &noData)
}

func TestParseJobDescription_FirstChunkOnly(t *testing.T) {
	var mu sync.Mutex
	var prompts []string
	client := &fakeClient{respond: func(prompt string) (string, error) {
		mu.Lock()
		prompts = append(prompts, prompt)
		mu.Unlock()
		return minimalJobJSON, nil
	}}

	longPosting := "JOBSTART hiring engineers. " + strings.Repeat("requirement detail ", 30)
	_, err := ParseJobDescription(context.Background(), client, longPosting, smallChunkOpts)
	require.NoError(t, err)

	// Only the first chunk is sent; the overflow is discarded
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "JOBSTART")
}
