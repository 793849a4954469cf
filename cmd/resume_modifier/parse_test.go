package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-modifier/internal/artifacts"
	"github.com/jonathan/resume-modifier/internal/config"
	"github.com/jonathan/resume-modifier/internal/llm"
	"github.com/jonathan/resume-modifier/internal/observability"
	"github.com/jonathan/resume-modifier/internal/parsing"
)

type fakeClient struct {
	calls int
}

func (f *fakeClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	f.calls++
	return "", nil
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	f.calls++
	return "", nil
}

func (f *fakeClient) GenerateCreativeJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	f.calls++
	return "", nil
}

func (f *fakeClient) GetModel(_ llm.ModelTier) string { return "fake-model" }

func (f *fakeClient) Close() error { return nil }

func TestParseDocuments_ResumeFailureDoesNotSkipJob(t *testing.T) {
	dir := t.TempDir()
	client := &fakeClient{}
	store := artifacts.NewStore(filepath.Join(dir, "saved"))
	printer := observability.NewPrinter(os.Stdout)

	cfg := config.Config{
		Resume: filepath.Join(dir, "missing_resume.pdf"),
		Job:    filepath.Join(dir, "missing_job.pdf"),
	}

	err := parseDocuments(context.Background(), client, store, printer, cfg, parsing.Options{})
	require.Error(t, err)

	// Both documents were attempted; each failure appears in the combined error
	assert.Contains(t, err.Error(), "resume:")
	assert.Contains(t, err.Error(), "job description:")
	assert.Contains(t, err.Error(), "missing_job.pdf")

	// Extraction failed before any LLM call, and no partial artifact was written
	assert.Zero(t, client.calls)
	assert.NoDirExists(t, filepath.Join(dir, "saved"))
}

func TestParseDocuments_JobOnly(t *testing.T) {
	dir := t.TempDir()
	client := &fakeClient{}
	store := artifacts.NewStore(filepath.Join(dir, "saved"))
	printer := observability.NewPrinter(os.Stdout)

	cfg := config.Config{Job: filepath.Join(dir, "missing_job.pdf")}

	err := parseDocuments(context.Background(), client, store, printer, cfg, parsing.Options{})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "job description:")
	assert.NotContains(t, err.Error(), "resume:")
}
