package suggestions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-modifier/internal/llm"
	"github.com/jonathan/resume-modifier/internal/prompts"
	"github.com/jonathan/resume-modifier/internal/schemas"
	"github.com/jonathan/resume-modifier/internal/types"
)

// AnalyzeJob refines project suggestions against a job description and groups
// the job's skills into resume sections. The result is the analysis the
// resume generator merges with the candidate's parsed resume.
func AnalyzeJob(ctx context.Context, client llm.Client, job *types.JobDescription, suggested *types.ProjectSuggestions) (*types.JobAnalysis, error) {
	projectsJSON, err := json.MarshalIndent(suggested.Projects, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode candidate projects: %w", err)
	}

	template, err := prompts.Get("analysis.json", "analyze_job")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{
		"Title":            job.Title,
		"Company":          job.Company,
		"Requirements":     bulletList(job.Requirements),
		"Responsibilities": bulletList(job.Responsibilities),
		"PreferredSkills":  bulletList(job.PreferredSkills),
		"Projects":         string(projectsJSON),
	})

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze job: %w", err)
	}

	if err := schemas.ValidateJobAnalysisJSON(raw); err != nil {
		return nil, fmt.Errorf("job analysis failed schema validation: %w", err)
	}

	var result types.JobAnalysis
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to parse job analysis: %w", err)
	}
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("job analysis missing required fields: %w", err)
	}
	return &result, nil
}
