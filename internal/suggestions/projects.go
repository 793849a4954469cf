// Package suggestions generates job-tailored project ideas and the combined
// job analysis that drives resume generation.
package suggestions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-modifier/internal/llm"
	"github.com/jonathan/resume-modifier/internal/prompts"
	"github.com/jonathan/resume-modifier/internal/schemas"
	"github.com/jonathan/resume-modifier/internal/types"
)

// DefaultNumProjects is how many project ideas a single generation asks for.
const DefaultNumProjects = 3

// GenerateProjectSuggestions asks the LLM for project ideas that demonstrate
// the skills a job description calls for. Generation uses creative sampling;
// two runs over the same posting may legitimately differ.
func GenerateProjectSuggestions(ctx context.Context, client llm.Client, job *types.JobDescription, numProjects int) (*types.ProjectSuggestions, error) {
	if numProjects <= 0 {
		numProjects = DefaultNumProjects
	}

	template, err := prompts.Get("suggestions.json", "generate_projects")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{
		"NumProjects":      fmt.Sprintf("%d", numProjects),
		"Title":            job.Title,
		"Company":          job.Company,
		"Requirements":     bulletList(job.Requirements),
		"Responsibilities": bulletList(job.Responsibilities),
		"PreferredSkills":  bulletList(job.PreferredSkills),
	})

	raw, err := client.GenerateCreativeJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("failed to generate project suggestions: %w", err)
	}

	if err := schemas.ValidateProjectSuggestionsJSON(raw); err != nil {
		return nil, fmt.Errorf("project suggestions failed schema validation: %w", err)
	}

	var result types.ProjectSuggestions
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to parse project suggestions: %w", err)
	}
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("project suggestions missing required fields: %w", err)
	}
	return &result, nil
}

// bulletList renders items as one "- item" line each, for prompt insertion.
func bulletList(items []string) string {
	if len(items) == 0 {
		return "(none listed)"
	}
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- ")
		sb.WriteString(item)
	}
	return sb.String()
}
