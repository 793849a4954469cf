package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-modifier/internal/artifacts"
	"github.com/jonathan/resume-modifier/internal/llm"
	"github.com/jonathan/resume-modifier/internal/observability"
	"github.com/jonathan/resume-modifier/internal/suggestions"
	"github.com/jonathan/resume-modifier/internal/types"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest-projects",
	Short: "Generate project suggestions for the latest parsed job description",
	Long:  "Generate LLM project suggestions aligned with the most recent job description artifact and save them to the artifacts directory.",
	RunE:  runSuggest,
}

var (
	suggestArtifactsDir string
	suggestNumProjects  int
	suggestAPIKey       string
	suggestVerbose      bool
)

func init() {
	suggestCmd.Flags().StringVar(&suggestArtifactsDir, "artifacts-dir", "", "Directory for saved JSON artifacts (default \"saved_details\")")
	suggestCmd.Flags().IntVar(&suggestNumProjects, "num-projects", 0, "Project suggestions to request (default 3)")
	suggestCmd.Flags().StringVar(&suggestAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	suggestCmd.Flags().BoolVarP(&suggestVerbose, "verbose", "v", false, "Print generated suggestions")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(_ *cobra.Command, _ []string) error {
	apiKey, err := resolveAPIKey(suggestAPIKey)
	if err != nil {
		return err
	}

	store := artifacts.NewStore(suggestArtifactsDir)

	var job types.JobDescription
	jobPath, err := store.Latest(artifacts.TypeJobDescription, &job)
	if err != nil {
		var notFound *artifacts.NotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("no job description artifact found; run 'resume_modifier parse --job <file>' first")
		}
		return err
	}
	fmt.Printf("Using job description: %s\n", jobPath)

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	fmt.Printf("Generating project suggestions...\n")
	result, err := suggestions.GenerateProjectSuggestions(ctx, client, &job, suggestNumProjects)
	if err != nil {
		return err
	}
	if suggestVerbose {
		observability.NewPrinter(os.Stdout).PrintSuggestions(result)
	}

	path, err := store.Save(artifacts.TypeProjectSuggestions, result)
	if err != nil {
		return err
	}
	fmt.Printf("Saved %s (%d projects)\n", path, len(result.Projects))
	return nil
}
