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

var analyzeCmd = &cobra.Command{
	Use:   "analyze-job",
	Short: "Build the job analysis from the latest job description and suggestions",
	Long:  "Refine the most recent project suggestions against the job description and group the job's skills into resume sections, saving the combined analysis.",
	RunE:  runAnalyze,
}

var (
	analyzeArtifactsDir string
	analyzeAPIKey       string
	analyzeVerbose      bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeArtifactsDir, "artifacts-dir", "", "Directory for saved JSON artifacts (default \"saved_details\")")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print the analysis summary")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	apiKey, err := resolveAPIKey(analyzeAPIKey)
	if err != nil {
		return err
	}

	store := artifacts.NewStore(analyzeArtifactsDir)

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

	var suggested types.ProjectSuggestions
	suggestionsPath, err := store.Latest(artifacts.TypeProjectSuggestions, &suggested)
	if err != nil {
		var notFound *artifacts.NotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("no project suggestions artifact found; run 'resume_modifier suggest-projects' first")
		}
		return err
	}
	fmt.Printf("Using project suggestions: %s\n", suggestionsPath)

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	fmt.Printf("Analyzing job fit...\n")
	result, err := suggestions.AnalyzeJob(ctx, client, &job, &suggested)
	if err != nil {
		return err
	}
	if analyzeVerbose {
		observability.NewPrinter(os.Stdout).PrintJobAnalysis(result)
	}

	path, err := store.Save(artifacts.TypeJobAnalysis, result)
	if err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", path)
	return nil
}
