package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-modifier/internal/config"
	"github.com/jonathan/resume-modifier/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: parse, suggest, analyze, and generate",
	Long:  "Run the full resume modification pipeline end to end: parse the resume and job description, generate project suggestions, build the job analysis, and render the modified resume PDF.",
	RunE:  runRun,
}

var (
	runResumeFile    string
	runJobFile       string
	runArtifactsDir  string
	runOutputDir     string
	runChunkSize     int
	runChunkOverlap  int
	runMaxConcurrent int
	runNumProjects   int
	runAPIKey        string
	runDatabaseURL   string
	runVerbose       bool
)

func init() {
	runCmd.Flags().StringVar(&runResumeFile, "resume", "", "Path to resume PDF (required)")
	runCmd.Flags().StringVar(&runJobFile, "job", "", "Path to job description PDF (required)")
	runCmd.Flags().StringVar(&runArtifactsDir, "artifacts-dir", "", "Directory for saved JSON artifacts (default \"saved_details\")")
	runCmd.Flags().StringVar(&runOutputDir, "output-dir", "", "Directory for the generated PDF (default \"modified_resume\")")
	runCmd.Flags().IntVar(&runChunkSize, "chunk-size", 0, "Characters per extraction chunk (default 2000)")
	runCmd.Flags().IntVar(&runChunkOverlap, "chunk-overlap", 0, "Characters shared between neighboring chunks (default 200)")
	runCmd.Flags().IntVar(&runMaxConcurrent, "max-concurrent", 0, "Chunk extractions in flight at once (default 4)")
	runCmd.Flags().IntVar(&runNumProjects, "num-projects", 0, "Project suggestions to request (default 3)")
	runCmd.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	runCmd.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL URL for mirroring artifacts (optional)")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print intermediate records")

	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, _ []string) error {
	defaults, err := fileConfig()
	if err != nil {
		return err
	}
	flags := config.Config{
		Resume:        runResumeFile,
		Job:           runJobFile,
		ArtifactsDir:  runArtifactsDir,
		OutputDir:     runOutputDir,
		ChunkSize:     runChunkSize,
		ChunkOverlap:  runChunkOverlap,
		MaxConcurrent: runMaxConcurrent,
		NumProjects:   runNumProjects,
		APIKey:        runAPIKey,
		DatabaseURL:   runDatabaseURL,
		Verbose:       runVerbose,
	}
	cfg := flags.MergeWithDefaults(defaults)

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required")
	}

	apiKey, err := resolveAPIKey(cfg.APIKey)
	if err != nil {
		return err
	}

	run, err := pipeline.RunPipeline(context.Background(), pipeline.RunOptions{
		ResumePath:    cfg.Resume,
		JobPath:       cfg.Job,
		ArtifactsDir:  cfg.ArtifactsDir,
		OutputDir:     cfg.OutputDir,
		ChunkSize:     cfg.ChunkSize,
		ChunkOverlap:  cfg.ChunkOverlap,
		MaxConcurrent: cfg.MaxConcurrent,
		NumProjects:   cfg.NumProjects,
		APIKey:        apiKey,
		Verbose:       cfg.Verbose,
		DatabaseURL:   cfg.DatabaseURL,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		fmt.Printf("[VERBOSE] Run %s completed\n", run.ID)
	}
	return nil
}
