package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-modifier/internal/artifacts"
	"github.com/jonathan/resume-modifier/internal/config"
	"github.com/jonathan/resume-modifier/internal/ingestion"
	"github.com/jonathan/resume-modifier/internal/llm"
	"github.com/jonathan/resume-modifier/internal/observability"
	"github.com/jonathan/resume-modifier/internal/parsing"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume and/or job description PDF into structured JSON",
	Long:  "Parse a resume PDF and/or a job description PDF into structured JSON artifacts saved under the artifacts directory.",
	RunE:  runParse,
}

var (
	parseResumeFile    string
	parseJobFile       string
	parseArtifactsDir  string
	parseChunkSize     int
	parseChunkOverlap  int
	parseMaxConcurrent int
	parseAPIKey        string
	parseVerbose       bool
)

func init() {
	parseCmd.Flags().StringVar(&parseResumeFile, "resume", "", "Path to resume PDF")
	parseCmd.Flags().StringVar(&parseJobFile, "job", "", "Path to job description PDF")
	parseCmd.Flags().StringVar(&parseArtifactsDir, "artifacts-dir", "", "Directory for saved JSON artifacts (default \"saved_details\")")
	parseCmd.Flags().IntVar(&parseChunkSize, "chunk-size", 0, "Characters per extraction chunk (default 2000)")
	parseCmd.Flags().IntVar(&parseChunkOverlap, "chunk-overlap", 0, "Characters shared between neighboring chunks (default 200)")
	parseCmd.Flags().IntVar(&parseMaxConcurrent, "max-concurrent", 0, "Chunk extractions in flight at once (default 4)")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print parsed records")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	defaults, err := fileConfig()
	if err != nil {
		return err
	}
	flags := config.Config{
		Resume:        parseResumeFile,
		Job:           parseJobFile,
		ArtifactsDir:  parseArtifactsDir,
		ChunkSize:     parseChunkSize,
		ChunkOverlap:  parseChunkOverlap,
		MaxConcurrent: parseMaxConcurrent,
		APIKey:        parseAPIKey,
		Verbose:       parseVerbose,
	}
	cfg := flags.MergeWithDefaults(defaults)

	if cfg.Resume == "" && cfg.Job == "" {
		return fmt.Errorf("at least one of --resume or --job is required")
	}

	apiKey, err := resolveAPIKey(cfg.APIKey)
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	store := artifacts.NewStore(cfg.ArtifactsDir)
	printer := observability.NewPrinter(os.Stdout)
	opts := parsing.Options{
		ChunkSize:     cfg.ChunkSize,
		ChunkOverlap:  cfg.ChunkOverlap,
		MaxConcurrent: cfg.MaxConcurrent,
	}

	return parseDocuments(ctx, client, store, printer, cfg, opts)
}

// parseDocuments processes each requested document on its own. A failure in
// one document is reported and does not stop the other; the combined error
// is returned once both have been attempted.
func parseDocuments(ctx context.Context, client llm.Client, store *artifacts.Store, printer *observability.Printer, cfg config.Config, opts parsing.Options) error {
	var errs []error

	if cfg.Resume != "" {
		if err := parseResumeDocument(ctx, client, store, printer, cfg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: resume processing failed: %v\n", err)
			errs = append(errs, fmt.Errorf("resume: %w", err))
		}
	}

	if cfg.Job != "" {
		if err := parseJobDocument(ctx, client, store, printer, cfg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: job description processing failed: %v\n", err)
			errs = append(errs, fmt.Errorf("job description: %w", err))
		}
	}

	return errors.Join(errs...)
}

func parseResumeDocument(ctx context.Context, client llm.Client, store *artifacts.Store, printer *observability.Printer, cfg config.Config, opts parsing.Options) error {
	fmt.Printf("Parsing resume: %s\n", cfg.Resume)
	text, err := ingestion.ExtractPDFFile(cfg.Resume)
	if err != nil {
		return err
	}
	record, err := parsing.ParseResume(ctx, client, text, opts)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		printer.PrintResume(record)
	}
	path, err := store.Save(artifacts.TypeResume, record)
	if err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", path)
	return nil
}

func parseJobDocument(ctx context.Context, client llm.Client, store *artifacts.Store, printer *observability.Printer, cfg config.Config, opts parsing.Options) error {
	fmt.Printf("Parsing job description: %s\n", cfg.Job)
	text, err := ingestion.ExtractPDFFile(cfg.Job)
	if err != nil {
		return err
	}
	record, err := parsing.ParseJobDescription(ctx, client, text, opts)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		printer.PrintJobDescription(record)
	}
	path, err := store.Save(artifacts.TypeJobDescription, record)
	if err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", path)
	return nil
}
