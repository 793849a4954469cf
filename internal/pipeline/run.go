// Package pipeline provides the high-level orchestration for the resume
// modification process: parse both source documents, generate job-tailored
// content, and render the final resume.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-modifier/internal/artifacts"
	"github.com/jonathan/resume-modifier/internal/db"
	"github.com/jonathan/resume-modifier/internal/ingestion"
	"github.com/jonathan/resume-modifier/internal/llm"
	"github.com/jonathan/resume-modifier/internal/observability"
	"github.com/jonathan/resume-modifier/internal/parsing"
	"github.com/jonathan/resume-modifier/internal/rendering"
	"github.com/jonathan/resume-modifier/internal/suggestions"
	"github.com/jonathan/resume-modifier/internal/types"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ResumePath    string
	JobPath       string
	ArtifactsDir  string
	OutputDir     string
	ChunkSize     int
	ChunkOverlap  int
	MaxConcurrent int
	NumProjects   int
	APIKey        string
	Verbose       bool
	DatabaseURL   string

	// Client overrides the Gemini client constructed from APIKey.
	// The caller owns its lifecycle; RunPipeline only closes clients
	// it creates itself.
	Client llm.Client
}

// RunContext carries the state of one pipeline run. Stages hand records to
// each other through it directly; the artifact store is written for later
// standalone stage invocations, never re-read within the same run.
type RunContext struct {
	ID          uuid.UUID
	Resume      *types.ResumeData
	Job         *types.JobDescription
	Suggestions *types.ProjectSuggestions
	Analysis    *types.JobAnalysis
	OutputPath  string
}

// NewRunContext returns a RunContext with a fresh run ID.
func NewRunContext() *RunContext {
	return &RunContext{ID: uuid.New()}
}

// RunPipeline orchestrates the full resume modification pipeline
func RunPipeline(ctx context.Context, opts RunOptions) (*RunContext, error) {
	printer := observability.NewPrinter(os.Stdout)
	store := artifacts.NewStore(opts.ArtifactsDir)
	run := NewRunContext()

	// Initialize database connection if configured
	var database *db.DB
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
		} else {
			defer database.Close()
			if err := database.CreateRun(ctx, run.ID, opts.ResumePath, opts.JobPath); err != nil {
				fmt.Printf("Warning: Failed to create database run: %v\n", err)
				database = nil
			} else if opts.Verbose {
				fmt.Printf("[VERBOSE] Created database run: %s\n", run.ID)
			}
		}
	}

	client := opts.Client
	if client == nil {
		created, err := llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer created.Close()
		client = created
	}

	parseOpts := parsing.Options{
		ChunkSize:     opts.ChunkSize,
		ChunkOverlap:  opts.ChunkOverlap,
		MaxConcurrent: opts.MaxConcurrent,
	}

	// =========================================================================
	// PARALLEL EXECUTION: resume branch + job description branch
	// =========================================================================
	fmt.Printf("Step 1/4: Parsing resume and job description...\n")

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		text, err := ingestion.ExtractPDFFile(opts.ResumePath)
		if err != nil {
			return fmt.Errorf("resume ingestion failed: %w", err)
		}
		record, err := parsing.ParseResume(gCtx, client, text, parseOpts)
		if err != nil {
			return fmt.Errorf("resume parsing failed: %w", err)
		}
		run.Resume = record
		return nil
	})

	g.Go(func() error {
		text, err := ingestion.ExtractPDFFile(opts.JobPath)
		if err != nil {
			return fmt.Errorf("job description ingestion failed: %w", err)
		}
		record, err := parsing.ParseJobDescription(gCtx, client, text, parseOpts)
		if err != nil {
			return fmt.Errorf("job description parsing failed: %w", err)
		}
		run.Job = record
		return nil
	})

	if err := g.Wait(); err != nil {
		failRun(ctx, database, run.ID)
		return nil, err
	}

	if opts.Verbose {
		printer.PrintResume(run.Resume)
		printer.PrintJobDescription(run.Job)
	}

	saveArtifact(ctx, store, database, run.ID, artifacts.TypeResume, run.Resume)
	saveArtifact(ctx, store, database, run.ID, artifacts.TypeJobDescription, run.Job)

	// Step 2: Project suggestions from the job description
	fmt.Printf("Step 2/4: Generating project suggestions...\n")
	var err error
	run.Suggestions, err = suggestions.GenerateProjectSuggestions(ctx, client, run.Job, opts.NumProjects)
	if err != nil {
		failRun(ctx, database, run.ID)
		return nil, fmt.Errorf("project suggestion generation failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintSuggestions(run.Suggestions)
	}
	saveArtifact(ctx, store, database, run.ID, artifacts.TypeProjectSuggestions, run.Suggestions)

	// Step 3: Job analysis combining suggestions with the posting's skills
	fmt.Printf("Step 3/4: Analyzing job fit...\n")
	run.Analysis, err = suggestions.AnalyzeJob(ctx, client, run.Job, run.Suggestions)
	if err != nil {
		failRun(ctx, database, run.ID)
		return nil, fmt.Errorf("job analysis failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintJobAnalysis(run.Analysis)
	}
	saveArtifact(ctx, store, database, run.ID, artifacts.TypeJobAnalysis, run.Analysis)

	// Step 4: Render the tailored resume PDF
	fmt.Printf("Step 4/4: Generating PDF resume...\n")
	combined := rendering.CombineResumeData(run.Resume, run.Analysis)
	run.OutputPath, err = rendering.WritePDF(combined, opts.OutputDir)
	if err != nil {
		failRun(ctx, database, run.ID)
		return nil, fmt.Errorf("resume rendering failed: %w", err)
	}

	if database != nil {
		_ = database.CompleteRun(ctx, run.ID, "completed")
	}

	fmt.Printf("Done! Resume saved to %s\n", run.OutputPath)
	return run, nil
}

// saveArtifact writes an artifact to the file store and, when connected,
// mirrors it to the database. Persistence failures are warnings; the pipeline
// still holds the record in memory and can finish the run.
func saveArtifact(ctx context.Context, store *artifacts.Store, database *db.DB, runID uuid.UUID, artifactType string, data any) {
	path, err := store.Save(artifactType, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save %s artifact: %v\n", artifactType, err)
	} else {
		fmt.Printf("  Saved %s\n", path)
	}

	if database != nil {
		if err := database.SaveArtifact(ctx, runID, artifactType, data); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to mirror %s artifact to database: %v\n", artifactType, err)
		}
	}
}

func failRun(ctx context.Context, database *db.DB, runID uuid.UUID) {
	if database != nil {
		_ = database.CompleteRun(ctx, runID, "failed")
	}
}
