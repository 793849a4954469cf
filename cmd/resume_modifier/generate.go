package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-modifier/internal/artifacts"
	"github.com/jonathan/resume-modifier/internal/rendering"
	"github.com/jonathan/resume-modifier/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the modified resume PDF from saved artifacts",
	Long:  "Combine the latest resume and job analysis artifacts and render the modified resume PDF. Runs entirely offline; no LLM calls are made.",
	RunE:  runGenerate,
}

var (
	generateArtifactsDir string
	generateOutputDir    string
)

func init() {
	generateCmd.Flags().StringVar(&generateArtifactsDir, "artifacts-dir", "", "Directory for saved JSON artifacts (default \"saved_details\")")
	generateCmd.Flags().StringVar(&generateOutputDir, "output-dir", "", "Directory for the generated PDF (default \"modified_resume\")")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	store := artifacts.NewStore(generateArtifactsDir)

	var resume types.ResumeData
	resumePath, err := store.Latest(artifacts.TypeResume, &resume)
	if err != nil {
		var notFound *artifacts.NotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("no resume artifact found; run 'resume_modifier parse --resume <file>' first")
		}
		return err
	}
	fmt.Printf("Loading resume data from: %s\n", resumePath)

	var analysis types.JobAnalysis
	analysisPath, err := store.Latest(artifacts.TypeJobAnalysis, &analysis)
	if err != nil {
		var notFound *artifacts.NotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("no job analysis artifact found; run 'resume_modifier analyze-job' first")
		}
		return err
	}
	fmt.Printf("Loading job analysis data from: %s\n", analysisPath)

	fmt.Printf("Combining resume data with job-specific projects and skills...\n")
	combined := rendering.CombineResumeData(&resume, &analysis)

	fmt.Printf("Generating PDF resume...\n")
	path, err := rendering.WritePDF(combined, generateOutputDir)
	if err != nil {
		return err
	}
	fmt.Printf("Resume saved to %s\n", path)
	return nil
}
