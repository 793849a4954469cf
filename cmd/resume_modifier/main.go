// Package main provides the resume modifier CLI: parse a resume and job
// description, generate job-tailored projects and skills, and render a
// modified resume PDF.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-modifier/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "resume_modifier",
	Short: "Tailor a resume to a job description",
	Long:  "Resume Modifier parses a resume and a job description PDF, generates job-tailored projects and skills with an LLM, and renders a modified resume PDF.",
}

var configFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// fileConfig loads the --config file when one was given; flag values merge
// over it, so the file acts as a set of defaults.
func fileConfig() (config.Config, error) {
	if configFile == "" {
		return config.Config{}, nil
	}
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

// resolveAPIKey returns the explicit key if set, falling back to the
// GEMINI_API_KEY environment variable.
func resolveAPIKey(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
}
