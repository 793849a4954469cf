// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-modifier/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintResume(resume *types.ResumeData) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", resume.PersonalInfo.Name))
	if resume.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", resume.PersonalInfo.Email))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Education entries:  %d\n", len(resume.Education)))
	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(resume.Experience)))
	sb.WriteString(fmt.Sprintf("Projects:           %d\n", len(resume.Projects)))

	if len(resume.Experience) > 0 {
		sb.WriteString("\nExperience:\n")
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := resume.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s @ %s\n", exp.Position, exp.Company))
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
	}

	if len(resume.Skills) > 0 {
		skills := strings.Join(resume.Skills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nSkills: %s\n", skills))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobDescription outputs a human-readable summary of the parsed job posting.
func (p *Printer) PrintJobDescription(job *types.JobDescription) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	if job.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	}

	if len(job.Requirements) > 0 {
		sb.WriteString("\nRequirements:\n")
		count := min(len(job.Requirements), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.Requirements[i]))
		}
		if len(job.Requirements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.Requirements)-maxItemsToShow))
		}
	}

	if len(job.PreferredSkills) > 0 {
		sb.WriteString("\nPreferred Skills:\n")
		count := min(len(job.PreferredSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.PreferredSkills[i]))
		}
		if len(job.PreferredSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.PreferredSkills)-3))
		}
	}

	p.printBox("PARSED JOB DESCRIPTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the generated project suggestions.
func (p *Printer) PrintSuggestions(suggestions *types.ProjectSuggestions) {
	if suggestions == nil || len(suggestions.Projects) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated %d projects:\n\n", len(suggestions.Projects)))

	count := min(len(suggestions.Projects), maxItemsToShow)
	for i := 0; i < count; i++ {
		proj := suggestions.Projects[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, proj.Name))
		if len(proj.Technologies) > 0 {
			tech := strings.Join(proj.Technologies, ", ")
			if len(tech) > 40 {
				tech = tech[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Tech: %s\n", tech))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PROJECT SUGGESTIONS", sb.String())
}

// PrintJobAnalysis outputs the job-tailored analysis summary.
func (p *Printer) PrintJobAnalysis(analysis *types.JobAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tailored projects: %d\n", len(analysis.Projects)))

	groups := []struct {
		label  string
		values []string
	}{
		{"Technical", analysis.Skills.TechnicalSkills},
		{"Tools", analysis.Skills.Tools},
		{"Soft", analysis.Skills.SoftSkills},
		{"Domain", analysis.Skills.DomainKnowledge},
	}
	for _, group := range groups {
		if len(group.values) == 0 {
			continue
		}
		values := strings.Join(group.values, ", ")
		if len(values) > 40 {
			values = values[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-10s %s\n", group.label+":", values))
	}

	p.printBox("JOB ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}
