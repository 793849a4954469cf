package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-modifier/internal/types"
)

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.ResumeData{
		PersonalInfo: types.PersonalInfo{Name: "Jane Doe", Email: "jane@example.com"},
		Education:    []types.Education{{Degree: "BSc"}},
		Experience: []types.Experience{
			{Company: "Acme", Position: "Engineer"},
		},
		Skills: []string{"Go", "SQL"},
	}

	p.PrintResume(resume)
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Engineer @ Acme")
	assert.Contains(t, output, "Go, SQL")
}

func TestPrintResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintJobDescription(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.JobDescription{
		Title:           "Backend Engineer",
		Company:         "Acme",
		Location:        "Remote",
		Requirements:    []string{"Go", "PostgreSQL"},
		PreferredSkills: []string{"Kubernetes"},
	}

	p.PrintJobDescription(job)
	output := buf.String()

	assert.Contains(t, output, "PARSED JOB DESCRIPTION")
	assert.Contains(t, output, "Backend Engineer")
	assert.Contains(t, output, "Acme")
	assert.Contains(t, output, "Remote")
	assert.Contains(t, output, "Go")
	assert.Contains(t, output, "Kubernetes")
}

func TestPrintJobDescription_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.JobDescription{
		Title:   "Engineer",
		Company: "Acme",
		Requirements: []string{
			"req one", "req two", "req three", "req four", "req five", "req six", "req seven",
		},
	}

	p.PrintJobDescription(job)
	output := buf.String()

	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, "req six")
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	suggestions := &types.ProjectSuggestions{
		Projects: []types.Project{
			{Name: "Widget Pipeline", Description: "d", Technologies: []string{"Go", "Kafka"}},
		},
	}

	p.PrintSuggestions(suggestions)
	output := buf.String()

	assert.Contains(t, output, "PROJECT SUGGESTIONS")
	assert.Contains(t, output, "Widget Pipeline")
	assert.Contains(t, output, "Go, Kafka")
}

func TestPrintJobAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analysis := &types.JobAnalysis{
		Projects: []types.Project{{Name: "Widget", Description: "d"}},
		Skills: types.SkillGroups{
			TechnicalSkills: []string{"Go"},
			Tools:           []string{"Docker"},
		},
	}

	p.PrintJobAnalysis(analysis)
	output := buf.String()

	assert.Contains(t, output, "JOB ANALYSIS")
	assert.Contains(t, output, "Tailored projects: 1")
	assert.Contains(t, output, "Docker")
}
