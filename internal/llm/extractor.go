// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "Resume", "JobDescription")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", nested object shape
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
	Default     string // Value to emit when the information is absent (default policy)
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
// The prompt spells out the default-value policy per field so missing
// information comes back as a known placeholder instead of being invented.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Default-value policy
	var defaults []string
	for _, field := range schema.Fields {
		if field.Default != "" {
			defaults = append(defaults, fmt.Sprintf("- If %s is not present in the text, use %s.\n", field.Name, field.Default))
		}
	}
	if len(defaults) > 0 {
		sb.WriteString("Missing-value policy:\n")
		for _, d := range defaults {
			sb.WriteString(d)
		}
		sb.WriteString("- Use empty lists [] for list fields with no entries, and null for other optional fields.\n\n")
	}

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// ResumeSchema returns the extraction schema for resume text. A chunk of a
// long resume may legitimately fill only a subset of the fields.
func ResumeSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "Resume",
		Description: `You are an expert resume parser. COPY TEXT VERBATIM - do not paraphrase, summarize, or reword.
Your task is to extract structured information from a section of a resume.
The section may cover only part of the document; extract what is present and leave the rest at its default.
Goal: Extract personal info, education, work experience, projects, and skills.`,
		Fields: []SchemaField{
			{
				Name:        "personal_info",
				Type:        "{\"name\": \"string\", \"email\": \"string\", \"phone\": \"string\", \"location\": \"string\", \"linkedin\": \"string\"}",
				Description: "Candidate contact details; name is required, the rest may be null",
				Required:    true,
			},
			{
				Name:        "education",
				Type:        "[{\"degree\": \"string\", \"institution\": \"string\", \"graduation_year\": \"string\", \"gpa\": \"string\", \"major\": \"string\"}]",
				Description: "Educational qualifications; degree is required per entry",
				Required:    false,
				Default:     "\"Not specified\" for institution",
			},
			{
				Name:        "experience",
				Type:        "[{\"company\": \"string\", \"position\": \"string\", \"duration\": \"string\", \"description\": [\"string\"]}]",
				Description: "Work experience; company and position required, description is a list of responsibility bullets",
				Required:    false,
				Default:     "\"Not specified\" for duration",
			},
			{
				Name:        "projects",
				Type:        "[{\"name\": \"string\", \"description\": \"string\", \"duration\": \"string\", \"role\": \"string\", \"url\": \"string\", \"technologies\": [\"string\"], \"achievements\": [\"string\"]}]",
				Description: "Projects; name and description required per entry",
				Required:    false,
			},
			{
				Name:        "skills",
				Type:        "[\"string\"]",
				Description: "Technical and soft skills mentioned anywhere in the section",
				Required:    false,
			},
		},
	}
}

// JobDescriptionSchema returns the extraction schema for job posting text.
func JobDescriptionSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "JobDescription",
		Description: `You are an expert job posting parser. COPY TEXT VERBATIM - do not paraphrase, summarize, or reword.
Your task is to extract and categorize information from a raw job description.
EXCLUDE: Application form fields, EEO statements, legal disclaimers.`,
		Fields: []SchemaField{
			{
				Name:        "title",
				Type:        "\"string\"",
				Description: "Job title",
				Required:    true,
			},
			{
				Name:        "company",
				Type:        "\"string\"",
				Description: "Company name",
				Required:    true,
			},
			{
				Name:        "location",
				Type:        "\"string\"",
				Description: "Job location, null if not stated",
				Required:    false,
			},
			{
				Name:        "requirements",
				Type:        "[\"string\"]",
				Description: "Technical requirements and skills needed - copy each requirement verbatim",
				Required:    false,
			},
			{
				Name:        "responsibilities",
				Type:        "[\"string\"]",
				Description: "Job duties, day-to-day work - copy each responsibility verbatim",
				Required:    false,
			},
			{
				Name:        "qualifications",
				Type:        "[\"string\"]",
				Description: "Required qualifications (education, certifications, experience)",
				Required:    false,
			},
			{
				Name:        "preferred_skills",
				Type:        "[\"string\"]",
				Description: "Preferred or nice-to-have skills - copy verbatim",
				Required:    false,
			},
		},
	}
}
