// Package schemas validates structured data artifacts against their JSON
// Schemas. The schemas are embedded so validation works regardless of the
// working directory the CLI runs from.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFS embed.FS

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself,
// as opposed to the document failing validation.
type SchemaLoadError struct {
	Name    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Name, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateResumeJSON validates a JSON document against the resume schema.
func ValidateResumeJSON(jsonContent string) error {
	return validateAgainst("resume.schema.json", jsonContent)
}

// ValidateJobDescriptionJSON validates a JSON document against the job
// description schema.
func ValidateJobDescriptionJSON(jsonContent string) error {
	return validateAgainst("job_description.schema.json", jsonContent)
}

// ValidateJobAnalysisJSON validates a JSON document against the job analysis
// schema.
func ValidateJobAnalysisJSON(jsonContent string) error {
	return validateAgainst("job_analysis.schema.json", jsonContent)
}

// ValidateProjectSuggestionsJSON validates a JSON document against the
// project suggestions schema.
func ValidateProjectSuggestionsJSON(jsonContent string) error {
	return validateAgainst("project_suggestions.schema.json", jsonContent)
}

func validateAgainst(schemaName, jsonContent string) error {
	schemaBytes, err := schemaFS.ReadFile(schemaName)
	if err != nil {
		return &SchemaLoadError{Name: schemaName, Message: "schema not embedded", Cause: err}
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Name: schemaName, Message: "schema validation failed during load", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
