package parsing

import "fmt"

// APICallError represents a failure of the remote LLM call for one chunk.
// It aborts that chunk's extraction only.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// SchemaViolationError represents an LLM response that could not be parsed
// into the target schema (malformed JSON or missing required fields).
// It aborts that chunk's extraction only and is never retried.
type SchemaViolationError struct {
	Message string
	Cause   error
}

func (e *SchemaViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema violation: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("schema violation: %s", e.Message)
}

func (e *SchemaViolationError) Unwrap() error {
	return e.Cause
}

// NoUsableDataError means every chunk of a document failed extraction, so no
// record can be produced. Downstream stages must not run for this document.
type NoUsableDataError struct {
	Document    string
	ChunkErrors []error
}

func (e *NoUsableDataError) Error() string {
	return fmt.Sprintf("no usable data extracted from %s: all %d chunks failed", e.Document, len(e.ChunkErrors))
}
