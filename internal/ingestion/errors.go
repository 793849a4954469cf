package ingestion

import "fmt"

// ExtractError represents a failure to read or extract text from a source
// document. It aborts processing of that document only.
type ExtractError struct {
	Message string
	Cause   error
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}
