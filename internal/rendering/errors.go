package rendering

import "fmt"

// RenderError represents a failure to produce the output resume document.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rendering failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("rendering failed: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
