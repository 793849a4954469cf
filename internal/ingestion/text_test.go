package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "crlf normalized",
			input:    "line one\r\nline two\rline three",
			expected: "line one\nline two\nline three",
		},
		{
			name:     "space runs collapsed",
			input:    "too   many\tspaces  here",
			expected: "too many spaces here",
		},
		{
			name:     "non-breaking spaces collapsed",
			input:    "hello  world",
			expected: "hello world",
		},
		{
			name:     "lines trimmed",
			input:    "  padded line  \n  another  ",
			expected: "padded line\nanother",
		},
		{
			name:     "excess blank lines collapsed",
			input:    "first\n\n\n\n\nsecond",
			expected: "first\n\nsecond",
		},
		{
			name:     "paragraph break preserved",
			input:    "first paragraph\n\nsecond paragraph",
			expected: "first paragraph\n\nsecond paragraph",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestExtractPDFFile_RejectsNonPDF(t *testing.T) {
	_, err := ExtractPDFFile("resume.docx")

	var extractErr *ExtractError
	assert.ErrorAs(t, err, &extractErr)
	assert.Contains(t, err.Error(), "only PDF input is supported")
}

func TestExtractPDFText_GarbageInput(t *testing.T) {
	_, err := ExtractPDFText([]byte("this is not a pdf"))

	var extractErr *ExtractError
	assert.ErrorAs(t, err, &extractErr)
}
