package ingestion

import (
	"regexp"
	"strings"
)

var spaceRun = regexp.MustCompile(`[ \t\x{00A0}]+`)

// CleanText cleans and normalizes extracted text while preserving structure.
// Line breaks are kept (they carry section boundaries the chunker relies on);
// runs of spaces and excess blank lines are collapsed.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = spaceRun.ReplaceAllString(line, " ")
		cleaned = append(cleaned, strings.TrimSpace(line))
	}

	result := strings.Join(cleaned, "\n")
	result = removeExcessiveBlankLines(result)
	return strings.TrimSpace(result)
}

// removeExcessiveBlankLines collapses runs of blank lines down to one blank
// line (two consecutive newlines), keeping paragraph breaks visible.
func removeExcessiveBlankLines(content string) string {
	for strings.Contains(content, "\n\n\n") {
		content = strings.ReplaceAll(content, "\n\n\n", "\n\n")
	}
	return content
}
