// Package ingestion reads source documents and produces cleaned plain text
// for downstream parsing.
package ingestion

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractPDFText extracts best-effort plain text from PDF bytes.
// Pages that cannot be read are skipped rather than failing the document.
func ExtractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractError{Message: "failed to open PDF", Cause: err}
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	result := CleanText(sb.String())
	if result == "" {
		return "", &ExtractError{Message: "no extractable text in PDF"}
	}
	return result, nil
}

// ExtractPDFFile reads a PDF from disk and extracts its text.
func ExtractPDFFile(path string) (string, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".pdf" {
		return "", &ExtractError{Message: fmt.Sprintf("unsupported file format %q: only PDF input is supported", ext)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractError{Message: fmt.Sprintf("failed to read file %s", path), Cause: err}
	}
	return ExtractPDFText(data)
}
