package parsing

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-modifier/internal/chunker"
	"github.com/jonathan/resume-modifier/internal/llm"
	"github.com/jonathan/resume-modifier/internal/types"
)

// ParseJobDescription extracts a structured job description from text.
// Job postings are short enough that only the first chunk is parsed; when the
// text overflows one chunk the remainder is discarded with a warning rather
// than merged.
func ParseJobDescription(ctx context.Context, client llm.Client, text string, opts Options) (*types.JobDescription, error) {
	opts = opts.withDefaults()

	ck, err := chunker.New(opts.ChunkSize, opts.ChunkOverlap)
	if err != nil {
		return nil, err
	}
	chunks := ck.Split(text)
	if len(chunks) == 0 {
		return nil, &NoUsableDataError{Document: "job description"}
	}

	if len(chunks) > 1 {
		fmt.Fprintf(os.Stderr, "Warning: job description exceeds one chunk (%d chunks); parsing the first %d characters only\n", len(chunks), len(chunks[0].Text))
	}

	record, err := ExtractJobChunk(ctx, client, chunks[0].Text)
	if err != nil {
		return nil, err
	}
	return record, nil
}
