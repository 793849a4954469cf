package parsing

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-modifier/internal/chunker"
	"github.com/jonathan/resume-modifier/internal/llm"
	"github.com/jonathan/resume-modifier/internal/types"
)

// DefaultMaxConcurrent bounds the number of chunk extractions in flight.
const DefaultMaxConcurrent = 4

// Options controls chunking and extraction concurrency.
type Options struct {
	ChunkSize     int
	ChunkOverlap  int
	MaxConcurrent int
}

func (o Options) withDefaults() Options {
	if o.ChunkSize <= 0 {
		o.ChunkSize = chunker.DefaultSize
	}
	if o.ChunkOverlap < 0 {
		o.ChunkOverlap = chunker.DefaultOverlap
	}
	if o.MaxConcurrent <= 0 {
		o.MaxConcurrent = DefaultMaxConcurrent
	}
	return o
}

// ParseResume splits resume text into overlapping chunks, extracts a partial
// record from each chunk concurrently, and merges the partials in chunk order.
// A chunk whose extraction fails is dropped with a warning; the remaining
// chunks still produce a record. Only when every chunk fails (or the text is
// empty) does the whole parse fail with NoUsableDataError.
func ParseResume(ctx context.Context, client llm.Client, text string, opts Options) (*types.ResumeData, error) {
	opts = opts.withDefaults()

	ck, err := chunker.New(opts.ChunkSize, opts.ChunkOverlap)
	if err != nil {
		return nil, err
	}
	chunks := ck.Split(text)
	if len(chunks) == 0 {
		return nil, &NoUsableDataError{Document: "resume"}
	}

	if len(chunks) > 1 {
		fmt.Printf("  Resume split into %d chunks (size %d, overlap %d)\n", len(chunks), opts.ChunkSize, opts.ChunkOverlap)
	}

	// Results and errors are indexed by chunk position so the merge below
	// folds partials in original document order regardless of completion order.
	results := make([]*types.ResumeData, len(chunks))
	chunkErrs := make([]error, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.MaxConcurrent)
	for _, ch := range chunks {
		g.Go(func() error {
			record, err := ExtractResumeChunk(gctx, client, ch.Text)
			if err != nil {
				chunkErrs[ch.Index] = err
				return nil
			}
			results[ch.Index] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, &APICallError{Message: "resume extraction aborted", Cause: err}
	}

	partials := make([]*types.ResumeData, 0, len(chunks))
	var failures []error
	for i, record := range results {
		if record != nil {
			partials = append(partials, record)
			continue
		}
		failures = append(failures, chunkErrs[i])
		fmt.Fprintf(os.Stderr, "Warning: resume chunk %d/%d failed extraction: %v\n", i+1, len(chunks), chunkErrs[i])
	}

	if len(partials) == 0 {
		return nil, &NoUsableDataError{Document: "resume", ChunkErrors: failures}
	}
	return MergeRecords(partials)
}
