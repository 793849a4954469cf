// Package chunker splits long document text into overlapping windows sized
// for independent LLM extraction.
package chunker

import (
	"fmt"
	"strings"
)

// Chunk is a bounded-size, possibly overlapping substring of a source
// document. Index is the chunk's position in document order; Start and End
// are the character offsets of Text within the original input.
type Chunk struct {
	Text  string
	Index int
	Start int
	End   int
}

// Chunker produces overlapping chunks of at most Size characters. Each chunk
// after the first begins Overlap characters before the previous chunk's end,
// so context spanning a cut point appears in both neighbors.
type Chunker struct {
	Size    int
	Overlap int
}

// Default chunking parameters, matching the sizing the extraction prompts
// were tuned for.
const (
	DefaultSize    = 2000
	DefaultOverlap = 200
)

// New returns a Chunker with the given window size and overlap.
// Overlap must be non-negative and strictly smaller than size.
func New(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("overlap must satisfy 0 <= overlap < size, got overlap=%d size=%d", overlap, size)
	}
	return &Chunker{Size: size, Overlap: overlap}, nil
}

// Split breaks text into ordered chunks covering every character of the
// input. Cut points prefer natural text boundaries (paragraph break, then
// sentence end, then whitespace) within the window; if none exists the window
// is cut at the size limit.
func (c *Chunker) Split(text string) []Chunk {
	if text == "" {
		return nil
	}
	if len(text) <= c.Size {
		return []Chunk{{Text: text, Index: 0, Start: 0, End: len(text)}}
	}

	var chunks []Chunk
	start := 0
	for start < len(text) {
		end := start + c.Size
		if end >= len(text) {
			end = len(text)
		} else {
			end = splitPoint(text, start, end)
		}

		chunks = append(chunks, Chunk{
			Text:  text[start:end],
			Index: len(chunks),
			Start: start,
			End:   end,
		})

		if end == len(text) {
			break
		}

		next := end - c.Overlap
		// Guard against a boundary cut shrinking the window below the
		// overlap, which would stall or rewind the scan.
		if next <= start {
			next = start + 1
		}
		start = next
	}
	return chunks
}

// splitPoint picks the best cut position in text[start:limit], searching the
// tail of the window so chunks stay close to the size bound.
func splitPoint(text string, start, limit int) int {
	window := text[start:limit]

	// Search only the final quarter of the window for a boundary; cutting
	// much earlier would waste window capacity.
	floor := len(window) * 3 / 4

	if i := strings.LastIndex(window, "\n\n"); i >= floor {
		return start + i + 2
	}
	for _, sep := range []string{". ", ".\n", "! ", "? "} {
		if i := strings.LastIndex(window, sep); i >= floor {
			return start + i + len(sep)
		}
	}
	if i := strings.LastIndexAny(window, " \n\t"); i >= floor {
		return start + i + 1
	}
	return limit
}
