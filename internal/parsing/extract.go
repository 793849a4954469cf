// Package parsing turns raw document text into validated structured records
// via LLM extraction, with per-chunk failure isolation and deterministic
// merging of partial results.
package parsing

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	"github.com/jonathan/resume-modifier/internal/llm"
	"github.com/jonathan/resume-modifier/internal/schemas"
	"github.com/jonathan/resume-modifier/internal/types"
)

const (
	maxRetries     = 2
	baseRetryDelay = 500 * time.Millisecond
)

// ExtractResumeChunk extracts a partial resume record from one chunk of text.
// Remote failures surface as APICallError, malformed or invalid responses as
// SchemaViolationError. A chunk covering only part of the document is normal;
// absent sections come back empty.
func ExtractResumeChunk(ctx context.Context, client llm.Client, chunkText string) (*types.ResumeData, error) {
	prompt := llm.BuildExtractionPrompt(llm.ResumeSchema(), chunkText)

	raw, err := generateWithRetry(ctx, client, prompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateResumeJSON(raw); err != nil {
		return nil, &SchemaViolationError{Message: "resume response failed schema validation", Cause: err}
	}

	var record types.ResumeData
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, &SchemaViolationError{Message: "failed to parse resume response as JSON", Cause: err}
	}

	record.ApplyDefaults()
	if err := record.Validate(); err != nil {
		return nil, &SchemaViolationError{Message: "resume record missing required fields", Cause: err}
	}
	return &record, nil
}

// ExtractJobChunk extracts a job description record from one chunk of text.
func ExtractJobChunk(ctx context.Context, client llm.Client, chunkText string) (*types.JobDescription, error) {
	prompt := llm.BuildExtractionPrompt(llm.JobDescriptionSchema(), chunkText)

	raw, err := generateWithRetry(ctx, client, prompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateJobDescriptionJSON(raw); err != nil {
		return nil, &SchemaViolationError{Message: "job description response failed schema validation", Cause: err}
	}

	var record types.JobDescription
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, &SchemaViolationError{Message: "failed to parse job description response as JSON", Cause: err}
	}

	record.ApplyDefaults()
	if err := record.Validate(); err != nil {
		return nil, &SchemaViolationError{Message: "job description missing required fields", Cause: err}
	}
	return &record, nil
}

// generateWithRetry calls the LLM with bounded retry on transient remote
// failures. Schema problems are detected after this call and never retried;
// only errors that look like rate limiting or connectivity trouble are.
func generateWithRetry(ctx context.Context, client llm.Client, prompt string, tier llm.ModelTier) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := baseRetryDelay * time.Duration(1<<(attempt-1))
			delay += time.Duration(rand.Int63n(int64(delay) / 2))
			select {
			case <-ctx.Done():
				return "", &APICallError{Message: "extraction cancelled", Cause: ctx.Err()}
			case <-time.After(delay):
			}
		}

		raw, err := client.GenerateJSON(ctx, prompt, tier)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !isRetryableError(err) {
			break
		}
	}
	return "", &APICallError{Message: "LLM request failed", Cause: lastErr}
}

// isRetryableError reports whether a remote error is worth retrying
// (rate limits, timeouts, transient server or connectivity errors).
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	retryable := []string{
		"rate limit",
		"quota",
		"timeout",
		"deadline exceeded",
		"connection",
		"temporarily unavailable",
		"429",
		"500",
		"502",
		"503",
	}
	for _, keyword := range retryable {
		if strings.Contains(msg, keyword) {
			return true
		}
	}
	return false
}
