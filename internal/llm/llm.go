package llm

import "context"

// Client abstracts completion providers for job-title recommendation.
// Implementations return the raw assistant reply; callers own the parsing.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
