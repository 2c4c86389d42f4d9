package ports

import "context"

// CompletionClient abstracts the external text-completion endpoint. Complete
// sends a single prompt and returns the first candidate's text verbatim.
// Failures, including timeouts and replies without candidates, wrap
// domain.ErrUpstream.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
