package llm

import "context"

// Client is an interface for communicating with the text-completion backend.
type Client interface {
	// Complete sends a prompt to the backend and returns the raw completion
	// text. Implementations make exactly one attempt; retry policy belongs
	// to the caller.
	Complete(ctx context.Context, prompt string) (string, error)
}
