package llm

import "context"

// CompletionRequest is a single-turn completion call.
type CompletionRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// ChatClient issues chat completions against an OpenAI-compatible endpoint.
type ChatClient interface {
	// Complete sends one user message and returns the trimmed content of
	// the first choice.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
