package llm

import "context"

// LLM sends a single prompt to a text generation service and returns its text.
type LLM interface {
	Chat(ctx context.Context, prompt string) (string, error)
	Name() string
	Model() string
}

// Generation parameters shared by every provider.
const (
	temperature     = 0.7
	topK            = 40
	topP            = 0.95
	maxOutputTokens = 2048
)
