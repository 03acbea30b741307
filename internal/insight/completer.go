// Package insight builds health prompts, sends them to a text completion
// backend and turns the replies into journal insights.
package insight

import "context"

// Completer sends one prompt and returns the first candidate's text.
// Implementations return *GenerationError on any failure.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Generation parameters every backend sends.
const (
	Temperature     = 0.7
	TopK            = 40
	TopP            = 0.95
	MaxOutputTokens = 2048

	SafetyCategory  = "HARM_CATEGORY_MEDICAL"
	SafetyThreshold = "BLOCK_MEDIUM_AND_ABOVE"
)
