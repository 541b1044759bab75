// Package generate abstracts the LLM backends that turn an assembled
// prompt into a conversational answer.
package generate

import "context"

// Options tunes a single completion.
type Options struct {
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// DefaultOptions keeps the answers factual and short.
var DefaultOptions = Options{
	Temperature: 0.2,
	TopP:        0.8,
	MaxTokens:   300,
}

// Generator produces an answer for a prompt. Implementations return an
// error when the backend is unreachable so callers can fall back to
// scripted answers.
type Generator interface {
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
	Probe(ctx context.Context) bool
}
