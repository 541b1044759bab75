package generate

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/Coolixy/FloatChat/pkg/anthropic"
)

// AnthropicGenerator answers prompts through the Anthropic Messages API.
type AnthropicGenerator struct {
	client anthropic.Client
	model  string
}

// NewAnthropic wraps an Anthropic client.
func NewAnthropic(client anthropic.Client, model string) *AnthropicGenerator {
	return &AnthropicGenerator{client: client, model: model}
}

func (g *AnthropicGenerator) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	resp, err := g.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       g.model,
		MaxTokens:   int64(opts.MaxTokens),
		Messages:    []anthropic.Message{{Role: "user", Content: prompt}},
		Temperature: &opts.Temperature,
		TopP:        &opts.TopP,
	})
	if err != nil {
		return "", eris.Wrap(err, "generate: anthropic completion")
	}

	return strings.TrimSpace(resp.Text()), nil
}

// Probe reports whether the client is configured. The Messages API has no
// cheap liveness endpoint, so a non-nil client is taken as available.
func (g *AnthropicGenerator) Probe(ctx context.Context) bool {
	return g.client != nil
}
