package generate

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/Coolixy/FloatChat/pkg/ollama"
)

const ollamaTimeout = 30 * time.Second

// OllamaGenerator answers prompts through a local Ollama server.
type OllamaGenerator struct {
	client ollama.Client
	model  string
}

// NewOllama wraps an Ollama client. An empty model uses the client's default.
func NewOllama(client ollama.Client, model string) *OllamaGenerator {
	return &OllamaGenerator{client: client, model: model}
}

func (g *OllamaGenerator) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, ollamaTimeout)
	defer cancel()

	resp, err := g.client.Generate(ctx, ollama.GenerateRequest{
		Model:  g.model,
		Prompt: prompt,
		Stream: false,
		Options: &ollama.Options{
			Temperature: opts.Temperature,
			TopP:        opts.TopP,
			NumPredict:  opts.MaxTokens,
		},
	})
	if err != nil {
		return "", eris.Wrap(err, "generate: ollama completion")
	}

	return strings.TrimSpace(resp.Response), nil
}

// Probe reports whether the server answers the tags endpoint.
func (g *OllamaGenerator) Probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := g.client.Tags(ctx)
	return err == nil
}
