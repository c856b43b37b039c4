// Package openai provides a model.Generator backed by the OpenAI Chat
// Completions API. Failures are reported as declines so callers can fall
// back to deterministic text.
package openai

import (
	"context"

	"github.com/openai/openai-go"

	"github.com/morpheuslabs/sleepmesh/logging"
	"github.com/morpheuslabs/sleepmesh/model"
)

// Options configure the OpenAI adapter. Fields mirror a minimal subset of
// Chat Completion parameters; extend via functional options without breaking
// callers.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
	Logger              logging.Logger
}

// Generator wraps the OpenAI Chat Completions API behind model.Generator.
type Generator struct {
	client *openai.Client
	opts   Options
}

// NewGenerator creates an OpenAI generator using the default client, which
// reads credentials from the environment.
func NewGenerator(optFns ...func(o *Options)) *Generator {
	client := openai.NewClient()
	return NewGeneratorFromClient(&client, optFns...)
}

// NewGeneratorFromClient creates an OpenAI generator from an existing client.
func NewGeneratorFromClient(client *openai.Client, optFns ...func(o *Options)) *Generator {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 1024,
		Logger:              logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Generator{client: client, opts: opts}
}

// GenerateText implements model.Generator.
func (g *Generator) GenerateText(ctx context.Context, prompt string) (string, bool) {
	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.opts.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature:         openai.Float(g.opts.Temperature),
		MaxCompletionTokens: openai.Int(g.opts.MaxCompletionTokens),
	})
	if err != nil {
		g.opts.Logger.Warn("openai call failed", "model", g.opts.Model, "error", err)
		return "", false
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", false
	}
	return completion.Choices[0].Message.Content, true
}

// Info implements model.Generator.
func (g *Generator) Info() model.Info {
	return model.Info{Name: g.opts.Model, Provider: "openai"}
}
