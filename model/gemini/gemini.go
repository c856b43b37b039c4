// Package gemini provides a model.Generator backed by the Google Gemini API.
// The adapter retries an ordered list of model identifiers and returns the
// first non-empty result; callers only ever see text or a decline.
package gemini

import (
	"context"
	"sync"

	"google.golang.org/genai"

	"github.com/morpheuslabs/sleepmesh/logging"
	"github.com/morpheuslabs/sleepmesh/model"
)

// DefaultModels is the ordered identifier list tried on each call.
var DefaultModels = []string{"gemini-2.5-flash", "gemini-1.5-flash"}

// Options configures the Gemini adapter.
type Options struct {
	// APIKey authenticates against the Gemini API. When empty the adapter
	// declines every call instead of erroring.
	APIKey string
	// Models overrides the ordered identifier fallback list.
	Models []string
	// Temperature for generation.
	Temperature float32
	// Logger receives call diagnostics.
	Logger logging.Logger
}

// Generator wraps the Google GenAI client behind the model.Generator
// interface. The underlying client is created lazily on first use because
// client construction requires a context.
type Generator struct {
	opts   Options
	mu     sync.Mutex
	client *genai.Client
}

// NewGenerator builds a Gemini-backed generator.
func NewGenerator(optFns ...func(o *Options)) *Generator {
	opts := Options{
		Models:      DefaultModels,
		Temperature: 0.7,
		Logger:      logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if len(opts.Models) == 0 {
		opts.Models = DefaultModels
	}
	return &Generator{opts: opts}
}

// Ready reports whether the adapter has credentials to attempt a call.
func (g *Generator) Ready() bool { return g.opts.APIKey != "" }

// GenerateText implements model.Generator. Any failure is logged and
// reported as a decline, never as an error.
func (g *Generator) GenerateText(ctx context.Context, prompt string) (string, bool) {
	if !g.Ready() {
		g.opts.Logger.Debug("gemini api key not configured, skipping call")
		return "", false
	}
	client, err := g.clientFor(ctx)
	if err != nil {
		g.opts.Logger.Warn("gemini client init failed", "error", err)
		return "", false
	}

	config := &genai.GenerateContentConfig{Temperature: genai.Ptr(g.opts.Temperature)}
	contents := genai.Text(prompt)

	for _, id := range g.opts.Models {
		result, err := client.Models.GenerateContent(ctx, id, contents, config)
		if err != nil {
			g.opts.Logger.Warn("gemini call failed", "model", id, "error", err)
			continue
		}
		if result == nil {
			continue
		}
		if text := result.Text(); text != "" {
			return text, true
		}
	}
	return "", false
}

// Info implements model.Generator.
func (g *Generator) Info() model.Info {
	name := ""
	if len(g.opts.Models) > 0 {
		name = g.opts.Models[0]
	}
	return model.Info{Name: name, Provider: "gemini"}
}

func (g *Generator) clientFor(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil {
		return g.client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	g.client = client
	return client, nil
}
