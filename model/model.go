// Package model defines the minimal language-model provider contract used by
// the classifier and the domain agents, plus test doubles and an ordered
// fallback chain. Providers never surface errors to callers: any failure
// (missing credentials, timeout, empty reply) is reported as a decline so
// every call site can fall back to canned text.
package model

import "context"

// Generator produces text for a prompt. The boolean result is false when the
// provider declined (failed, timed out, or returned nothing); callers treat a
// decline as a normal, non-fatal outcome.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, bool)

	// Info returns metadata about the provider implementation.
	Info() Info
}

// Info contains metadata about a provider implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "gemini", "openai", "anthropic", "mock"
}

// MockGenerator is a lightweight in-memory Generator useful for tests and
// examples. Prompts without a registered response yield a decline unless a
// default is set.
type MockGenerator struct {
	info      Info
	responses map[string]string
	def       string
	calls     int
}

// NewMockGenerator constructs an empty MockGenerator.
func NewMockGenerator(name string) *MockGenerator {
	return &MockGenerator{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for a prompt.
func (m *MockGenerator) AddResponse(prompt, response string) { m.responses[prompt] = response }

// SetDefault sets the reply returned for unregistered prompts.
func (m *MockGenerator) SetDefault(response string) { m.def = response }

// Calls reports how many times GenerateText was invoked.
func (m *MockGenerator) Calls() int { return m.calls }

// GenerateText implements Generator.
func (m *MockGenerator) GenerateText(ctx context.Context, prompt string) (string, bool) {
	m.calls++
	if err := ctx.Err(); err != nil {
		return "", false
	}
	if resp, ok := m.responses[prompt]; ok {
		return resp, true
	}
	if m.def != "" {
		return m.def, true
	}
	return "", false
}

// Info implements Generator.
func (m *MockGenerator) Info() Info { return m.info }

// Unavailable is a Generator that always declines. It stands in for a
// provider with no credentials so the deterministic fallbacks take over.
type Unavailable struct{}

// GenerateText implements Generator; it always declines.
func (Unavailable) GenerateText(context.Context, string) (string, bool) { return "", false }

// Info implements Generator.
func (Unavailable) Info() Info { return Info{Name: "unavailable", Provider: "none"} }

// Chain tries each generator in order and returns the first non-empty
// result. It implements the ordered alternate-model retry policy invisibly
// to callers.
type Chain struct {
	generators []Generator
}

// NewChain builds a Chain over the given generators.
func NewChain(generators ...Generator) *Chain {
	return &Chain{generators: generators}
}

// GenerateText implements Generator.
func (c *Chain) GenerateText(ctx context.Context, prompt string) (string, bool) {
	for _, g := range c.generators {
		if text, ok := g.GenerateText(ctx, prompt); ok && text != "" {
			return text, true
		}
		if ctx.Err() != nil {
			return "", false
		}
	}
	return "", false
}

// Info implements Generator; a chain reports the first member's identity.
func (c *Chain) Info() Info {
	if len(c.generators) == 0 {
		return Info{Name: "empty-chain", Provider: "none"}
	}
	info := c.generators[0].Info()
	info.Name = "chain:" + info.Name
	return info
}
