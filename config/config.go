// Package config loads runtime configuration for SleepMesh. Values resolve
// in three layers: code defaults, then an optional YAML file, then
// environment variables, with later layers winning.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds every runtime knob for the chat service and examples.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"SLEEPMESH_LOG_LEVEL" yaml:"log_level"`
	// LogFormat is json or text.
	LogFormat string `env:"SLEEPMESH_LOG_FORMAT" yaml:"log_format"`

	// DatabasePath is the SQLite file backing conversation history. Empty
	// selects the in-memory store.
	DatabasePath string `env:"SLEEPMESH_DB_PATH" yaml:"database_path"`

	// GeminiAPIKey enables the primary provider when set.
	GeminiAPIKey string `env:"GEMINI_API_KEY" yaml:"gemini_api_key"`
	// GeminiModels is the ordered list of model ids to try.
	GeminiModels []string `env:"SLEEPMESH_GEMINI_MODELS" yaml:"gemini_models"`

	// OpenAIAPIKey enables the OpenAI fallback provider when set.
	OpenAIAPIKey string `env:"OPENAI_API_KEY" yaml:"openai_api_key"`
	// AnthropicAPIKey enables the Anthropic fallback provider when set.
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY" yaml:"anthropic_api_key"`

	// Temperature applies to every provider call.
	Temperature float32 `env:"SLEEPMESH_TEMPERATURE" yaml:"temperature"`

	// SkipChecks disables the responsible-AI pass. Test/tooling use only.
	SkipChecks bool `env:"SLEEPMESH_SKIP_CHECKS" yaml:"skip_checks"`
}

// Default returns the code-level defaults.
func Default() Config {
	return Config{
		LogLevel:     "info",
		LogFormat:    "json",
		GeminiModels: []string{"gemini-2.5-flash", "gemini-1.5-flash"},
		Temperature:  0.7,
	}
}

// Load resolves the configuration. A non-empty path names a YAML file that
// overlays the defaults before environment variables are applied.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
