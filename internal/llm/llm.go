// Package llm talks to the hosted text-generation APIs that write speeches.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/joestump/speechwriter/internal/config"
)

// ErrNotConfigured is returned when no API key is available. Providers check
// it before any network attempt.
var ErrNotConfigured = errors.New("generation API key is not configured")

// Generator turns a prompt into text. An empty result with a nil error means
// the provider answered without any text content.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// New creates a Generator based on the config. Returns nil when no API key is
// configured, meaning generation is disabled.
func New(cfg *config.Config) (Generator, error) {
	if cfg.LLM.APIKey == "" {
		return nil, nil
	}
	switch cfg.LLM.Provider {
	case "", "anthropic":
		return NewAnthropic(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.BaseURL), nil
	case "openai", "openai-compatible":
		return NewOpenAI(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.BaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.LLM.Provider)
	}
}
