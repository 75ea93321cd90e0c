package provider

import (
	"context"
	"errors"

	"github.com/mohammad-safakhou/concierge/config"
	ollama_provider "github.com/mohammad-safakhou/concierge/provider/ollama"
	openai_provider "github.com/mohammad-safakhou/concierge/provider/openai"
)

// Provider is the interface every text-generation backend must satisfy.
// Implementations block until the backend answers or the configured timeout
// elapses; a timeout surfaces as an ordinary error. When jsonOutput is true
// the backend is asked for machine-parseable JSON; callers still validate.
type Provider interface {
	Generate(ctx context.Context, prompt string, jsonOutput bool) (string, error)
}

// NewProvider creates a generation client from configuration.
func NewProvider(cfg config.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "ollama":
		return ollama_provider.NewClient(cfg.Host, cfg.Model, cfg.Timeout), nil
	case "openai":
		if cfg.APIKey == "" {
			return nil, errors.New("OPENAI_API_KEY not set")
		}
		return openai_provider.NewClient(cfg.APIKey, cfg.Model, cfg.Temperature, cfg.MaxTokens, cfg.Timeout), nil
	default:
		return nil, errors.New("unsupported LLM provider")
	}
}
