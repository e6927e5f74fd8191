package ai

import (
	"time"
)

// Config holds AI provider configuration
type Config struct {
	// Self-hosted provider. Getters allow runtime updates of the endpoint.
	GetOllamaBaseURL func() string
	GetOllamaModel   func() string
	OllamaTimeout    time.Duration

	// Commercial provider. The key always comes from the caller.
	OpenAIBaseURL string
	OpenAIModel   string
	OpenAITimeout time.Duration
}

// NewProviders builds the self-hosted provider and the per-key constructor for
// the commercial one.
func NewProviders(cfg Config) (Provider, func(apiKey string) Provider) {
	selfHosted := NewOllamaServiceWithGetters(cfg.GetOllamaBaseURL, cfg.GetOllamaModel, cfg.OllamaTimeout)
	commercial := func(apiKey string) Provider {
		return NewOpenAIService(cfg.OpenAIBaseURL, cfg.OpenAIModel, apiKey, cfg.OpenAITimeout)
	}
	return selfHosted, commercial
}
