package ai

import (
	"context"
)

// ProviderType identifies which upstream produced a result.
type ProviderType string

const (
	ProviderOllama ProviderType = "ollama"
	ProviderOpenAI ProviderType = "openai"
)

// Prompt is the provider-neutral chat input: one system and one user turn.
type Prompt struct {
	System string
	User   string
}

// Provider is one text-generation upstream. Complete returns the raw assistant
// text; normalization happens in the Selector so both providers share it.
type Provider interface {
	Name() ProviderType
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// RefineInput is the caller side of a refine request. APIKey is the caller's
// own commercial-provider credential and is never persisted.
type RefineInput struct {
	Text    string
	Context string
	APIKey  string
}

// RefineResult is the normalized answer of the provider that served a request.
type RefineResult struct {
	RefinedText string       `json:"refinedText"`
	Suggestions []string     `json:"suggestions"`
	Provider    ProviderType `json:"provider"`
}

// Refiner is implemented by Selector; use cases depend on this.
type Refiner interface {
	Refine(ctx context.Context, in RefineInput) (*RefineResult, error)
}
