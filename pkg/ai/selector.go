package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"refine-backend/pkg/metrics"

	"go.uber.org/zap"
)

// Selector routes a refine request to exactly one provider: the commercial one
// when the caller supplies a key, the self-hosted one otherwise. A failure is
// returned as-is; the other provider is never tried.
type Selector struct {
	selfHosted Provider
	commercial func(apiKey string) Provider
	logger     *zap.Logger
}

func NewSelector(selfHosted Provider, commercial func(apiKey string) Provider, logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{
		selfHosted: selfHosted,
		commercial: commercial,
		logger:     logger,
	}
}

// Pick returns the provider a request with the given key would use.
func (s *Selector) Pick(apiKey string) Provider {
	if key := strings.TrimSpace(apiKey); key != "" {
		return s.commercial(key)
	}
	return s.selfHosted
}

func (s *Selector) Refine(ctx context.Context, in RefineInput) (*RefineResult, error) {
	provider := s.Pick(in.APIKey)
	prompt := BuildPrompt(in.Text, in.Context)

	start := time.Now()
	raw, err := provider.Complete(ctx, prompt)
	elapsed := time.Since(start)

	if err != nil {
		metrics.RecordUpstreamCall(string(provider.Name()), outcome(err), elapsed)
		s.logger.Warn("refine upstream call failed",
			zap.String("provider", string(provider.Name())),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return nil, err
	}
	metrics.RecordUpstreamCall(string(provider.Name()), "success", elapsed)

	suggestions := ParseSuggestions(raw, in.Text)
	return &RefineResult{
		RefinedText: suggestions[0],
		Suggestions: suggestions,
		Provider:    provider.Name(),
	}, nil
}

func outcome(err error) string {
	var credErr *InvalidCredentialError
	if errors.As(err, &credErr) {
		return "invalid_credential"
	}
	return "upstream_error"
}
