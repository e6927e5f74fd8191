package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// OpenAIService is the commercial provider. One instance is built per request
// around the caller's key.
type OpenAIService struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
}

func NewOpenAIService(baseURL, model, apiKey string, timeout time.Duration) *OpenAIService {
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIService{
		baseURL: baseURL,
		model:   model,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

func (o *OpenAIService) Name() ProviderType { return ProviderOpenAI }

// Complete implements Provider
func (o *OpenAIService) Complete(ctx context.Context, prompt Prompt) (string, error) {
	url := o.baseURL + "/v1/chat/completions"

	payload := map[string]interface{}{
		"model": o.model,
		"messages": []map[string]string{
			{"role": "system", "content": prompt.System},
			{"role": "user", "content": prompt.User},
		},
		"temperature": 0.7,
		"max_tokens":  500,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", o.fail(fmt.Errorf("failed to marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", o.fail(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", o.fail(fmt.Errorf("openai request failed: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", o.fail(fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return "", &InvalidCredentialError{
			Provider: ProviderOpenAI,
			Err:      fmt.Errorf("openai API error (401): %s", gjson.GetBytes(respBody, "error.message").String()),
		}
	}

	if resp.StatusCode != http.StatusOK {
		return "", o.fail(fmt.Errorf("openai API error (%d): %s", resp.StatusCode, gjson.GetBytes(respBody, "error.message").String()))
	}

	if !gjson.ValidBytes(respBody) {
		return "", o.fail(fmt.Errorf("failed to parse response: invalid JSON"))
	}

	return gjson.GetBytes(respBody, "choices.0.message.content").String(), nil
}

func (o *OpenAIService) fail(err error) error {
	return &UpstreamError{Provider: ProviderOpenAI, Message: MsgOpenAIFailed, Err: err}
}
